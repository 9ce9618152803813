package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"shareit/internal/config"
	"shareit/internal/http-server/handlers/booking/createBooking"
	"shareit/internal/http-server/handlers/booking/decideBooking"
	"shareit/internal/http-server/handlers/booking/getBooking"
	"shareit/internal/http-server/handlers/booking/listBookings"
	"shareit/internal/http-server/handlers/booking/listOwnerBookings"
	"shareit/internal/http-server/handlers/item/addComment"
	"shareit/internal/http-server/handlers/item/createItem"
	"shareit/internal/http-server/handlers/item/getItem"
	"shareit/internal/http-server/handlers/item/listItems"
	"shareit/internal/http-server/handlers/item/patchItem"
	"shareit/internal/http-server/handlers/item/searchItems"
	"shareit/internal/http-server/handlers/request/createRequest"
	"shareit/internal/http-server/handlers/request/getRequest"
	"shareit/internal/http-server/handlers/request/listAllRequests"
	"shareit/internal/http-server/handlers/request/listOwnRequests"
	"shareit/internal/http-server/handlers/user/createUser"
	"shareit/internal/http-server/handlers/user/deleteUser"
	"shareit/internal/http-server/handlers/user/getUser"
	"shareit/internal/http-server/handlers/user/listUsers"
	"shareit/internal/http-server/handlers/user/patchUser"
	"shareit/internal/http-server/middleware/mwlogger"
	"shareit/internal/http-server/middleware/mwmetrics"
	"shareit/internal/http-server/middleware/mwratelimit"
	"shareit/internal/lib/clock"
	"shareit/internal/lib/logger/handlers/slogpretty"
	"shareit/internal/lib/logger/sl"
	"shareit/internal/metrics"
	"shareit/internal/ratelimit"
	"shareit/internal/service/booking"
	"shareit/internal/service/item"
	"shareit/internal/service/request"
	"shareit/internal/service/user"
	"shareit/internal/storage/postgres"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting shareit", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	metrics.Register()

	clk := clock.System{}

	userService := user.New(log, storage)
	bookingService := booking.New(log, storage, storage, storage, clk)
	itemService := item.New(log, storage, storage, storage, storage, clk)
	requestService := request.New(log, storage, storage, storage, clk)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(mwmetrics.New())

	if cfg.RateLimit.Enabled {
		router.Use(mwratelimit.New(log, setupLimiter(cfg, log)))
	}

	router.Handle("/metrics", promhttp.Handler())

	router.Route("/users", func(r chi.Router) {
		r.Post("/", createUser.New(log, userService))
		r.Get("/", listUsers.New(log, userService))
		r.Get("/{userId}", getUser.New(log, userService))
		r.Patch("/{userId}", patchUser.New(log, userService))
		r.Delete("/{userId}", deleteUser.New(log, userService))
	})

	router.Route("/items", func(r chi.Router) {
		r.Post("/", createItem.New(log, itemService))
		r.Get("/", listItems.New(log, itemService))
		r.Get("/search", searchItems.New(log, itemService))
		r.Get("/{itemId}", getItem.New(log, itemService))
		r.Patch("/{itemId}", patchItem.New(log, itemService))
		r.Post("/{itemId}/comment", addComment.New(log, itemService))
	})

	router.Route("/bookings", func(r chi.Router) {
		r.Post("/", createBooking.New(log, bookingService))
		r.Get("/", listBookings.New(log, bookingService))
		r.Get("/owner", listOwnerBookings.New(log, bookingService))
		r.Get("/{bookingId}", getBooking.New(log, bookingService))
		r.Patch("/{bookingId}", decideBooking.New(log, bookingService))
	})

	router.Route("/requests", func(r chi.Router) {
		r.Post("/", createRequest.New(log, requestService))
		r.Get("/", listOwnRequests.New(log, requestService))
		r.Get("/all", listAllRequests.New(log, requestService))
		r.Get("/{requestId}", getRequest.New(log, requestService))
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

func setupLimiter(cfg *config.Config, log *slog.Logger) ratelimit.Limiter {
	memory := ratelimit.NewMemoryLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)

	if !cfg.Redis.Enabled {
		return memory
	}

	client := ratelimit.NewRedisClient(cfg.Redis)
	primary := ratelimit.NewRedisLimiter(client, cfg.RateLimit.Requests, cfg.RateLimit.Window)

	return ratelimit.NewFailoverLimiter(primary, memory, log)
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
