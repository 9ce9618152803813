package listOwnerBookings

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	apireq "shareit/internal/lib/api/request"
	"shareit/internal/lib/api/response"
	"shareit/internal/lib/logger/sl"
	"shareit/internal/models"
	"shareit/internal/service/booking"
	"shareit/internal/storage"
)

type Response struct {
	response.Response
	Bookings []booking.Detail `json:"bookings"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=OwnerBookingLister
type OwnerBookingLister interface {
	ListByOwner(ctx context.Context, userID int64, state models.BookingState, from, size int) ([]booking.Detail, error)
}

func New(log *slog.Logger, bookings OwnerBookingLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.listOwnerBookings.New"

		log = log.With(slog.String("op", op))

		userID, err := apireq.UserID(r)
		if err != nil {
			log.Error("failed to resolve user", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		rawState := r.URL.Query().Get("state")

		state, ok := models.ParseBookingState(rawState)
		if !ok {
			log.Error("unknown state filter", slog.String("state", rawState))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Unknown state: "+rawState))
			return
		}

		from, size, err := apireq.Pagination(r)
		if err != nil {
			log.Error("invalid pagination", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		details, err := bookings.ListByOwner(r.Context(), userID, state, from, size)
		if err != nil {
			log.Error("failed to list owner bookings", sl.Err(err))

			if errors.Is(err, storage.ErrUserNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("user not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list owner bookings"))
			return
		}

		log.Info("owner bookings listed",
			slog.Int64("user_id", userID),
			slog.Int("count", len(details)),
		)

		render.JSON(w, r, Response{
			Response: response.OK(),
			Bookings: details,
		})
	}
}
