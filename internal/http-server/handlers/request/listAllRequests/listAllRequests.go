package listAllRequests

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	apireq "shareit/internal/lib/api/request"
	"shareit/internal/lib/api/response"
	"shareit/internal/lib/logger/sl"
	"shareit/internal/service/request"
	"shareit/internal/storage"
)

type Response struct {
	response.Response
	Requests []request.Response `json:"requests"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RequestLister
type RequestLister interface {
	ListOthers(ctx context.Context, userID int64, from, size int) ([]request.Response, error)
}

func New(log *slog.Logger, requests RequestLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.request.listAllRequests.New"

		log = log.With(slog.String("op", op))

		userID, err := apireq.UserID(r)
		if err != nil {
			log.Error("failed to resolve user", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		from, size, err := apireq.Pagination(r)
		if err != nil {
			log.Error("invalid pagination", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		found, err := requests.ListOthers(r.Context(), userID, from, size)
		if err != nil {
			log.Error("failed to list requests", sl.Err(err))

			if errors.Is(err, storage.ErrUserNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("user not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list requests"))
			return
		}

		log.Info("requests listed",
			slog.Int64("user_id", userID),
			slog.Int("count", len(found)),
		)

		render.JSON(w, r, Response{
			Response: response.OK(),
			Requests: found,
		})
	}
}
