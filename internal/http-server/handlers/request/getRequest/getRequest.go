package getRequest

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
	Request *request.Response `json:"request"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RequestGetter
type RequestGetter interface {
	Get(ctx context.Context, userID, requestID int64) (*request.Response, error)
}

func New(log *slog.Logger, requests RequestGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.request.getRequest.New"

		log = log.With(slog.String("op", op))

		userID, err := apireq.UserID(r)
		if err != nil {
			log.Error("failed to resolve user", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		requestID, err := apireq.PathID(r, "requestId")
		if err != nil {
			log.Error("invalid request id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid request id"))
			return
		}

		found, err := requests.Get(r.Context(), userID, requestID)
		if err != nil {
			log.Error("failed to get request", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrRequestNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("request not found"))
			case errors.Is(err, storage.ErrUserNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("user not found"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to get request"))
			}
			return
		}

		log.Info("request received", slog.Int64("request_id", requestID))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Request:  found,
		})
	}
}
