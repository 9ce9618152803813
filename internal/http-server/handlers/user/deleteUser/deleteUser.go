package deleteUser

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	apireq "shareit/internal/lib/api/request"
	"shareit/internal/lib/api/response"
	"shareit/internal/lib/logger/sl"
	"shareit/internal/storage"
)

type Response struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserDeleter
type UserDeleter interface {
	Delete(ctx context.Context, id int64) error
}

func New(log *slog.Logger, users UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.user.deleteUser.New"

		log = log.With(slog.String("op", op))

		userID, err := apireq.PathID(r, "userId")
		if err != nil {
			log.Error("invalid user id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid user id"))
			return
		}

		if err = users.Delete(r.Context(), userID); err != nil {
			log.Error("failed to delete user", sl.Err(err))

			if errors.Is(err, storage.ErrUserNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("user not found"))
				return
			}

			if errors.Is(err, storage.ErrUserHasBookings) {
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("user has booking history"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete user"))
			return
		}

		log.Info("user deleted", slog.Int64("user_id", userID))

		render.JSON(w, r, Response{Response: response.OK()})
	}
}
