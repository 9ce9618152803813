package patchUser

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	apireq "shareit/internal/lib/api/request"
	"shareit/internal/lib/api/response"
	"shareit/internal/lib/logger/sl"
	"shareit/internal/models"
	"shareit/internal/service/user"
	"shareit/internal/storage"
)

type Request struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
}

type Response struct {
	response.Response
	User *models.User `json:"user"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserPatcher
type UserPatcher interface {
	Patch(ctx context.Context, id int64, patch user.PatchRequest) (*models.User, error)
}

func New(log *slog.Logger, users UserPatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.user.patchUser.New"

		log = log.With(slog.String("op", op))

		userID, err := apireq.PathID(r, "userId")
		if err != nil {
			log.Error("invalid user id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid user id"))
			return
		}

		var req Request

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		patched, err := users.Patch(r.Context(), userID, user.PatchRequest{
			Name:  req.Name,
			Email: req.Email,
		})
		if err != nil {
			log.Error("failed to patch user", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrUserNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("user not found"))
			case errors.Is(err, storage.ErrEmailTaken):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("email is already in use"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to patch user"))
			}
			return
		}

		log.Info("user changed", slog.Int64("user_id", userID))

		render.JSON(w, r, Response{
			Response: response.OK(),
			User:     patched,
		})
	}
}
