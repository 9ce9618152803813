package listUsers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"shareit/internal/lib/api/response"
	"shareit/internal/lib/logger/sl"
	"shareit/internal/models"
)

type Response struct {
	response.Response
	Users []models.User `json:"users"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserLister
type UserLister interface {
	List(ctx context.Context) ([]models.User, error)
}

func New(log *slog.Logger, users UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.user.listUsers.New"

		log = log.With(slog.String("op", op))

		found, err := users.List(r.Context())
		if err != nil {
			log.Error("failed to list users", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list users"))
			return
		}

		log.Info("users listed", slog.Int("count", len(found)))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Users:    found,
		})
	}
}
