package listItems

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	apireq "shareit/internal/lib/api/request"
	"shareit/internal/lib/api/response"
	"shareit/internal/lib/logger/sl"
	"shareit/internal/service/item"
)

type Response struct {
	response.Response
	Items []item.Response `json:"items"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ItemLister
type ItemLister interface {
	ListByOwner(ctx context.Context, userID int64, from, size int) ([]item.Response, error)
}

func New(log *slog.Logger, items ItemLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.item.listItems.New"

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

		found, err := items.ListByOwner(r.Context(), userID, from, size)
		if err != nil {
			log.Error("failed to list items", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list items"))
			return
		}

		log.Info("items listed",
			slog.Int64("owner_id", userID),
			slog.Int("count", len(found)),
		)

		render.JSON(w, r, Response{
			Response: response.OK(),
			Items:    found,
		})
	}
}
