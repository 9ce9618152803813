package searchItems

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ItemSearcher
type ItemSearcher interface {
	Search(ctx context.Context, text string, from, size int) ([]item.Response, error)
}

func New(log *slog.Logger, items ItemSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.item.searchItems.New"

		log = log.With(slog.String("op", op))

		if _, err := apireq.UserID(r); err != nil {
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

		text := r.URL.Query().Get("text")

		found, err := items.Search(r.Context(), text, from, size)
		if err != nil {
			log.Error("failed to search items", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to search items"))
			return
		}

		log.Info("items searched",
			slog.String("text", text),
			slog.Int("count", len(found)),
		)

		render.JSON(w, r, Response{
			Response: response.OK(),
			Items:    found,
		})
	}
}
