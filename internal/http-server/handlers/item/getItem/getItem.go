package getItem

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	apireq "shareit/internal/lib/api/request"
	"shareit/internal/lib/api/response"
	"shareit/internal/lib/logger/sl"
	"shareit/internal/service/item"
	"shareit/internal/storage"
)

type Response struct {
	response.Response
	Item *item.Response `json:"item"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ItemGetter
type ItemGetter interface {
	Get(ctx context.Context, userID, itemID int64) (*item.Response, error)
}

func New(log *slog.Logger, items ItemGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.item.getItem.New"

		log = log.With(slog.String("op", op))

		userID, err := apireq.UserID(r)
		if err != nil {
			log.Error("failed to resolve user", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		itemID, err := apireq.PathID(r, "itemId")
		if err != nil {
			log.Error("invalid item id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid item id"))
			return
		}

		found, err := items.Get(r.Context(), userID, itemID)
		if err != nil {
			log.Error("failed to get item", sl.Err(err))

			if errors.Is(err, storage.ErrItemNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("item not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get item"))
			return
		}

		log.Info("item received", slog.Int64("item_id", itemID))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Item:     found,
		})
	}
}
