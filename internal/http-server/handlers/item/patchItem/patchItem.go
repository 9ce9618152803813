package patchItem

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

type Request struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Available   *bool   `json:"available,omitempty"`
}

type Response struct {
	response.Response
	Item *item.Response `json:"item"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ItemPatcher
type ItemPatcher interface {
	Patch(ctx context.Context, userID, itemID int64, patch item.PatchRequest) (*item.Response, error)
}

func New(log *slog.Logger, items ItemPatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.item.patchItem.New"

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

		var req Request

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		patched, err := items.Patch(r.Context(), userID, itemID, item.PatchRequest{
			Name:        req.Name,
			Description: req.Description,
			Available:   req.Available,
		})
		if err != nil {
			log.Error("failed to patch item", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrItemNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("item not found"))
			case errors.Is(err, storage.ErrNotItemOwner):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("only the owner may change an item"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to patch item"))
			}
			return
		}

		log.Info("item changed", slog.Int64("item_id", itemID))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Item:     patched,
		})
	}
}
