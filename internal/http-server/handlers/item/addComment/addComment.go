package addComment

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
	"shareit/internal/storage"
)

type Request struct {
	Text string `json:"text" validate:"required"`
}

type Response struct {
	response.Response
	Comment *models.Comment `json:"comment"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CommentAdder
type CommentAdder interface {
	AddComment(ctx context.Context, authorID, itemID int64, text string) (*models.Comment, error)
}

func New(log *slog.Logger, items CommentAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.item.addComment.New"

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

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		comment, err := items.AddComment(r.Context(), userID, itemID, req.Text)
		if err != nil {
			log.Error("failed to add comment", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrUserNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("user not found"))
			case errors.Is(err, storage.ErrItemNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("item not found"))
			case errors.Is(err, storage.ErrCommentNotAllowed):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("commenting requires a finished booking of the item"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to add comment"))
			}
			return
		}

		log.Info("comment added",
			slog.Int64("item_id", itemID),
			slog.Int64("comment_id", comment.ID),
		)

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{
			Response: response.OK(),
			Comment:  comment,
		})
	}
}
