package createBooking

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	apireq "shareit/internal/lib/api/request"
	"shareit/internal/lib/api/response"
	"shareit/internal/lib/logger/sl"
	"shareit/internal/service/booking"
	"shareit/internal/storage"
)

type Request struct {
	ItemID int64     `json:"item_id" validate:"required"`
	Start  time.Time `json:"start" validate:"required"`
	End    time.Time `json:"end" validate:"required"`
}

type Response struct {
	response.Response
	Booking *booking.Detail `json:"booking"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCreator
type BookingCreator interface {
	Create(ctx context.Context, req booking.CreateRequest) (*booking.Detail, error)
}

func New(log *slog.Logger, bookings BookingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

		log = log.With(slog.String("op", op))

		userID, err := apireq.UserID(r)
		if err != nil {
			log.Error("failed to resolve user", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
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

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		detail, err := bookings.Create(r.Context(), booking.CreateRequest{
			ItemID:   req.ItemID,
			BookerID: userID,
			Start:    req.Start,
			End:      req.End,
		})
		if err != nil {
			log.Error("failed to create booking", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrInvalidInterval):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("booking interval is invalid"))
			case errors.Is(err, storage.ErrItemNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("item not found"))
			case errors.Is(err, storage.ErrUserNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("user not found"))
			case errors.Is(err, storage.ErrSelfBooking):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("owner cannot book own item"))
			case errors.Is(err, storage.ErrItemUnavailable):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("item is not available"))
			case errors.Is(err, storage.ErrIntervalConflict):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("booking interval conflicts with an approved booking"))
			case errors.Is(err, storage.ErrTxConflict):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("booking conflicts with a concurrent request, retry"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to create booking"))
			}
			return
		}

		log.Info("booking created", slog.Int64("booking_id", detail.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{
			Response: response.OK(),
			Booking:  detail,
		})
	}
}
