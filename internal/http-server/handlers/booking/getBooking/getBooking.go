package getBooking

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	apireq "shareit/internal/lib/api/request"
	"shareit/internal/lib/api/response"
	"shareit/internal/lib/logger/sl"
	"shareit/internal/service/booking"
	"shareit/internal/storage"
)

type Response struct {
	response.Response
	Booking *booking.Detail `json:"booking"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingGetter
type BookingGetter interface {
	Get(ctx context.Context, actingUserID, bookingID int64) (*booking.Detail, error)
}

func New(log *slog.Logger, bookings BookingGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getBooking.New"

		log = log.With(slog.String("op", op))

		userID, err := apireq.UserID(r)
		if err != nil {
			log.Error("failed to resolve user", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		bookingID, err := apireq.PathID(r, "bookingId")
		if err != nil {
			log.Error("invalid booking id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid booking id"))
			return
		}

		detail, err := bookings.Get(r.Context(), userID, bookingID)
		if err != nil {
			log.Error("failed to get booking", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrBookingNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
			case errors.Is(err, storage.ErrNotAuthorized):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking is visible to its booker and the item owner only"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to get booking"))
			}
			return
		}

		log.Info("booking received", slog.Int64("booking_id", detail.ID))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Booking:  detail,
		})
	}
}
