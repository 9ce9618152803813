package decideBooking

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingDecider
type BookingDecider interface {
	Decide(ctx context.Context, actingUserID, bookingID int64, approve bool) (*booking.Detail, error)
}

func New(log *slog.Logger, bookings BookingDecider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.decideBooking.New"

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

		log = log.With(slog.Int64("booking_id", bookingID))

		approve, err := strconv.ParseBool(r.URL.Query().Get("approved"))
		if err != nil {
			log.Error("invalid approved parameter", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("approved parameter is required"))
			return
		}

		detail, err := bookings.Decide(r.Context(), userID, bookingID, approve)
		if err != nil {
			log.Error("failed to decide booking", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrBookingNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
			case errors.Is(err, storage.ErrNotItemOwner):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("only the item owner may decide a booking"))
			case errors.Is(err, storage.ErrAlreadyDecided):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("booking is already decided"))
			case errors.Is(err, storage.ErrIntervalConflict):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("booking interval conflicts with an approved booking"))
			case errors.Is(err, storage.ErrTxConflict):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("booking conflicts with a concurrent request, retry"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to decide booking"))
			}
			return
		}

		log.Info("booking decided", slog.String("status", string(detail.Status)))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Booking:  detail,
		})
	}
}
