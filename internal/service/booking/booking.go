package booking

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"shareit/internal/lib/clock"
	"shareit/internal/models"
	"shareit/internal/storage"
)

// Detail is the booking view returned to callers: the booking with its item
// and booker resolved. It carries no invariants of its own.
type Detail struct {
	ID     int64                `json:"id"`
	Start  time.Time            `json:"start"`
	End    time.Time            `json:"end"`
	Status models.BookingStatus `json:"status"`
	Item   models.Item          `json:"item"`
	Booker models.User          `json:"booker"`
}

// CreateRequest carries the inputs of a reservation request.
type CreateRequest struct {
	ItemID   int64
	BookerID int64
	Start    time.Time
	End      time.Time
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Store
type Store interface {
	CreateBooking(ctx context.Context, booking *models.Booking) error
	GetBooking(ctx context.Context, id int64) (*models.Booking, error)
	DecideBooking(ctx context.Context, id int64, approve bool) (*models.Booking, error)
	ListBookingsByBooker(ctx context.Context, bookerID int64, state models.BookingState, now time.Time, from, size int) ([]models.Booking, error)
	ListBookingsByOwner(ctx context.Context, ownerID int64, state models.BookingState, now time.Time, from, size int) ([]models.Booking, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ItemProvider
type ItemProvider interface {
	GetItem(ctx context.Context, id int64) (*models.Item, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserProvider
type UserProvider interface {
	GetUser(ctx context.Context, id int64) (*models.User, error)
}

// Service is the reservation engine. It owns the booking lifecycle; items
// and users are references resolved through the providers, never cached.
type Service struct {
	log   *slog.Logger
	store Store
	items ItemProvider
	users UserProvider
	clock clock.Clock
}

func New(log *slog.Logger, store Store, items ItemProvider, users UserProvider, clk clock.Clock) *Service {
	return &Service{
		log:   log,
		store: store,
		items: items,
		users: users,
		clock: clk,
	}
}

// Create validates a reservation request and persists it as WAITING.
// Pending requests do not block each other: only APPROVED bookings are
// exclusive, so several users may queue up for the same interval and the
// owner picks one.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Detail, error) {
	const op = "service.booking.Create"

	if !req.End.After(req.Start) {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidInterval)
	}

	item, err := s.items.GetItem(ctx, req.ItemID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	booker, err := s.users.GetUser(ctx, req.BookerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !item.Available {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrItemUnavailable)
	}

	if item.OwnerID == req.BookerID {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrSelfBooking)
	}

	booking := &models.Booking{
		ItemID:   req.ItemID,
		BookerID: req.BookerID,
		Start:    req.Start,
		End:      req.End,
	}

	if err = s.store.CreateBooking(ctx, booking); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("booking created",
		slog.Int64("booking_id", booking.ID),
		slog.Int64("item_id", booking.ItemID),
		slog.Int64("booker_id", booking.BookerID),
	)

	return s.detail(booking, item, booker), nil
}

// Decide moves a WAITING booking to APPROVED or REJECTED. Only the item
// owner may decide, and only once; the store re-checks approved overlap
// atomically with the status write.
func (s *Service) Decide(ctx context.Context, actingUserID, bookingID int64, approve bool) (*Detail, error) {
	const op = "service.booking.Decide"

	booking, err := s.store.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	item, err := s.items.GetItem(ctx, booking.ItemID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if item.OwnerID != actingUserID {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotItemOwner)
	}

	decided, err := s.store.DecideBooking(ctx, bookingID, approve)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	booker, err := s.users.GetUser(ctx, decided.BookerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("booking decided",
		slog.Int64("booking_id", decided.ID),
		slog.String("status", string(decided.Status)),
	)

	return s.detail(decided, item, booker), nil
}

// Get returns the booking detail to its booker or the item owner.
func (s *Service) Get(ctx context.Context, actingUserID, bookingID int64) (*Detail, error) {
	const op = "service.booking.Get"

	booking, err := s.store.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	item, err := s.items.GetItem(ctx, booking.ItemID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if actingUserID != booking.BookerID && actingUserID != item.OwnerID {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotAuthorized)
	}

	booker, err := s.users.GetUser(ctx, booking.BookerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.detail(booking, item, booker), nil
}

// ListByBooker returns the user's own bookings matching the state filter,
// newest start first.
func (s *Service) ListByBooker(ctx context.Context, userID int64, state models.BookingState, from, size int) ([]Detail, error) {
	const op = "service.booking.ListByBooker"

	if _, err := s.users.GetUser(ctx, userID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// One snapshot of now for the whole query keeps the temporal
	// classification consistent across the response.
	now := s.clock.Now()

	bookings, err := s.store.ListBookingsByBooker(ctx, userID, state, now, from, size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	details, err := s.details(ctx, bookings)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return details, nil
}

// ListByOwner returns bookings of the user's items matching the state
// filter, newest start first.
func (s *Service) ListByOwner(ctx context.Context, userID int64, state models.BookingState, from, size int) ([]Detail, error) {
	const op = "service.booking.ListByOwner"

	if _, err := s.users.GetUser(ctx, userID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := s.clock.Now()

	bookings, err := s.store.ListBookingsByOwner(ctx, userID, state, now, from, size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	details, err := s.details(ctx, bookings)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return details, nil
}

func (s *Service) detail(booking *models.Booking, item *models.Item, booker *models.User) *Detail {
	return &Detail{
		ID:     booking.ID,
		Start:  booking.Start,
		End:    booking.End,
		Status: booking.Status,
		Item:   *item,
		Booker: *booker,
	}
}

// details resolves items and bookers for a list of bookings, fetching each
// referenced entity once.
func (s *Service) details(ctx context.Context, bookings []models.Booking) ([]Detail, error) {
	items := make(map[int64]*models.Item)
	users := make(map[int64]*models.User)

	details := make([]Detail, 0, len(bookings))
	for i := range bookings {
		booking := &bookings[i]

		item, ok := items[booking.ItemID]
		if !ok {
			var err error
			item, err = s.items.GetItem(ctx, booking.ItemID)
			if err != nil {
				return nil, err
			}
			items[booking.ItemID] = item
		}

		booker, ok := users[booking.BookerID]
		if !ok {
			var err error
			booker, err = s.users.GetUser(ctx, booking.BookerID)
			if err != nil {
				return nil, err
			}
			users[booking.BookerID] = booker
		}

		details = append(details, *s.detail(booking, item, booker))
	}

	return details, nil
}
