package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"shareit/internal/models"
	"shareit/internal/storage"

	"github.com/lib/pq"
)

// Two bookings [s1,e1) and [s2,e2) overlap iff s1 < e2 AND s2 < e1.
// Only APPROVED bookings participate in conflict detection.
const overlapQuery = `
	SELECT EXISTS(
		SELECT 1 FROM bookings
		WHERE item_id = $1
		AND status = 'APPROVED'
		AND start_date < $3
		AND $2 < end_date
	)`

// CreateBooking persists a new WAITING booking. The approved-overlap check
// and the insert run in one serializable transaction so a conflicting
// approval committing in between aborts this creation instead of slipping by.
func (s *Storage) CreateBooking(ctx context.Context, booking *models.Booking) error {
	tx, err := s.DB.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var conflict bool
	if err = tx.QueryRowContext(ctx, overlapQuery, booking.ItemID, booking.Start, booking.End).
		Scan(&conflict); err != nil {
		return txStatementError(err, "failed to check booking overlap")
	}

	if conflict {
		return storage.ErrIntervalConflict
	}

	insertQuery := `
		INSERT INTO bookings (start_date, end_date, item_id, booker_id, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err = tx.QueryRowContext(ctx, insertQuery,
		booking.Start,
		booking.End,
		booking.ItemID,
		booking.BookerID,
		models.StatusWaiting,
	).Scan(&booking.ID)
	if err != nil {
		return txStatementError(err, "failed to create booking")
	}

	booking.Status = models.StatusWaiting

	if err = tx.Commit(); err != nil {
		return txStatementError(err, "failed to commit booking")
	}

	return nil
}

func (s *Storage) GetBooking(ctx context.Context, id int64) (*models.Booking, error) {
	query := `
		SELECT id, start_date, end_date, item_id, booker_id, status
		FROM bookings
		WHERE id = $1`

	var booking models.Booking
	err := s.DB.QueryRowContext(ctx, query, id).Scan(
		&booking.ID,
		&booking.Start,
		&booking.End,
		&booking.ItemID,
		&booking.BookerID,
		&booking.Status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrBookingNotFound
		}

		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return &booking, nil
}

// DecideBooking moves a WAITING booking to APPROVED or REJECTED. The status
// check, the overlap re-check and the update run in one serializable
// transaction: two concurrent approvals of overlapping WAITING bookings can
// never both commit.
func (s *Storage) DecideBooking(ctx context.Context, id int64, approve bool) (*models.Booking, error) {
	tx, err := s.DB.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	selectQuery := `
		SELECT id, start_date, end_date, item_id, booker_id, status
		FROM bookings
		WHERE id = $1
		FOR UPDATE`

	var booking models.Booking
	err = tx.QueryRowContext(ctx, selectQuery, id).Scan(
		&booking.ID,
		&booking.Start,
		&booking.End,
		&booking.ItemID,
		&booking.BookerID,
		&booking.Status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrBookingNotFound
		}

		return nil, txStatementError(err, "failed to get booking")
	}

	if booking.Status != models.StatusWaiting {
		return nil, storage.ErrAlreadyDecided
	}

	newStatus := models.StatusRejected
	if approve {
		var conflict bool
		if err = tx.QueryRowContext(ctx, overlapQuery, booking.ItemID, booking.Start, booking.End).
			Scan(&conflict); err != nil {
			return nil, txStatementError(err, "failed to check booking overlap")
		}

		if conflict {
			return nil, storage.ErrIntervalConflict
		}

		newStatus = models.StatusApproved
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE bookings SET status = $1 WHERE id = $2`, newStatus, id); err != nil {
		return nil, txStatementError(err, "failed to update booking status")
	}

	if err = tx.Commit(); err != nil {
		return nil, txStatementError(err, "failed to commit booking decision")
	}

	booking.Status = newStatus

	return &booking, nil
}

// HasApprovedOverlap reports whether any approved booking of the item
// overlaps the half-open interval [start, end).
func (s *Storage) HasApprovedOverlap(ctx context.Context, itemID int64, start, end time.Time) (bool, error) {
	var conflict bool
	err := s.DB.QueryRowContext(ctx, overlapQuery, itemID, start, end).Scan(&conflict)
	if err != nil {
		return false, fmt.Errorf("failed to check booking overlap: %w", err)
	}

	return conflict, nil
}

// ListBookingsByBooker returns the booker's bookings matching the state
// filter at instant now, ordered by start descending.
func (s *Storage) ListBookingsByBooker(ctx context.Context, bookerID int64, state models.BookingState, now time.Time, from, size int) ([]models.Booking, error) {
	base := `
		SELECT id, start_date, end_date, item_id, booker_id, status
		FROM bookings
		WHERE booker_id = $1`

	return s.listBookings(ctx, base, bookerID, state, now, from, size)
}

// ListBookingsByOwner returns bookings of items owned by the user matching
// the state filter at instant now, ordered by start descending.
func (s *Storage) ListBookingsByOwner(ctx context.Context, ownerID int64, state models.BookingState, now time.Time, from, size int) ([]models.Booking, error) {
	base := `
		SELECT b.id, b.start_date, b.end_date, b.item_id, b.booker_id, b.status
		FROM bookings b
		JOIN items i ON i.id = b.item_id
		WHERE i.owner_id = $1`

	return s.listBookings(ctx, base, ownerID, state, now, from, size)
}

func (s *Storage) listBookings(ctx context.Context, base string, actorID int64, state models.BookingState, now time.Time, from, size int) ([]models.Booking, error) {
	var (
		cond string
		args = []any{actorID}
	)

	// now is sampled once by the caller so one response never mixes
	// current/past/future classifications.
	switch state {
	case models.StateAll:
	case models.StateCurrent:
		cond = ` AND start_date <= $2 AND end_date >= $2`
		args = append(args, now)
	case models.StatePast:
		cond = ` AND end_date < $2`
		args = append(args, now)
	case models.StateFuture:
		cond = ` AND start_date > $2`
		args = append(args, now)
	case models.StateWaiting, models.StateRejected:
		cond = ` AND status = $2`
		args = append(args, models.BookingStatus(state))
	default:
		return nil, fmt.Errorf("unsupported booking state %q", state)
	}

	query := fmt.Sprintf("%s%s ORDER BY start_date DESC LIMIT $%d OFFSET $%d",
		base, cond, len(args)+1, len(args)+2)
	args = append(args, size, from)

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		var booking models.Booking
		err = rows.Scan(
			&booking.ID,
			&booking.Start,
			&booking.End,
			&booking.ItemID,
			&booking.BookerID,
			&booking.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}

	return bookings, nil
}

// FindAdjacent returns the approved bookings of the item closest to the
// reference instant: the one that ended last before it and the one that
// starts first after it.
func (s *Storage) FindAdjacent(ctx context.Context, itemID int64, at time.Time) (models.AdjacentBookings, error) {
	adjacent, err := s.FindAdjacentByItems(ctx, []int64{itemID}, at)
	if err != nil {
		return models.AdjacentBookings{}, err
	}

	return adjacent[itemID], nil
}

// FindAdjacentByItems is the batched variant of FindAdjacent used by item
// listings to avoid one query per item.
func (s *Storage) FindAdjacentByItems(ctx context.Context, itemIDs []int64, at time.Time) (map[int64]models.AdjacentBookings, error) {
	if len(itemIDs) == 0 {
		return map[int64]models.AdjacentBookings{}, nil
	}

	query := `
		SELECT b.item_id, b.id, b.booker_id, b.start_date, b.end_date
		FROM bookings b
		WHERE b.item_id = ANY($1)
		AND b.status = 'APPROVED'
		AND (b.end_date = (
				SELECT MAX(bk.end_date) FROM bookings bk
				WHERE bk.item_id = b.item_id AND bk.status = 'APPROVED' AND bk.end_date < $2)
			OR b.start_date = (
				SELECT MIN(bk.start_date) FROM bookings bk
				WHERE bk.item_id = b.item_id AND bk.status = 'APPROVED' AND bk.start_date > $2))`

	rows, err := s.DB.QueryContext(ctx, query, pq.Array(itemIDs), at)
	if err != nil {
		return nil, fmt.Errorf("failed to find adjacent bookings: %w", err)
	}
	defer rows.Close()

	adjacent := make(map[int64]models.AdjacentBookings, len(itemIDs))
	for rows.Next() {
		var (
			itemID int64
			ref    models.BookingRef
		)
		if err = rows.Scan(&itemID, &ref.ID, &ref.BookerID, &ref.Start, &ref.End); err != nil {
			return nil, fmt.Errorf("failed to scan adjacent booking: %w", err)
		}

		pair := adjacent[itemID]
		if ref.End.Before(at) {
			last := ref
			pair.Last = &last
		}
		if ref.Start.After(at) {
			next := ref
			pair.Next = &next
		}
		adjacent[itemID] = pair
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating adjacent bookings: %w", err)
	}

	return adjacent, nil
}

// HasFinishedBooking reports whether the user has an approved booking of the
// item that ended before the given instant. Comments are only allowed after
// a finished rental.
func (s *Storage) HasFinishedBooking(ctx context.Context, itemID, bookerID int64, before time.Time) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM bookings
			WHERE item_id = $1
			AND booker_id = $2
			AND status = 'APPROVED'
			AND end_date < $3
		)`

	var finished bool
	err := s.DB.QueryRowContext(ctx, query, itemID, bookerID, before).Scan(&finished)
	if err != nil {
		return false, fmt.Errorf("failed to check finished booking: %w", err)
	}

	return finished, nil
}
