package models

import "time"

// BookingStatus is the lifecycle state of a booking. A booking is created
// WAITING and moves exactly once to APPROVED or REJECTED.
type BookingStatus string

const (
	StatusWaiting  BookingStatus = "WAITING"
	StatusApproved BookingStatus = "APPROVED"
	StatusRejected BookingStatus = "REJECTED"
)

// BookingState is the temporal/status filter of booking list queries.
type BookingState string

const (
	StateAll      BookingState = "ALL"
	StateCurrent  BookingState = "CURRENT"
	StatePast     BookingState = "PAST"
	StateFuture   BookingState = "FUTURE"
	StateWaiting  BookingState = "WAITING"
	StateRejected BookingState = "REJECTED"
)

// ParseBookingState maps a raw query value to a known filter.
// An empty value means ALL.
func ParseBookingState(s string) (BookingState, bool) {
	switch BookingState(s) {
	case "":
		return StateAll, true
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return BookingState(s), true
	default:
		return "", false
	}
}

// Booking is a reservation of one item by one user for the half-open
// interval [Start, End).
type Booking struct {
	ID       int64         `json:"id"`
	ItemID   int64         `json:"item_id"`
	BookerID int64         `json:"booker_id"`
	Start    time.Time     `json:"start"`
	End      time.Time     `json:"end"`
	Status   BookingStatus `json:"status"`
}

// BookingRef is the short booking view attached to item responses
// as the last/next booking of the item.
type BookingRef struct {
	ID       int64     `json:"id"`
	BookerID int64     `json:"booker_id"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

// AdjacentBookings holds the approved bookings closest to a reference
// instant: Last ended most recently before it, Next starts soonest after it.
type AdjacentBookings struct {
	Last *BookingRef
	Next *BookingRef
}
