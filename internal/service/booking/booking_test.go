package booking_test

import (
	"context"
	"testing"
	"time"

	"shareit/internal/lib/clock"
	"shareit/internal/lib/logger/handlers/slogdiscard"
	"shareit/internal/models"
	"shareit/internal/service/booking"
	"shareit/internal/service/booking/mocks"
	"shareit/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	tStart = time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	tEnd   = time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC)
	tNow   = time.Date(2024, 1, 11, 12, 0, 0, 0, time.UTC)
)

func availableItem() *models.Item {
	return &models.Item{ID: 1, Name: "drill", Description: "cordless drill", Available: true, OwnerID: 10}
}

func booker() *models.User {
	return &models.User{ID: 20, Name: "Alice", Email: "alice@example.com"}
}

func newService(t *testing.T) (*booking.Service, *mocks.Store, *mocks.ItemProvider, *mocks.UserProvider) {
	t.Helper()

	store := mocks.NewStore(t)
	items := mocks.NewItemProvider(t)
	users := mocks.NewUserProvider(t)

	svc := booking.New(slogdiscard.NewDiscardLogger(), store, items, users, clock.Fixed{T: tNow})

	return svc, store, items, users
}

func TestCreate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		req       booking.CreateRequest
		mockSetup func(store *mocks.Store, items *mocks.ItemProvider, users *mocks.UserProvider)
		wantErr   error
	}{
		{
			name: "Success",
			req:  booking.CreateRequest{ItemID: 1, BookerID: 20, Start: tStart, End: tEnd},
			mockSetup: func(store *mocks.Store, items *mocks.ItemProvider, users *mocks.UserProvider) {
				items.On("GetItem", mock.Anything, int64(1)).Return(availableItem(), nil)
				users.On("GetUser", mock.Anything, int64(20)).Return(booker(), nil)
				store.On("CreateBooking", mock.Anything, mock.MatchedBy(func(b *models.Booking) bool {
					return b.ItemID == 1 && b.BookerID == 20 && b.Start.Equal(tStart) && b.End.Equal(tEnd)
				})).Run(func(args mock.Arguments) {
					b := args.Get(1).(*models.Booking)
					b.ID = 100
					b.Status = models.StatusWaiting
				}).Return(nil)
			},
		},
		{
			name:      "End before start",
			req:       booking.CreateRequest{ItemID: 1, BookerID: 20, Start: tEnd, End: tStart},
			mockSetup: func(store *mocks.Store, items *mocks.ItemProvider, users *mocks.UserProvider) {},
			wantErr:   storage.ErrInvalidInterval,
		},
		{
			name:      "End equals start",
			req:       booking.CreateRequest{ItemID: 1, BookerID: 20, Start: tStart, End: tStart},
			mockSetup: func(store *mocks.Store, items *mocks.ItemProvider, users *mocks.UserProvider) {},
			wantErr:   storage.ErrInvalidInterval,
		},
		{
			name: "Item not found",
			req:  booking.CreateRequest{ItemID: 404, BookerID: 20, Start: tStart, End: tEnd},
			mockSetup: func(store *mocks.Store, items *mocks.ItemProvider, users *mocks.UserProvider) {
				items.On("GetItem", mock.Anything, int64(404)).Return(nil, storage.ErrItemNotFound)
			},
			wantErr: storage.ErrItemNotFound,
		},
		{
			name: "Booker not found",
			req:  booking.CreateRequest{ItemID: 1, BookerID: 404, Start: tStart, End: tEnd},
			mockSetup: func(store *mocks.Store, items *mocks.ItemProvider, users *mocks.UserProvider) {
				items.On("GetItem", mock.Anything, int64(1)).Return(availableItem(), nil)
				users.On("GetUser", mock.Anything, int64(404)).Return(nil, storage.ErrUserNotFound)
			},
			wantErr: storage.ErrUserNotFound,
		},
		{
			name: "Item unavailable",
			req:  booking.CreateRequest{ItemID: 1, BookerID: 20, Start: tStart, End: tEnd},
			mockSetup: func(store *mocks.Store, items *mocks.ItemProvider, users *mocks.UserProvider) {
				item := availableItem()
				item.Available = false
				items.On("GetItem", mock.Anything, int64(1)).Return(item, nil)
				users.On("GetUser", mock.Anything, int64(20)).Return(booker(), nil)
			},
			wantErr: storage.ErrItemUnavailable,
		},
		{
			name: "Owner books own item",
			req:  booking.CreateRequest{ItemID: 1, BookerID: 10, Start: tStart, End: tEnd},
			mockSetup: func(store *mocks.Store, items *mocks.ItemProvider, users *mocks.UserProvider) {
				items.On("GetItem", mock.Anything, int64(1)).Return(availableItem(), nil)
				users.On("GetUser", mock.Anything, int64(10)).Return(&models.User{ID: 10, Name: "Owner"}, nil)
			},
			wantErr: storage.ErrSelfBooking,
		},
		{
			name: "Interval conflict",
			req:  booking.CreateRequest{ItemID: 1, BookerID: 20, Start: tStart, End: tEnd},
			mockSetup: func(store *mocks.Store, items *mocks.ItemProvider, users *mocks.UserProvider) {
				items.On("GetItem", mock.Anything, int64(1)).Return(availableItem(), nil)
				users.On("GetUser", mock.Anything, int64(20)).Return(booker(), nil)
				store.On("CreateBooking", mock.Anything, mock.Anything).Return(storage.ErrIntervalConflict)
			},
			wantErr: storage.ErrIntervalConflict,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc, store, items, users := newService(t)
			tc.mockSetup(store, items, users)

			detail, err := svc.Create(context.Background(), tc.req)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, detail)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(100), detail.ID)
			assert.Equal(t, models.StatusWaiting, detail.Status)
			assert.Equal(t, tc.req.ItemID, detail.Item.ID)
			assert.Equal(t, tc.req.BookerID, detail.Booker.ID)
			assert.True(t, detail.Start.Equal(tc.req.Start))
			assert.True(t, detail.End.Equal(tc.req.End))
		})
	}
}

func TestDecide(t *testing.T) {
	t.Parallel()

	waiting := func() *models.Booking {
		return &models.Booking{ID: 100, ItemID: 1, BookerID: 20, Start: tStart, End: tEnd, Status: models.StatusWaiting}
	}

	testCases := []struct {
		name       string
		actorID    int64
		approve    bool
		mockSetup  func(store *mocks.Store, items *mocks.ItemProvider, users *mocks.UserProvider)
		wantErr    error
		wantStatus models.BookingStatus
	}{
		{
			name:    "Approve",
			actorID: 10,
			approve: true,
			mockSetup: func(store *mocks.Store, items *mocks.ItemProvider, users *mocks.UserProvider) {
				store.On("GetBooking", mock.Anything, int64(100)).Return(waiting(), nil)
				items.On("GetItem", mock.Anything, int64(1)).Return(availableItem(), nil)
				approved := waiting()
				approved.Status = models.StatusApproved
				store.On("DecideBooking", mock.Anything, int64(100), true).Return(approved, nil)
				users.On("GetUser", mock.Anything, int64(20)).Return(booker(), nil)
			},
			wantStatus: models.StatusApproved,
		},
		{
			name:    "Reject",
			actorID: 10,
			approve: false,
			mockSetup: func(store *mocks.Store, items *mocks.ItemProvider, users *mocks.UserProvider) {
				store.On("GetBooking", mock.Anything, int64(100)).Return(waiting(), nil)
				items.On("GetItem", mock.Anything, int64(1)).Return(availableItem(), nil)
				rejected := waiting()
				rejected.Status = models.StatusRejected
				store.On("DecideBooking", mock.Anything, int64(100), false).Return(rejected, nil)
				users.On("GetUser", mock.Anything, int64(20)).Return(booker(), nil)
			},
			wantStatus: models.StatusRejected,
		},
		{
			name:    "Booking not found",
			actorID: 10,
			approve: true,
			mockSetup: func(store *mocks.Store, items *mocks.ItemProvider, users *mocks.UserProvider) {
				store.On("GetBooking", mock.Anything, int64(100)).Return(nil, storage.ErrBookingNotFound)
			},
			wantErr: storage.ErrBookingNotFound,
		},
		{
			name:    "Not the item owner",
			actorID: 99,
			approve: true,
			mockSetup: func(store *mocks.Store, items *mocks.ItemProvider, users *mocks.UserProvider) {
				store.On("GetBooking", mock.Anything, int64(100)).Return(waiting(), nil)
				items.On("GetItem", mock.Anything, int64(1)).Return(availableItem(), nil)
			},
			wantErr: storage.ErrNotItemOwner,
		},
		{
			name:    "Booker cannot decide",
			actorID: 20,
			approve: true,
			mockSetup: func(store *mocks.Store, items *mocks.ItemProvider, users *mocks.UserProvider) {
				store.On("GetBooking", mock.Anything, int64(100)).Return(waiting(), nil)
				items.On("GetItem", mock.Anything, int64(1)).Return(availableItem(), nil)
			},
			wantErr: storage.ErrNotItemOwner,
		},
		{
			name:    "Second decision fails",
			actorID: 10,
			approve: true,
			mockSetup: func(store *mocks.Store, items *mocks.ItemProvider, users *mocks.UserProvider) {
				approved := waiting()
				approved.Status = models.StatusApproved
				store.On("GetBooking", mock.Anything, int64(100)).Return(approved, nil)
				items.On("GetItem", mock.Anything, int64(1)).Return(availableItem(), nil)
				store.On("DecideBooking", mock.Anything, int64(100), true).Return(nil, storage.ErrAlreadyDecided)
			},
			wantErr: storage.ErrAlreadyDecided,
		},
		{
			name:    "Approval conflicts with existing approved booking",
			actorID: 10,
			approve: true,
			mockSetup: func(store *mocks.Store, items *mocks.ItemProvider, users *mocks.UserProvider) {
				store.On("GetBooking", mock.Anything, int64(100)).Return(waiting(), nil)
				items.On("GetItem", mock.Anything, int64(1)).Return(availableItem(), nil)
				store.On("DecideBooking", mock.Anything, int64(100), true).Return(nil, storage.ErrIntervalConflict)
			},
			wantErr: storage.ErrIntervalConflict,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc, store, items, users := newService(t)
			tc.mockSetup(store, items, users)

			detail, err := svc.Decide(context.Background(), tc.actorID, 100, tc.approve)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, detail)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, detail.Status)
		})
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	existing := func() *models.Booking {
		return &models.Booking{ID: 100, ItemID: 1, BookerID: 20, Start: tStart, End: tEnd, Status: models.StatusWaiting}
	}

	testCases := []struct {
		name      string
		actorID   int64
		mockSetup func(store *mocks.Store, items *mocks.ItemProvider, users *mocks.UserProvider)
		wantErr   error
	}{
		{
			name:    "Booker reads own booking",
			actorID: 20,
			mockSetup: func(store *mocks.Store, items *mocks.ItemProvider, users *mocks.UserProvider) {
				store.On("GetBooking", mock.Anything, int64(100)).Return(existing(), nil)
				items.On("GetItem", mock.Anything, int64(1)).Return(availableItem(), nil)
				users.On("GetUser", mock.Anything, int64(20)).Return(booker(), nil)
			},
		},
		{
			name:    "Owner reads booking of own item",
			actorID: 10,
			mockSetup: func(store *mocks.Store, items *mocks.ItemProvider, users *mocks.UserProvider) {
				store.On("GetBooking", mock.Anything, int64(100)).Return(existing(), nil)
				items.On("GetItem", mock.Anything, int64(1)).Return(availableItem(), nil)
				users.On("GetUser", mock.Anything, int64(20)).Return(booker(), nil)
			},
		},
		{
			name:    "Stranger is rejected",
			actorID: 99,
			mockSetup: func(store *mocks.Store, items *mocks.ItemProvider, users *mocks.UserProvider) {
				store.On("GetBooking", mock.Anything, int64(100)).Return(existing(), nil)
				items.On("GetItem", mock.Anything, int64(1)).Return(availableItem(), nil)
			},
			wantErr: storage.ErrNotAuthorized,
		},
		{
			name:    "Booking not found",
			actorID: 20,
			mockSetup: func(store *mocks.Store, items *mocks.ItemProvider, users *mocks.UserProvider) {
				store.On("GetBooking", mock.Anything, int64(100)).Return(nil, storage.ErrBookingNotFound)
			},
			wantErr: storage.ErrBookingNotFound,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc, store, items, users := newService(t)
			tc.mockSetup(store, items, users)

			detail, err := svc.Get(context.Background(), tc.actorID, 100)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, detail)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(100), detail.ID)
			assert.Equal(t, int64(1), detail.Item.ID)
			assert.Equal(t, int64(20), detail.Booker.ID)
		})
	}
}

func TestListByOwner(t *testing.T) {
	t.Parallel()

	t.Run("Snapshot of now is passed through once", func(t *testing.T) {
		t.Parallel()

		svc, store, items, users := newService(t)

		owner := &models.User{ID: 10, Name: "Owner", Email: "owner@example.com"}
		users.On("GetUser", mock.Anything, int64(10)).Return(owner, nil)

		bookings := []models.Booking{
			{ID: 101, ItemID: 1, BookerID: 20, Start: tStart, End: tEnd, Status: models.StatusApproved},
			{ID: 102, ItemID: 1, BookerID: 20, Start: tStart.AddDate(0, 0, -5), End: tEnd.AddDate(0, 0, -5), Status: models.StatusApproved},
		}
		store.On("ListBookingsByOwner", mock.Anything, int64(10), models.StateCurrent, tNow, 0, 10).
			Return(bookings, nil)

		items.On("GetItem", mock.Anything, int64(1)).Return(availableItem(), nil).Once()
		users.On("GetUser", mock.Anything, int64(20)).Return(booker(), nil).Once()

		details, err := svc.ListByOwner(context.Background(), 10, models.StateCurrent, 0, 10)
		require.NoError(t, err)

		require.Len(t, details, 2)
		assert.Equal(t, int64(101), details[0].ID)
		assert.Equal(t, int64(102), details[1].ID)
	})

	t.Run("Unknown owner", func(t *testing.T) {
		t.Parallel()

		svc, _, _, users := newService(t)
		users.On("GetUser", mock.Anything, int64(404)).Return(nil, storage.ErrUserNotFound)

		_, err := svc.ListByOwner(context.Background(), 404, models.StateAll, 0, 10)
		require.ErrorIs(t, err, storage.ErrUserNotFound)
	})
}

func TestListByBooker(t *testing.T) {
	t.Parallel()

	t.Run("Forwards filter and pagination", func(t *testing.T) {
		t.Parallel()

		svc, store, items, users := newService(t)

		users.On("GetUser", mock.Anything, int64(20)).Return(booker(), nil).Once()
		store.On("ListBookingsByBooker", mock.Anything, int64(20), models.StateRejected, tNow, 20, 5).
			Return([]models.Booking{
				{ID: 101, ItemID: 1, BookerID: 20, Start: tStart, End: tEnd, Status: models.StatusRejected},
			}, nil)
		items.On("GetItem", mock.Anything, int64(1)).Return(availableItem(), nil)
		users.On("GetUser", mock.Anything, int64(20)).Return(booker(), nil).Once()

		details, err := svc.ListByBooker(context.Background(), 20, models.StateRejected, 20, 5)
		require.NoError(t, err)

		require.Len(t, details, 1)
		assert.Equal(t, models.StatusRejected, details[0].Status)
	})

	t.Run("Unknown booker", func(t *testing.T) {
		t.Parallel()

		svc, _, _, users := newService(t)
		users.On("GetUser", mock.Anything, int64(404)).Return(nil, storage.ErrUserNotFound)

		_, err := svc.ListByBooker(context.Background(), 404, models.StateAll, 0, 10)
		require.ErrorIs(t, err, storage.ErrUserNotFound)
	})
}
