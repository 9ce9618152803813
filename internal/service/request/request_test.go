package request_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shareit/internal/lib/clock"
	"shareit/internal/lib/logger/handlers/slogdiscard"
	"shareit/internal/models"
	"shareit/internal/service/request"
	"shareit/internal/service/request/mocks"
	"shareit/internal/storage"
)

var tNow = time.Date(2024, 1, 11, 12, 0, 0, 0, time.UTC)

type deps struct {
	store *mocks.Store
	items *mocks.ItemProvider
	users *mocks.UserProvider
}

func newService(t *testing.T) (*request.Service, deps) {
	t.Helper()

	d := deps{
		store: mocks.NewStore(t),
		items: mocks.NewItemProvider(t),
		users: mocks.NewUserProvider(t),
	}

	svc := request.New(slogdiscard.NewDiscardLogger(), d.store, d.items, d.users, clock.Fixed{T: tNow})

	return svc, d
}

func TestCreate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc, d := newService(t)

		d.users.On("GetUser", mock.Anything, int64(5)).
			Return(&models.User{ID: 5, Name: "alice"}, nil).Once()
		d.store.On("CreateRequest", mock.Anything, mock.MatchedBy(func(r *models.ItemRequest) bool {
			return r.Description == "need a drill" && r.RequestorID == 5 && r.Created.Equal(tNow)
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*models.ItemRequest).ID = 7
		}).Return(nil).Once()

		got, err := svc.Create(context.Background(), 5, "need a drill")
		require.NoError(t, err)
		assert.Equal(t, int64(7), got.ID)
		assert.Equal(t, tNow, got.Created)
	})

	t.Run("Requestor not found", func(t *testing.T) {
		svc, d := newService(t)

		d.users.On("GetUser", mock.Anything, int64(99)).
			Return(nil, storage.ErrUserNotFound).Once()

		_, err := svc.Create(context.Background(), 99, "need a drill")
		require.ErrorIs(t, err, storage.ErrUserNotFound)
	})
}

func TestGet(t *testing.T) {
	t.Run("Attaches answering items", func(t *testing.T) {
		svc, d := newService(t)

		d.users.On("GetUser", mock.Anything, int64(5)).
			Return(&models.User{ID: 5}, nil).Once()
		d.store.On("GetRequest", mock.Anything, int64(7)).
			Return(&models.ItemRequest{ID: 7, Description: "need a drill", RequestorID: 2}, nil).Once()
		reqID := int64(7)
		d.items.On("ListItemsByRequests", mock.Anything, []int64{7}).
			Return(map[int64][]models.Item{7: {{ID: 10, Name: "drill", RequestID: &reqID}}}, nil).Once()

		got, err := svc.Get(context.Background(), 5, 7)
		require.NoError(t, err)
		require.Len(t, got.Items, 1)
		assert.Equal(t, int64(10), got.Items[0].ID)
	})

	t.Run("Request not found", func(t *testing.T) {
		svc, d := newService(t)

		d.users.On("GetUser", mock.Anything, int64(5)).
			Return(&models.User{ID: 5}, nil).Once()
		d.store.On("GetRequest", mock.Anything, int64(404)).
			Return(nil, storage.ErrRequestNotFound).Once()

		_, err := svc.Get(context.Background(), 5, 404)
		require.ErrorIs(t, err, storage.ErrRequestNotFound)
	})

	t.Run("Unknown user", func(t *testing.T) {
		svc, d := newService(t)

		d.users.On("GetUser", mock.Anything, int64(99)).
			Return(nil, storage.ErrUserNotFound).Once()

		_, err := svc.Get(context.Background(), 99, 7)
		require.ErrorIs(t, err, storage.ErrUserNotFound)
	})
}

func TestListOwn(t *testing.T) {
	t.Run("Requests without answers get empty items", func(t *testing.T) {
		svc, d := newService(t)

		d.users.On("GetUser", mock.Anything, int64(5)).
			Return(&models.User{ID: 5}, nil).Once()
		d.store.On("ListRequestsByRequestor", mock.Anything, int64(5), 0, 10).
			Return([]models.ItemRequest{
				{ID: 8, Description: "need a ladder", RequestorID: 5},
				{ID: 7, Description: "need a drill", RequestorID: 5},
			}, nil).Once()
		d.items.On("ListItemsByRequests", mock.Anything, []int64{8, 7}).
			Return(map[int64][]models.Item{7: {{ID: 10, Name: "drill"}}}, nil).Once()

		got, err := svc.ListOwn(context.Background(), 5, 0, 10)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Empty(t, got[0].Items)
		assert.NotNil(t, got[0].Items)
		assert.Len(t, got[1].Items, 1)
	})

	t.Run("Unknown user", func(t *testing.T) {
		svc, d := newService(t)

		d.users.On("GetUser", mock.Anything, int64(99)).
			Return(nil, storage.ErrUserNotFound).Once()

		_, err := svc.ListOwn(context.Background(), 99, 0, 10)
		require.ErrorIs(t, err, storage.ErrUserNotFound)
	})
}

func TestListOthers(t *testing.T) {
	svc, d := newService(t)

	d.users.On("GetUser", mock.Anything, int64(5)).
		Return(&models.User{ID: 5}, nil).Once()
	d.store.On("ListRequestsByOthers", mock.Anything, int64(5), 20, 5).
		Return([]models.ItemRequest{{ID: 7, RequestorID: 2}}, nil).Once()
	d.items.On("ListItemsByRequests", mock.Anything, []int64{7}).
		Return(map[int64][]models.Item{}, nil).Once()

	got, err := svc.ListOthers(context.Background(), 5, 20, 5)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Empty(t, got[0].Items)
}
