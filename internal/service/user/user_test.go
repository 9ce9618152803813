package user_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shareit/internal/lib/logger/handlers/slogdiscard"
	"shareit/internal/models"
	"shareit/internal/service/user"
	"shareit/internal/service/user/mocks"
	"shareit/internal/storage"
)

func strPtr(s string) *string { return &s }

func TestCreate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		store := mocks.NewStore(t)
		svc := user.New(slogdiscard.NewDiscardLogger(), store)

		store.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			return u.Name == "alice" && u.Email == "alice@example.com"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*models.User).ID = 1
		}).Return(nil).Once()

		got, err := svc.Create(context.Background(), &models.User{Name: "alice", Email: "alice@example.com"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), got.ID)
	})

	t.Run("Duplicate email", func(t *testing.T) {
		store := mocks.NewStore(t)
		svc := user.New(slogdiscard.NewDiscardLogger(), store)

		store.On("CreateUser", mock.Anything, mock.Anything).
			Return(storage.ErrEmailTaken).Once()

		_, err := svc.Create(context.Background(), &models.User{Name: "bob", Email: "alice@example.com"})
		require.ErrorIs(t, err, storage.ErrEmailTaken)
	})
}

func TestPatch(t *testing.T) {
	t.Run("Updates only the given fields", func(t *testing.T) {
		store := mocks.NewStore(t)
		svc := user.New(slogdiscard.NewDiscardLogger(), store)

		store.On("GetUser", mock.Anything, int64(1)).
			Return(&models.User{ID: 1, Name: "alice", Email: "alice@example.com"}, nil).Once()
		store.On("UpdateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			return u.ID == 1 && u.Name == "alicia" && u.Email == "alice@example.com"
		})).Return(nil).Once()

		got, err := svc.Patch(context.Background(), 1, user.PatchRequest{Name: strPtr("alicia")})
		require.NoError(t, err)
		assert.Equal(t, "alicia", got.Name)
		assert.Equal(t, "alice@example.com", got.Email)
	})

	t.Run("User not found", func(t *testing.T) {
		store := mocks.NewStore(t)
		svc := user.New(slogdiscard.NewDiscardLogger(), store)

		store.On("GetUser", mock.Anything, int64(99)).
			Return(nil, storage.ErrUserNotFound).Once()

		_, err := svc.Patch(context.Background(), 99, user.PatchRequest{Name: strPtr("x")})
		require.ErrorIs(t, err, storage.ErrUserNotFound)
	})

	t.Run("Email conflict on update", func(t *testing.T) {
		store := mocks.NewStore(t)
		svc := user.New(slogdiscard.NewDiscardLogger(), store)

		store.On("GetUser", mock.Anything, int64(1)).
			Return(&models.User{ID: 1, Name: "alice", Email: "alice@example.com"}, nil).Once()
		store.On("UpdateUser", mock.Anything, mock.Anything).
			Return(storage.ErrEmailTaken).Once()

		_, err := svc.Patch(context.Background(), 1, user.PatchRequest{Email: strPtr("bob@example.com")})
		require.ErrorIs(t, err, storage.ErrEmailTaken)
	})
}

func TestDelete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		store := mocks.NewStore(t)
		svc := user.New(slogdiscard.NewDiscardLogger(), store)

		store.On("DeleteUser", mock.Anything, int64(1)).Return(nil).Once()

		require.NoError(t, svc.Delete(context.Background(), 1))
	})

	t.Run("User not found", func(t *testing.T) {
		store := mocks.NewStore(t)
		svc := user.New(slogdiscard.NewDiscardLogger(), store)

		store.On("DeleteUser", mock.Anything, int64(99)).
			Return(storage.ErrUserNotFound).Once()

		require.ErrorIs(t, svc.Delete(context.Background(), 99), storage.ErrUserNotFound)
	})
}

func TestList(t *testing.T) {
	store := mocks.NewStore(t)
	svc := user.New(slogdiscard.NewDiscardLogger(), store)

	store.On("ListUsers", mock.Anything).
		Return([]models.User{{ID: 1, Name: "alice"}, {ID: 2, Name: "bob"}}, nil).Once()

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
