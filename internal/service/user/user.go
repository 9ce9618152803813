package user

import (
	"context"
	"fmt"
	"log/slog"

	"shareit/internal/models"
)

// PatchRequest carries a partial user update; nil fields stay unchanged.
type PatchRequest struct {
	Name  *string
	Email *string
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Store
type Store interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id int64) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, id int64) error
}

type Service struct {
	log   *slog.Logger
	store Store
}

func New(log *slog.Logger, store Store) *Service {
	return &Service{log: log, store: store}
}

func (s *Service) Create(ctx context.Context, user *models.User) (*models.User, error) {
	const op = "service.user.Create"

	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("user created", slog.Int64("user_id", user.ID))

	return user, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*models.User, error) {
	const op = "service.user.Get"

	user, err := s.store.GetUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

func (s *Service) List(ctx context.Context) ([]models.User, error) {
	const op = "service.user.List"

	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return users, nil
}

// Patch applies a partial update and returns the resulting user.
func (s *Service) Patch(ctx context.Context, id int64, patch PatchRequest) (*models.User, error) {
	const op = "service.user.Patch"

	user, err := s.store.GetUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}

	if err = s.store.UpdateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("user changed", slog.Int64("user_id", user.ID))

	return user, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	const op = "service.user.Delete"

	if err := s.store.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("user deleted", slog.Int64("user_id", id))

	return nil
}
