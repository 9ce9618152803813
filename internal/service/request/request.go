package request

import (
	"context"
	"fmt"
	"log/slog"

	"shareit/internal/lib/clock"
	"shareit/internal/models"
)

// Response is a request together with the items offered in answer to it.
type Response struct {
	models.ItemRequest
	Items []models.Item `json:"items"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Store
type Store interface {
	CreateRequest(ctx context.Context, request *models.ItemRequest) error
	GetRequest(ctx context.Context, id int64) (*models.ItemRequest, error)
	ListRequestsByRequestor(ctx context.Context, requestorID int64, from, size int) ([]models.ItemRequest, error)
	ListRequestsByOthers(ctx context.Context, userID int64, from, size int) ([]models.ItemRequest, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ItemProvider
type ItemProvider interface {
	ListItemsByRequests(ctx context.Context, requestIDs []int64) (map[int64][]models.Item, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserProvider
type UserProvider interface {
	GetUser(ctx context.Context, id int64) (*models.User, error)
}

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

func (s *Service) Create(ctx context.Context, requestorID int64, description string) (*models.ItemRequest, error) {
	const op = "service.request.Create"

	if _, err := s.users.GetUser(ctx, requestorID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	request := &models.ItemRequest{
		Description: description,
		RequestorID: requestorID,
		Created:     s.clock.Now(),
	}

	if err := s.store.CreateRequest(ctx, request); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("request created",
		slog.Int64("request_id", request.ID),
		slog.Int64("requestor_id", requestorID),
	)

	return request, nil
}

// Get returns a single request with the items answering it. Any known user
// may look a request up.
func (s *Service) Get(ctx context.Context, userID, requestID int64) (*Response, error) {
	const op = "service.request.Get"

	if _, err := s.users.GetUser(ctx, userID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	request, err := s.store.GetRequest(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	responses, err := s.respond(ctx, []models.ItemRequest{*request})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &responses[0], nil
}

// ListOwn returns the user's own requests, newest first, with answering items.
func (s *Service) ListOwn(ctx context.Context, userID int64, from, size int) ([]Response, error) {
	const op = "service.request.ListOwn"

	if _, err := s.users.GetUser(ctx, userID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	requests, err := s.store.ListRequestsByRequestor(ctx, userID, from, size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	responses, err := s.respond(ctx, requests)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return responses, nil
}

// ListOthers returns requests posted by everyone except the user, so owners
// can browse what they might offer.
func (s *Service) ListOthers(ctx context.Context, userID int64, from, size int) ([]Response, error) {
	const op = "service.request.ListOthers"

	if _, err := s.users.GetUser(ctx, userID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	requests, err := s.store.ListRequestsByOthers(ctx, userID, from, size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	responses, err := s.respond(ctx, requests)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return responses, nil
}

func (s *Service) respond(ctx context.Context, requests []models.ItemRequest) ([]Response, error) {
	requestIDs := make([]int64, 0, len(requests))
	for _, request := range requests {
		requestIDs = append(requestIDs, request.ID)
	}

	items, err := s.items.ListItemsByRequests(ctx, requestIDs)
	if err != nil {
		return nil, err
	}

	responses := make([]Response, 0, len(requests))
	for _, request := range requests {
		resp := Response{ItemRequest: request, Items: []models.Item{}}
		if answers := items[request.ID]; answers != nil {
			resp.Items = answers
		}
		responses = append(responses, resp)
	}

	return responses, nil
}
