package item

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"shareit/internal/lib/clock"
	"shareit/internal/models"
	"shareit/internal/storage"
)

// Response is an item with its resolved neighbours: the approved bookings
// around now (owner view only) and the comments left by past borrowers.
type Response struct {
	models.Item
	LastBooking *models.BookingRef `json:"last_booking,omitempty"`
	NextBooking *models.BookingRef `json:"next_booking,omitempty"`
	Comments    []models.Comment   `json:"comments"`
}

// PatchRequest carries a partial item update; nil fields stay unchanged.
type PatchRequest struct {
	Name        *string
	Description *string
	Available   *bool
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Store
type Store interface {
	CreateItem(ctx context.Context, item *models.Item) error
	GetItem(ctx context.Context, id int64) (*models.Item, error)
	UpdateItem(ctx context.Context, item *models.Item) error
	ListItemsByOwner(ctx context.Context, ownerID int64, from, size int) ([]models.Item, error)
	SearchItems(ctx context.Context, text string, from, size int) ([]models.Item, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingIndex
type BookingIndex interface {
	FindAdjacent(ctx context.Context, itemID int64, at time.Time) (models.AdjacentBookings, error)
	FindAdjacentByItems(ctx context.Context, itemIDs []int64, at time.Time) (map[int64]models.AdjacentBookings, error)
	HasFinishedBooking(ctx context.Context, itemID, bookerID int64, before time.Time) (bool, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CommentStore
type CommentStore interface {
	CreateComment(ctx context.Context, comment *models.Comment) error
	ListCommentsByItem(ctx context.Context, itemID int64) ([]models.Comment, error)
	ListCommentsByItems(ctx context.Context, itemIDs []int64) (map[int64][]models.Comment, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserProvider
type UserProvider interface {
	GetUser(ctx context.Context, id int64) (*models.User, error)
}

type Service struct {
	log      *slog.Logger
	store    Store
	bookings BookingIndex
	comments CommentStore
	users    UserProvider
	clock    clock.Clock
}

func New(log *slog.Logger, store Store, bookings BookingIndex, comments CommentStore, users UserProvider, clk clock.Clock) *Service {
	return &Service{
		log:      log,
		store:    store,
		bookings: bookings,
		comments: comments,
		users:    users,
		clock:    clk,
	}
}

func (s *Service) Create(ctx context.Context, item *models.Item) (*models.Item, error) {
	const op = "service.item.Create"

	if _, err := s.users.GetUser(ctx, item.OwnerID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.store.CreateItem(ctx, item); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("item created",
		slog.Int64("item_id", item.ID),
		slog.Int64("owner_id", item.OwnerID),
	)

	return item, nil
}

// Patch applies a partial update. Only the owner may change an item.
func (s *Service) Patch(ctx context.Context, userID, itemID int64, patch PatchRequest) (*Response, error) {
	const op = "service.item.Patch"

	item, err := s.store.GetItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if item.OwnerID != userID {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotItemOwner)
	}

	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.Available != nil {
		item.Available = *patch.Available
	}

	if err = s.store.UpdateItem(ctx, item); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("item changed", slog.Int64("item_id", item.ID))

	resp, err := s.respond(ctx, item, true)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return resp, nil
}

// Get returns the item with comments. Last/next bookings are attached only
// for the owner; borrowers should not see other users' schedules.
func (s *Service) Get(ctx context.Context, userID, itemID int64) (*Response, error) {
	const op = "service.item.Get"

	item, err := s.store.GetItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	resp, err := s.respond(ctx, item, item.OwnerID == userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return resp, nil
}

// ListByOwner returns the user's items with comments and adjacent bookings,
// batching both lookups across the page.
func (s *Service) ListByOwner(ctx context.Context, userID int64, from, size int) ([]Response, error) {
	const op = "service.item.ListByOwner"

	items, err := s.store.ListItemsByOwner(ctx, userID, from, size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	responses, err := s.respondList(ctx, items, true)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return responses, nil
}

// Search finds available items by text. An empty query returns an empty
// result without touching the store.
func (s *Service) Search(ctx context.Context, text string, from, size int) ([]Response, error) {
	const op = "service.item.Search"

	if text == "" {
		return []Response{}, nil
	}

	items, err := s.store.SearchItems(ctx, text, from, size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	responses, err := s.respondList(ctx, items, false)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return responses, nil
}

// AddComment stores a review. Only users whose approved booking of the item
// already ended may comment.
func (s *Service) AddComment(ctx context.Context, authorID, itemID int64, text string) (*models.Comment, error) {
	const op = "service.item.AddComment"

	author, err := s.users.GetUser(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if _, err = s.store.GetItem(ctx, itemID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := s.clock.Now()

	finished, err := s.bookings.HasFinishedBooking(ctx, itemID, authorID, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !finished {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrCommentNotAllowed)
	}

	comment := &models.Comment{
		Text:       text,
		ItemID:     itemID,
		AuthorID:   authorID,
		AuthorName: author.Name,
		Created:    now,
	}

	if err = s.comments.CreateComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("comment saved",
		slog.Int64("item_id", itemID),
		slog.Int64("author_id", authorID),
	)

	return comment, nil
}

func (s *Service) respond(ctx context.Context, item *models.Item, withBookings bool) (*Response, error) {
	resp := &Response{Item: *item, Comments: []models.Comment{}}

	comments, err := s.comments.ListCommentsByItem(ctx, item.ID)
	if err != nil {
		return nil, err
	}
	if comments != nil {
		resp.Comments = comments
	}

	if withBookings {
		adjacent, err := s.bookings.FindAdjacent(ctx, item.ID, s.clock.Now())
		if err != nil {
			return nil, err
		}
		resp.LastBooking = adjacent.Last
		resp.NextBooking = adjacent.Next
	}

	return resp, nil
}

func (s *Service) respondList(ctx context.Context, items []models.Item, withBookings bool) ([]Response, error) {
	itemIDs := make([]int64, 0, len(items))
	for _, item := range items {
		itemIDs = append(itemIDs, item.ID)
	}

	comments, err := s.comments.ListCommentsByItems(ctx, itemIDs)
	if err != nil {
		return nil, err
	}

	var adjacent map[int64]models.AdjacentBookings
	if withBookings {
		adjacent, err = s.bookings.FindAdjacentByItems(ctx, itemIDs, s.clock.Now())
		if err != nil {
			return nil, err
		}
	}

	responses := make([]Response, 0, len(items))
	for _, item := range items {
		resp := Response{Item: item, Comments: []models.Comment{}}
		if cs := comments[item.ID]; cs != nil {
			resp.Comments = cs
		}
		if pair, ok := adjacent[item.ID]; ok {
			resp.LastBooking = pair.Last
			resp.NextBooking = pair.Next
		}
		responses = append(responses, resp)
	}

	return responses, nil
}
