package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shareit/internal/models"
	"shareit/internal/storage"
)

func (s *Storage) CreateRequest(ctx context.Context, request *models.ItemRequest) error {
	query := `
		INSERT INTO item_requests (description, requestor_id, created)
		VALUES ($1, $2, $3)
		RETURNING id`

	err := s.DB.QueryRowContext(ctx, query,
		request.Description,
		request.RequestorID,
		request.Created,
	).Scan(&request.ID)
	if err != nil {
		return fmt.Errorf("failed to create item request: %w", err)
	}

	return nil
}

func (s *Storage) GetRequest(ctx context.Context, id int64) (*models.ItemRequest, error) {
	query := `
		SELECT id, description, requestor_id, created
		FROM item_requests
		WHERE id = $1`

	var request models.ItemRequest
	err := s.DB.QueryRowContext(ctx, query, id).Scan(
		&request.ID,
		&request.Description,
		&request.RequestorID,
		&request.Created,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrRequestNotFound
		}

		return nil, fmt.Errorf("failed to get item request: %w", err)
	}

	return &request, nil
}

// ListRequestsByRequestor returns the user's own item requests, newest first.
func (s *Storage) ListRequestsByRequestor(ctx context.Context, requestorID int64, from, size int) ([]models.ItemRequest, error) {
	query := `
		SELECT id, description, requestor_id, created
		FROM item_requests
		WHERE requestor_id = $1
		ORDER BY created DESC
		LIMIT $2 OFFSET $3`

	return s.queryRequests(ctx, query, requestorID, size, from)
}

// ListRequestsByOthers returns item requests created by everyone except the
// user, newest first.
func (s *Storage) ListRequestsByOthers(ctx context.Context, userID int64, from, size int) ([]models.ItemRequest, error) {
	query := `
		SELECT id, description, requestor_id, created
		FROM item_requests
		WHERE requestor_id <> $1
		ORDER BY created DESC
		LIMIT $2 OFFSET $3`

	return s.queryRequests(ctx, query, userID, size, from)
}

func (s *Storage) queryRequests(ctx context.Context, query string, args ...any) ([]models.ItemRequest, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list item requests: %w", err)
	}
	defer rows.Close()

	var requests []models.ItemRequest
	for rows.Next() {
		var request models.ItemRequest
		err = rows.Scan(
			&request.ID,
			&request.Description,
			&request.RequestorID,
			&request.Created,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item request: %w", err)
		}
		requests = append(requests, request)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating item requests: %w", err)
	}

	return requests, nil
}
