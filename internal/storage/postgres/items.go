package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"shareit/internal/models"
	"shareit/internal/storage"

	"github.com/lib/pq"
)

func (s *Storage) CreateItem(ctx context.Context, item *models.Item) error {
	query := `
		INSERT INTO items (name, description, is_available, owner_id, request_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := s.DB.QueryRowContext(ctx, query,
		item.Name,
		item.Description,
		item.Available,
		item.OwnerID,
		item.RequestID,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}

	return nil
}

func (s *Storage) GetItem(ctx context.Context, id int64) (*models.Item, error) {
	query := `
		SELECT id, name, description, is_available, owner_id, request_id
		FROM items
		WHERE id = $1`

	var item models.Item
	err := s.DB.QueryRowContext(ctx, query, id).Scan(
		&item.ID,
		&item.Name,
		&item.Description,
		&item.Available,
		&item.OwnerID,
		&item.RequestID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrItemNotFound
		}

		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	return &item, nil
}

func (s *Storage) UpdateItem(ctx context.Context, item *models.Item) error {
	query := `
		UPDATE items
		SET name = $1, description = $2, is_available = $3
		WHERE id = $4`

	result, err := s.DB.ExecContext(ctx, query, item.Name, item.Description, item.Available, item.ID)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	if affected == 0 {
		return storage.ErrItemNotFound
	}

	return nil
}

func (s *Storage) ListItemsByOwner(ctx context.Context, ownerID int64, from, size int) ([]models.Item, error) {
	query := `
		SELECT id, name, description, is_available, owner_id, request_id
		FROM items
		WHERE owner_id = $1
		ORDER BY id
		LIMIT $2 OFFSET $3`

	return s.queryItems(ctx, query, ownerID, size, from)
}

// likeEscaper neutralizes pattern metacharacters in user search text, so an
// input like "%" looks for a literal percent sign instead of matching every
// row.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(text string) string {
	return likeEscaper.Replace(text)
}

// SearchItems finds available items whose name or description contains the
// text, case-insensitively. Empty-text handling belongs to the caller.
func (s *Storage) SearchItems(ctx context.Context, text string, from, size int) ([]models.Item, error) {
	query := `
		SELECT id, name, description, is_available, owner_id, request_id
		FROM items
		WHERE is_available = TRUE
		AND (name ILIKE '%' || $1 || '%' ESCAPE '\'
			OR description ILIKE '%' || $1 || '%' ESCAPE '\')
		ORDER BY id
		LIMIT $2 OFFSET $3`

	return s.queryItems(ctx, query, escapeLike(text), size, from)
}

// ListItemsByRequests returns items answering any of the given item
// requests, keyed by request id.
func (s *Storage) ListItemsByRequests(ctx context.Context, requestIDs []int64) (map[int64][]models.Item, error) {
	if len(requestIDs) == 0 {
		return map[int64][]models.Item{}, nil
	}

	query := `
		SELECT id, name, description, is_available, owner_id, request_id
		FROM items
		WHERE request_id = ANY($1)
		ORDER BY id`

	items, err := s.queryItems(ctx, query, pq.Array(requestIDs))
	if err != nil {
		return nil, err
	}

	byRequest := make(map[int64][]models.Item, len(requestIDs))
	for _, item := range items {
		if item.RequestID == nil {
			continue
		}
		byRequest[*item.RequestID] = append(byRequest[*item.RequestID], item)
	}

	return byRequest, nil
}

func (s *Storage) queryItems(ctx context.Context, query string, args ...any) ([]models.Item, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		var item models.Item
		err = rows.Scan(
			&item.ID,
			&item.Name,
			&item.Description,
			&item.Available,
			&item.OwnerID,
			&item.RequestID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating items: %w", err)
	}

	return items, nil
}
