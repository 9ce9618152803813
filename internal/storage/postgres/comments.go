package postgres

import (
	"context"
	"fmt"

	"shareit/internal/models"

	"github.com/lib/pq"
)

func (s *Storage) CreateComment(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (text, item_id, author_id, created)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	err := s.DB.QueryRowContext(ctx, query,
		comment.Text,
		comment.ItemID,
		comment.AuthorID,
		comment.Created,
	).Scan(&comment.ID)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	return nil
}

func (s *Storage) ListCommentsByItem(ctx context.Context, itemID int64) ([]models.Comment, error) {
	comments, err := s.ListCommentsByItems(ctx, []int64{itemID})
	if err != nil {
		return nil, err
	}

	return comments[itemID], nil
}

// ListCommentsByItems returns comments of the given items keyed by item id,
// with author names resolved in the same query.
func (s *Storage) ListCommentsByItems(ctx context.Context, itemIDs []int64) (map[int64][]models.Comment, error) {
	if len(itemIDs) == 0 {
		return map[int64][]models.Comment{}, nil
	}

	query := `
		SELECT c.id, c.text, c.item_id, c.author_id, u.name, c.created
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.item_id = ANY($1)
		ORDER BY c.created`

	rows, err := s.DB.QueryContext(ctx, query, pq.Array(itemIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	byItem := make(map[int64][]models.Comment, len(itemIDs))
	for rows.Next() {
		var comment models.Comment
		err = rows.Scan(
			&comment.ID,
			&comment.Text,
			&comment.ItemID,
			&comment.AuthorID,
			&comment.AuthorName,
			&comment.Created,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		byItem[comment.ItemID] = append(byItem[comment.ItemID], comment)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}

	return byItem, nil
}
