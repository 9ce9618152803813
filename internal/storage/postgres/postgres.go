package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"shareit/internal/config"
	"shareit/internal/storage"

	"github.com/lib/pq"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = createTables(db); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return &Storage{DB: db}, nil
}

func createTables(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(70) NOT NULL,
			email VARCHAR(254) NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS item_requests (
			id BIGSERIAL PRIMARY KEY,
			description VARCHAR(200) NOT NULL,
			requestor_id BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
			created TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS items (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(70) NOT NULL,
			description VARCHAR(200) NOT NULL,
			is_available BOOLEAN NOT NULL,
			owner_id BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
			request_id BIGINT REFERENCES item_requests (id)
		)`,
		`CREATE TABLE IF NOT EXISTS bookings (
			id BIGSERIAL PRIMARY KEY,
			start_date TIMESTAMPTZ NOT NULL,
			end_date TIMESTAMPTZ NOT NULL,
			item_id BIGINT NOT NULL REFERENCES items (id) ON DELETE RESTRICT,
			booker_id BIGINT NOT NULL REFERENCES users (id) ON DELETE RESTRICT,
			status VARCHAR(8) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS comments (
			id BIGSERIAL PRIMARY KEY,
			text VARCHAR(500) NOT NULL,
			item_id BIGINT NOT NULL REFERENCES items (id) ON DELETE CASCADE,
			author_id BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
			created TIMESTAMPTZ NOT NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_items_owner_id ON items (owner_id)`,
		`CREATE INDEX IF NOT EXISTS idx_items_request_id ON items (request_id)`,
		`CREATE INDEX IF NOT EXISTS idx_bookings_item_id ON bookings (item_id)`,
		`CREATE INDEX IF NOT EXISTS idx_bookings_booker_id ON bookings (booker_id)`,
		`CREATE INDEX IF NOT EXISTS idx_bookings_status ON bookings (status)`,
		`CREATE INDEX IF NOT EXISTS idx_comments_item_id ON comments (item_id)`,
		`CREATE INDEX IF NOT EXISTS idx_item_requests_requestor_id ON item_requests (requestor_id)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to execute query %q: %w", query, err)
		}
	}

	return nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

// txStatementError maps a statement error raised inside a serializable
// transaction. Postgres reports serialization conflicts (SQLSTATE 40001) on
// the failing statement itself, not only at commit, so the retry signal has
// to be extracted here before the error is wrapped away.
func txStatementError(err error, msg string) error {
	if isSerializationFailure(err) {
		return storage.ErrTxConflict
	}

	return fmt.Errorf("%s: %w", msg, err)
}

// isSerializationFailure reports whether the driver error is a postgres
// serialization conflict (SQLSTATE class 40001), which is safe to retry.
func isSerializationFailure(err error) bool {
	var pqErr *pq.Error

	return errors.As(err, &pqErr) && pqErr.Code == "40001"
}

// isUniqueViolation reports whether the driver error is a postgres unique
// constraint violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error

	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// isForeignKeyViolation reports whether the driver error is a postgres
// foreign key violation (SQLSTATE 23503). Booking rows restrict deletion of
// the users and items they reference so rental history stays intact.
func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error

	return errors.As(err, &pqErr) && pqErr.Code == "23503"
}
