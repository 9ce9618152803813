package request

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// UserHeader identifies the acting user on every authenticated route.
const UserHeader = "X-Sharer-User-Id"

const (
	defaultFrom = 0
	defaultSize = 10
)

var (
	ErrNoUserHeader  = errors.New("user id header is required")
	ErrBadUserHeader = errors.New("invalid user id header")
	ErrBadPagination = errors.New("invalid pagination parameters")
	ErrBadPathID     = errors.New("invalid id in path")
	ErrMissingPathID = errors.New("id is required in path")
)

// UserID reads the acting user from the request header.
func UserID(r *http.Request) (int64, error) {
	raw := r.Header.Get(UserHeader)
	if raw == "" {
		return 0, ErrNoUserHeader
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrBadUserHeader
	}

	return id, nil
}

// PathID reads a positive numeric path parameter.
func PathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return 0, ErrMissingPathID
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrBadPathID
	}

	return id, nil
}

// Pagination reads the from/size query parameters, applying defaults when
// absent. Negative from, and zero or negative size, are rejected.
func Pagination(r *http.Request) (from, size int, err error) {
	from, size = defaultFrom, defaultSize

	if raw := r.URL.Query().Get("from"); raw != "" {
		from, err = strconv.Atoi(raw)
		if err != nil || from < 0 {
			return 0, 0, ErrBadPagination
		}
	}

	if raw := r.URL.Query().Get("size"); raw != "" {
		size, err = strconv.Atoi(raw)
		if err != nil || size <= 0 {
			return 0, 0, ErrBadPagination
		}
	}

	return from, size, nil
}
