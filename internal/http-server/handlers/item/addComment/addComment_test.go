package addComment

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shareit/internal/http-server/handlers/item/addComment/mocks"
	"shareit/internal/lib/logger/handlers/slogdiscard"
	"shareit/internal/models"
	"shareit/internal/storage"
)

func TestAddCommentHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	created := time.Date(2024, 1, 11, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name           string
		userHeader     string
		url            string
		requestBody    string
		mockSetup      func(m *mocks.CommentAdder)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			userHeader:  "5",
			url:         "/items/10/comment",
			requestBody: `{"text": "works great"}`,
			mockSetup: func(m *mocks.CommentAdder) {
				m.On("AddComment", mock.Anything, int64(5), int64(10), "works great").
					Return(&models.Comment{
						ID:         77,
						Text:       "works great",
						ItemID:     10,
						AuthorID:   5,
						AuthorName: "alice",
						Created:    created,
					}, nil).Once()
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"id":77`)
				assert.Contains(t, body, `"alice"`)
			},
		},
		{
			name:           "Missing user header",
			userHeader:     "",
			url:            "/items/10/comment",
			requestBody:    `{"text": "works great"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"user id header is required"}`,
		},
		{
			name:           "Empty text",
			userHeader:     "5",
			url:            "/items/10/comment",
			requestBody:    `{"text": ""}`,
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Text")
			},
		},
		{
			name:        "No finished booking",
			userHeader:  "5",
			url:         "/items/10/comment",
			requestBody: `{"text": "never used it"}`,
			mockSetup: func(m *mocks.CommentAdder) {
				m.On("AddComment", mock.Anything, int64(5), int64(10), "never used it").
					Return(nil, storage.ErrCommentNotAllowed).Once()
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"commenting requires a finished booking of the item"}`,
		},
		{
			name:        "Item not found",
			userHeader:  "5",
			url:         "/items/404/comment",
			requestBody: `{"text": "hi"}`,
			mockSetup: func(m *mocks.CommentAdder) {
				m.On("AddComment", mock.Anything, int64(5), int64(404), "hi").
					Return(nil, storage.ErrItemNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"item not found"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockAdder := mocks.NewCommentAdder(t)
			if tc.mockSetup != nil {
				tc.mockSetup(mockAdder)
			}

			handler := New(logger, mockAdder)

			req, err := http.NewRequest(http.MethodPost, tc.url, bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)
			if tc.userHeader != "" {
				req.Header.Set("X-Sharer-User-Id", tc.userHeader)
			}

			router := chi.NewRouter()
			router.Post("/items/{itemId}/comment", handler)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
