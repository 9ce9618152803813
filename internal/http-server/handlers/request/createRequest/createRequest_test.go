package createRequest

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

	"shareit/internal/http-server/handlers/request/createRequest/mocks"
	"shareit/internal/lib/logger/handlers/slogdiscard"
	"shareit/internal/models"
	"shareit/internal/storage"
)

func TestCreateRequestHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	created := time.Date(2024, 1, 11, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name           string
		userHeader     string
		requestBody    string
		mockSetup      func(m *mocks.RequestCreator)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			userHeader:  "5",
			requestBody: `{"description": "need a drill"}`,
			mockSetup: func(m *mocks.RequestCreator) {
				m.On("Create", mock.Anything, int64(5), "need a drill").
					Return(&models.ItemRequest{
						ID:          7,
						Description: "need a drill",
						RequestorID: 5,
						Created:     created,
					}, nil).Once()
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"id":7`)
			},
		},
		{
			name:           "Missing user header",
			userHeader:     "",
			requestBody:    `{"description": "need a drill"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"user id header is required"}`,
		},
		{
			name:           "Missing description",
			userHeader:     "5",
			requestBody:    `{}`,
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Description")
			},
		},
		{
			name:        "Unknown user",
			userHeader:  "99",
			requestBody: `{"description": "need a drill"}`,
			mockSetup: func(m *mocks.RequestCreator) {
				m.On("Create", mock.Anything, int64(99), "need a drill").
					Return(nil, storage.ErrUserNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"user not found"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCreator := mocks.NewRequestCreator(t)
			if tc.mockSetup != nil {
				tc.mockSetup(mockCreator)
			}

			handler := New(logger, mockCreator)

			req, err := http.NewRequest(http.MethodPost, "/requests", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)
			if tc.userHeader != "" {
				req.Header.Set("X-Sharer-User-Id", tc.userHeader)
			}

			router := chi.NewRouter()
			router.Post("/requests", handler)

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
