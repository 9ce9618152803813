package listBookings

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shareit/internal/http-server/handlers/booking/listBookings/mocks"
	"shareit/internal/lib/logger/handlers/slogdiscard"
	"shareit/internal/models"
	"shareit/internal/service/booking"
	"shareit/internal/storage"
)

func TestListBookingsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		userHeader     string
		url            string
		mockSetup      func(m *mocks.BookingLister)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:       "Defaults to ALL with default paging",
			userHeader: "5",
			url:        "/bookings",
			mockSetup: func(m *mocks.BookingLister) {
				m.On("ListByBooker", mock.Anything, int64(5), models.StateAll, 0, 10).
					Return([]booking.Detail{{ID: 100, Status: models.StatusWaiting}}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"id":100`)
			},
		},
		{
			name:       "State and paging forwarded",
			userHeader: "5",
			url:        "/bookings?state=REJECTED&from=20&size=5",
			mockSetup: func(m *mocks.BookingLister) {
				m.On("ListByBooker", mock.Anything, int64(5), models.StateRejected, 20, 5).
					Return([]booking.Detail{}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Unknown state",
			userHeader:     "5",
			url:            "/bookings?state=SOMETIMES",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"Unknown state: SOMETIMES"}`,
		},
		{
			name:           "Negative from",
			userHeader:     "5",
			url:            "/bookings?from=-1",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid pagination parameters"}`,
		},
		{
			name:           "Zero size",
			userHeader:     "5",
			url:            "/bookings?size=0",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid pagination parameters"}`,
		},
		{
			name:           "Missing user header",
			userHeader:     "",
			url:            "/bookings",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"user id header is required"}`,
		},
		{
			name:       "Unknown user",
			userHeader: "99",
			url:        "/bookings",
			mockSetup: func(m *mocks.BookingLister) {
				m.On("ListByBooker", mock.Anything, int64(99), models.StateAll, 0, 10).
					Return(nil, storage.ErrUserNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"user not found"}`,
		},
		{
			name:       "Internal error",
			userHeader: "5",
			url:        "/bookings",
			mockSetup: func(m *mocks.BookingLister) {
				m.On("ListByBooker", mock.Anything, int64(5), models.StateAll, 0, 10).
					Return(nil, assert.AnError).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to list bookings"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockLister := mocks.NewBookingLister(t)
			if tc.mockSetup != nil {
				tc.mockSetup(mockLister)
			}

			handler := New(logger, mockLister)

			req, err := http.NewRequest(http.MethodGet, tc.url, nil)
			require.NoError(t, err)
			if tc.userHeader != "" {
				req.Header.Set("X-Sharer-User-Id", tc.userHeader)
			}

			router := chi.NewRouter()
			router.Get("/bookings", handler)

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
