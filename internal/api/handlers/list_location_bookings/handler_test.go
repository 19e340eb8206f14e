package list_location_bookings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/service/bookings"
	"github.com/m04kA/SMC-SalonBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

type serviceFunc func(ctx context.Context, req *models.ListByLocationRequest) (*models.BookingListResponse, error)

func (f serviceFunc) ListByLocation(ctx context.Context, req *models.ListByLocationRequest) (*models.BookingListResponse, error) {
	return f(ctx, req)
}

func list(svc BookingService, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/locations/{locationId}/bookings", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle(t *testing.T) {
	svc := serviceFunc(func(_ context.Context, req *models.ListByLocationRequest) (*models.BookingListResponse, error) {
		if req.LocationID != 1 {
			return nil, bookings.ErrLocationNotFound
		}
		assert.Equal(t, time.Date(2026, time.November, 2, 0, 0, 0, 0, time.UTC), req.Date)
		return &models.BookingListResponse{Bookings: []models.BookingResponse{{ID: 7, StartTime: "09:00"}}}, nil
	})

	rec := list(svc, "/locations/1/bookings?date=2026-11-02")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":7`)

	assert.Equal(t, http.StatusNotFound, list(svc, "/locations/9/bookings?date=2026-11-02").Code)
	assert.Equal(t, http.StatusBadRequest, list(svc, "/locations/1/bookings").Code)
	assert.Equal(t, http.StatusBadRequest, list(svc, "/locations/1/bookings?date=2026/11/02").Code)
	assert.Equal(t, http.StatusBadRequest, list(svc, "/locations/one/bookings?date=2026-11-02").Code)
}
