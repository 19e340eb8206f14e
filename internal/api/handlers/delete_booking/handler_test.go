package delete_booking

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonBooking/internal/service/bookings"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

type serviceFunc func(ctx context.Context, id int64) error

func (f serviceFunc) Delete(ctx context.Context, id int64) error {
	return f(ctx, id)
}

func del(svc BookingService, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/bookings/{bookingId}", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodDelete)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, target, nil))
	return rec
}

func TestHandle(t *testing.T) {
	deleted := map[int64]bool{}
	svc := serviceFunc(func(_ context.Context, id int64) error {
		switch id {
		case 1:
			deleted[id] = true
			return nil
		case 2:
			return bookings.ErrBookingNotFound
		default:
			return errors.New("connection refused")
		}
	})

	rec := del(svc, "/bookings/1")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.True(t, deleted[1])

	assert.Equal(t, http.StatusNotFound, del(svc, "/bookings/2").Code)
	assert.Equal(t, http.StatusInternalServerError, del(svc, "/bookings/3").Code)
	assert.Equal(t, http.StatusBadRequest, del(svc, "/bookings/-1").Code)
}
