package suggest_times

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	suggestTimes "github.com/m04kA/SMC-SalonBooking/internal/usecase/suggest_times"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

type useCaseFunc func(ctx context.Context, req *suggestTimes.Request) (*suggestTimes.Response, error)

func (f useCaseFunc) Execute(ctx context.Context, req *suggestTimes.Request) (*suggestTimes.Response, error) {
	return f(ctx, req)
}

func serve(t *testing.T, uc SuggestTimesUseCase, target string) *httptest.ResponseRecorder {
	t.Helper()

	router := mux.NewRouter()
	router.HandleFunc("/locations/{locationId}/suggested-times", NewHandler(uc, logger.NewNop()).Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_OK(t *testing.T) {
	var got *suggestTimes.Request
	uc := useCaseFunc(func(_ context.Context, req *suggestTimes.Request) (*suggestTimes.Response, error) {
		got = req
		return &suggestTimes.Response{
			LocationID: req.LocationID,
			ServiceID:  req.ServiceID,
			Staff:      req.Staff,
			Date:       req.Date,
			Times:      []types.TimeString{"09:00", "09:15"},
		}, nil
	})

	rec := serve(t, uc, "/locations/1/suggested-times?serviceId=10&date=2026-11-02&staffId=7")
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, got)
	assert.Equal(t, int64(1), got.LocationID)
	assert.Equal(t, int64(10), got.ServiceID)
	assert.Equal(t, domain.SpecificStaff(7), got.Staff)
	assert.Equal(t, time.Date(2026, time.November, 2, 0, 0, 0, 0, time.UTC), got.Date)

	var body SuggestedTimesResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, []string{"09:00", "09:15"}, body.Times)
	assert.Equal(t, "7", body.StaffID)
}

func TestHandle_EmptyIsArray(t *testing.T) {
	uc := useCaseFunc(func(_ context.Context, req *suggestTimes.Request) (*suggestTimes.Response, error) {
		return &suggestTimes.Response{Staff: req.Staff, Date: req.Date}, nil
	})

	rec := serve(t, uc, "/locations/1/suggested-times?serviceId=10&date=2026-11-02")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"locationId":0,"serviceId":0,"staffId":"any","date":"2026-11-02","times":[]}`, rec.Body.String())
}

func TestHandle_BadParameters(t *testing.T) {
	uc := useCaseFunc(func(context.Context, *suggestTimes.Request) (*suggestTimes.Response, error) {
		t.Fatal("use case must not be called")
		return nil, nil
	})

	for _, target := range []string{
		"/locations/x/suggested-times?serviceId=10&date=2026-11-02",
		"/locations/1/suggested-times?date=2026-11-02",
		"/locations/1/suggested-times?serviceId=abc&date=2026-11-02",
		"/locations/1/suggested-times?serviceId=10",
		"/locations/1/suggested-times?serviceId=10&date=02.11.2026",
		"/locations/1/suggested-times?serviceId=10&date=2026-11-02&staffId=-3",
	} {
		rec := serve(t, uc, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantCode   string
	}{
		{suggestTimes.ErrLocationNotFound, http.StatusNotFound, handlers.CodeNotFound},
		{suggestTimes.ErrServiceNotFound, http.StatusNotFound, handlers.CodeNotFound},
		{suggestTimes.ErrStaffNotFound, http.StatusNotFound, handlers.CodeNotFound},
		{suggestTimes.ErrServiceNotAtLocation, http.StatusBadRequest, handlers.CodeInvalidInput},
		{suggestTimes.ErrStaffNotAtLocation, http.StatusBadRequest, handlers.CodeInvalidInput},
		{suggestTimes.ErrInvalidDate, http.StatusBadRequest, handlers.CodeInvalidInput},
		{fmt.Errorf("%w: db down", suggestTimes.ErrInternal), http.StatusInternalServerError, handlers.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			uc := useCaseFunc(func(context.Context, *suggestTimes.Request) (*suggestTimes.Response, error) {
				return nil, tt.err
			})

			rec := serve(t, uc, "/locations/1/suggested-times?serviceId=10&date=2026-11-02")
			assert.Equal(t, tt.wantStatus, rec.Code)

			var body handlers.ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, tt.wantCode, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}
