package get_session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	bookingsService "github.com/m04kA/SMC-ParkingService/internal/service/bookings"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
)

type stubService struct {
	booking *domain.Booking
	err     error
}

func (s *stubService) GetDomainByID(_ context.Context, _ string) (*domain.Booking, error) {
	return s.booking, s.err
}

func newRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/bookings/{bookingId}/session", h.Handle).Methods(http.MethodGet)
	return r
}

func TestHandler_ActiveSession(t *testing.T) {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	svc := &stubService{booking: &domain.Booking{
		ID:             "b1",
		StartTime:      start,
		Status:         domain.StatusActive,
		SpotHourlyRate: 40,
	}}

	h := NewHandler(svc, logger.Discard())
	h.now = func() time.Time { return start.Add(90 * time.Minute) }

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/b1/session", nil)
	rec := httptest.NewRecorder()
	newRouter(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "b1", resp.BookingID)
	assert.Equal(t, "01:30:00", resp.Duration)
	assert.Equal(t, int64(5400), resp.ElapsedSeconds)
	assert.InDelta(t, 60.0, resp.CurrentCost, 0.001)
	assert.Equal(t, "₹60.00", resp.CurrentCostDisplay)
	assert.Equal(t, "active", resp.Status)
}

func TestHandler_CompletedBookingConflict(t *testing.T) {
	svc := &stubService{booking: &domain.Booking{
		ID:     "b1",
		Status: domain.StatusCompleted,
	}}

	h := NewHandler(svc, logger.Discard())

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/b1/session", nil)
	rec := httptest.NewRecorder()
	newRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandler_NotFound(t *testing.T) {
	svc := &stubService{err: bookingsService.ErrBookingNotFound}

	h := NewHandler(svc, logger.Discard())

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/missing/session", nil)
	rec := httptest.NewRecorder()
	newRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
