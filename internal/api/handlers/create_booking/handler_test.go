package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createBooking "github.com/m04kA/SMC-ParkingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
)

type stubUseCase struct {
	resp *createBooking.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, _ *createBooking.Request) (*createBooking.Response, error) {
	return s.resp, s.err
}

func doRequest(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Success(t *testing.T) {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	uc := &stubUseCase{resp: &createBooking.Response{
		ID:                    "b1",
		UserID:                "u1",
		ParkingSpotID:         "1",
		VehicleNumber:         "SK-01-A-1234",
		VehicleType:           "car",
		StartTime:             start,
		ExpectedDurationHours: 2,
		Status:                "active",
		SpotName:              "MG Marg Central Parking",
		SpotHourlyRate:        40,
		SpotAvailableSpots:    11,
		SpotStatus:            "available",
		CreatedAt:             start,
	}}

	h := NewHandler(uc, logger.Discard())
	rec := doRequest(h, `{"userId":"u1","parkingSpotId":"1","vehicleNumber":"SK-01-A-1234","vehicleType":"car","expectedDuration":2}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "b1", resp.ID)
	assert.Equal(t, "active", resp.Status)
	assert.Nil(t, resp.TotalCost)
	assert.Equal(t, 11, resp.SpotAvailableSpots)
}

func TestHandler_SpotFullConflict(t *testing.T) {
	h := NewHandler(&stubUseCase{err: createBooking.ErrSpotFull}, logger.Discard())
	rec := doRequest(h, `{"userId":"u1","parkingSpotId":"5","vehicleNumber":"SK-01-A-1234","vehicleType":"car","expectedDuration":2}`)

	assert.Equal(t, http.StatusConflict, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "parking spot is full", resp["message"])
}

func TestHandler_BadJSON(t *testing.T) {
	h := NewHandler(&stubUseCase{}, logger.Discard())
	rec := doRequest(h, `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_BadStartTime(t *testing.T) {
	h := NewHandler(&stubUseCase{}, logger.Discard())
	rec := doRequest(h, `{"userId":"u1","parkingSpotId":"1","vehicleNumber":"SK-01-A-1234","vehicleType":"car","expectedDuration":2,"startTime":"10 March"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_SpotNotFound(t *testing.T) {
	h := NewHandler(&stubUseCase{err: createBooking.ErrSpotNotFound}, logger.Discard())
	rec := doRequest(h, `{"userId":"u1","parkingSpotId":"missing","vehicleNumber":"SK-01-A-1234","vehicleType":"car","expectedDuration":2}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
