package get_session

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	bookingsService "github.com/m04kA/SMC-ParkingService/internal/service/bookings"
	"github.com/m04kA/SMC-ParkingService/internal/session"
)

const (
	msgBookingNotFound  = "booking not found"
	msgSessionNotActive = "booking has no active session"
)

type Handler struct {
	service BookingsService
	logger  Logger
	now     func() time.Time
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
		now:     time.Now,
	}
}

// Handle GET /api/bookings/{bookingId}/session
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	booking, err := h.service.GetDomainByID(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id}/session - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("GET /bookings/{id}/session - Failed to get booking: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if !booking.IsActive() {
		h.logger.Warn("GET /bookings/{id}/session - Booking is %s, not active: booking_id=%s",
			booking.Status, bookingID)
		handlers.RespondConflict(w, msgSessionNotActive)
		return
	}

	snap := session.Track(booking, booking.SpotHourlyRate, h.now())

	handlers.RespondJSON(w, http.StatusOK, FromSnapshot(booking, snap))
}
