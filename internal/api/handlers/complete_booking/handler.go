package complete_booking

import (
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	completeBooking "github.com/m04kA/SMC-ParkingService/internal/usecase/complete_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidEndTime     = "invalid endTime format, expected RFC3339"
	msgBookingNotFound    = "booking not found"
	msgBookingNotActive   = "booking is not active"
)

type Handler struct {
	useCase CompleteBookingUseCase
	logger  Logger
}

func NewHandler(useCase CompleteBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/bookings/{bookingId}/complete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	// Тело опционально: завершение без полей = endTime now, расчет по тарифу
	var req CompleteBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("PATCH /bookings/{id}/complete - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingID)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/complete - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEndTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, completeBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/complete - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, completeBooking.ErrBookingNotActive):
			h.logger.Warn("PATCH /bookings/{id}/complete - Booking not active: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgBookingNotActive)

		case errors.Is(err, completeBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/complete - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /bookings/{id}/complete - Failed to complete booking: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/complete - Booking completed: booking_id=%s", bookingID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
