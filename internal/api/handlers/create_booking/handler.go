package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-ParkingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidStartTime   = "invalid startTime format, expected RFC3339"
	msgUserNotFound       = "user not found"
	msgSpotNotFound       = "parking spot not found"
	msgSpotFull           = "parking spot is full"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSpotFull):
			h.logger.Warn("POST /bookings - Spot full: user_id=%s, spot_id=%s", req.UserID, req.ParkingSpotID)
			handlers.RespondConflict(w, msgSpotFull)

		case errors.Is(err, createBooking.ErrSpotNotFound):
			h.logger.Warn("POST /bookings - Spot not found: spot_id=%s", req.ParkingSpotID)
			handlers.RespondNotFound(w, msgSpotNotFound)

		case errors.Is(err, createBooking.ErrUserNotFound):
			h.logger.Warn("POST /bookings - User not found: user_id=%s", req.UserID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%s, spot_id=%s, error=%v",
				req.UserID, req.ParkingSpotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%s, user_id=%s, spot_id=%s",
		result.ID, req.UserID, req.ParkingSpotID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
