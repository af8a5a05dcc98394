package signup

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/service/accounts"
	accountModels "github.com/m04kA/SMC-ParkingService/internal/service/accounts/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgEmailTaken         = "user with this email already exists"
)

type Handler struct {
	service AccountsService
	logger  Logger
}

func NewHandler(service AccountsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/auth/signup
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req accountModels.RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/signup - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	user, err := h.service.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, accounts.ErrEmailTaken):
			h.logger.Warn("POST /auth/signup - Email taken: email=%s", req.Email)
			handlers.RespondBadRequest(w, msgEmailTaken)

		case errors.Is(err, accounts.ErrInvalidInput):
			h.logger.Warn("POST /auth/signup - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /auth/signup - Failed to register user: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/signup - User registered: user_id=%s", user.ID)
	handlers.RespondJSON(w, http.StatusOK, SignupResponse{User: user})
}
