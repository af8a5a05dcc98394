package login

import (
	accountModels "github.com/m04kA/SMC-ParkingService/internal/service/accounts/models"
)

// LoginRequest HTTP request model
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse HTTP response model: пользователь в обертке "user"
type LoginResponse struct {
	User *accountModels.UserResponse `json:"user"`
}
