package signup

import (
	accountModels "github.com/m04kA/SMC-ParkingService/internal/service/accounts/models"
)

// SignupResponse HTTP response model: пользователь в обертке "user"
type SignupResponse struct {
	User *accountModels.UserResponse `json:"user"`
}
