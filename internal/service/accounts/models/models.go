package models

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// RegisterRequest запрос на регистрацию пользователя
type RegisterRequest struct {
	Username    string  `json:"username"`
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	FullName    string  `json:"fullName"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
}

// UserResponse данные пользователя. Пароль наружу не отдается.
type UserResponse struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	FullName    string    `json:"fullName"`
	PhoneNumber *string   `json:"phoneNumber,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// FromDomainUser конвертирует domain модель в DTO, отбрасывая пароль
func FromDomainUser(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		FullName:    u.FullName,
		PhoneNumber: u.PhoneNumber,
		CreatedAt:   u.CreatedAt,
	}
}
