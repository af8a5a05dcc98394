package login

import (
	"context"

	accountModels "github.com/m04kA/SMC-ParkingService/internal/service/accounts/models"
)

type AccountsService interface {
	Authenticate(ctx context.Context, email, password string) (*accountModels.UserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
