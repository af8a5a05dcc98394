package signup

import (
	"context"

	accountModels "github.com/m04kA/SMC-ParkingService/internal/service/accounts/models"
)

type AccountsService interface {
	Register(ctx context.Context, req *accountModels.RegisterRequest) (*accountModels.UserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
