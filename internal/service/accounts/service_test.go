package accounts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userStorage "github.com/m04kA/SMC-ParkingService/internal/infra/storage/users"
	"github.com/m04kA/SMC-ParkingService/internal/service/accounts/models"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
)

func newService() *Service {
	return NewService(userStorage.NewMemoryRepository(), logger.Discard())
}

func validRequest() *models.RegisterRequest {
	return &models.RegisterRequest{
		Username: "tenzin",
		Email:    "tenzin@example.com",
		Password: "secret1",
		FullName: "Tenzin Bhutia",
	}
}

func TestService_Register(t *testing.T) {
	svc := newService()

	user, err := svc.Register(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "tenzin@example.com", user.Email)
}

func TestService_Register_Validation(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(r *models.RegisterRequest)
	}{
		{"EmptyUsername", func(r *models.RegisterRequest) { r.Username = "" }},
		{"EmptyFullName", func(r *models.RegisterRequest) { r.FullName = "" }},
		{"BadEmail", func(r *models.RegisterRequest) { r.Email = "not-an-email" }},
		{"ShortPassword", func(r *models.RegisterRequest) { r.Password = "abc" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := svc.Register(ctx, req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.Register(ctx, validRequest())
	require.NoError(t, err)

	dup := validRequest()
	dup.Username = "other"
	_, err = svc.Register(ctx, dup)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestService_Authenticate(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	created, err := svc.Register(ctx, validRequest())
	require.NoError(t, err)

	user, err := svc.Authenticate(ctx, "tenzin@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	// Неверный пароль и неизвестный email дают одну и ту же ошибку
	_, err = svc.Authenticate(ctx, "tenzin@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "nobody@example.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_GetByID(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	created, err := svc.Register(ctx, validRequest())
	require.NoError(t, err)

	user, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "tenzin", user.Username)

	_, err = svc.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
