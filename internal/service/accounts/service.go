package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	userRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/users"
	"github.com/m04kA/SMC-ParkingService/internal/service/accounts/models"
)

// Service сервис учетных записей. Используется только для регистрации,
// входа и проверки владельца бронирования; пароли хранятся и сравниваются
// как есть (см. нефункциональные ограничения сервиса).
type Service struct {
	userRepo UserRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса учетных записей
func NewService(userRepo UserRepository, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Register регистрирует нового пользователя.
// Email должен быть уникален; при конфликте возвращает ErrEmailTaken.
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.UserResponse, error) {
	s.logger.Info("Register: creating user email=%s", req.Email)

	if err := validateRegisterRequest(req); err != nil {
		s.logger.Warn("Register: validation failed for email=%s: %v", req.Email, err)
		return nil, err
	}

	// Проверяем, что email свободен
	_, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err == nil {
		s.logger.Warn("Register: email=%s already registered", req.Email)
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, userRepo.ErrUserNotFound) {
		s.logger.Error("Register: repository error for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	user := &domain.User{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		// Гонка двух регистраций на один email решается уникальным ключом
		if errors.Is(err, userRepo.ErrDuplicateEmail) {
			s.logger.Warn("Register: email=%s taken concurrently", req.Email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("Register: failed to create user email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Register: successfully created user id=%s", created.ID)
	return models.FromDomainUser(created), nil
}

// Authenticate проверяет пару email/пароль и возвращает пользователя.
// Для неизвестного email и для неверного пароля возвращается одна и та же
// ошибка ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*models.UserResponse, error) {
	s.logger.Info("Authenticate: login attempt email=%s", email)

	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Authenticate: unknown email=%s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Authenticate: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: Authenticate - repository error: %v", ErrInternal, err)
	}

	if user.Password != password {
		s.logger.Warn("Authenticate: wrong password for email=%s", email)
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("Authenticate: successful login user id=%s", user.ID)
	return models.FromDomainUser(user), nil
}

// GetByID получает пользователя по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetByID: repository error for user id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainUser(user), nil
}

// validateRegisterRequest валидирует поля запроса регистрации
func validateRegisterRequest(req *models.RegisterRequest) error {
	if strings.TrimSpace(req.Username) == "" {
		return fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	if !strings.Contains(req.Email, "@") {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if len(req.Password) < domain.MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, domain.MinPasswordLength)
	}
	if strings.TrimSpace(req.FullName) == "" {
		return fmt.Errorf("%w: fullName is required", ErrInvalidInput)
	}
	return nil
}
