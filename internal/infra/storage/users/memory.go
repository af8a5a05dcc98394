package users

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// MemoryRepository in-memory репозиторий пользователей.
// Хранит записи в map под RWMutex, наружу отдает копии.
type MemoryRepository struct {
	mu      sync.RWMutex
	byID    map[string]*domain.User
	byEmail map[string]string // email (lowercase) -> id
}

// NewMemoryRepository создает пустой in-memory репозиторий
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:    make(map[string]*domain.User),
		byEmail: make(map[string]string),
	}
}

// Create создает нового пользователя
func (r *MemoryRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	emailKey := strings.ToLower(user.Email)
	if _, exists := r.byEmail[emailKey]; exists {
		return nil, ErrDuplicateEmail
	}

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = time.Now()

	stored := *user
	r.byID[stored.ID] = &stored
	r.byEmail[emailKey] = stored.ID

	result := stored
	return &result, nil
}

// GetByID получает пользователя по ID
func (r *MemoryRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}

	result := *user
	return &result, nil
}

// GetByEmail получает пользователя по email (без учета регистра)
func (r *MemoryRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, ErrUserNotFound
	}

	result := *r.byID[id]
	return &result, nil
}
