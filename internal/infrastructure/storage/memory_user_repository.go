package storage

import (
	"context"
	"sync"

	"gradation-bot/internal/domain/entity"
	"gradation-bot/internal/domain/port"
)

// MemoryUserRepository in-memory хранилище пользователей и сессий.
// Сессии живут до перезапуска процесса.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[int64]*entity.User
}

// NewMemoryUserRepository создаёт новое in-memory хранилище
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		users: make(map[int64]*entity.User),
	}
}

// Get возвращает пользователя по ID, создаёт нового если не найден
func (r *MemoryUserRepository) Get(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	r.mu.RLock()
	user, exists := r.users[userID]
	r.mu.RUnlock()

	if exists {
		return user, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.getOrCreateLocked(userID, chatID), nil
}

// Save сохраняет пользователя вместе с сессией
func (r *MemoryUserRepository) Save(ctx context.Context, user *entity.User) error {
	if user.Session == nil {
		user.Session = &entity.Session{}
	}

	r.mu.Lock()
	r.users[user.ID] = user
	r.mu.Unlock()

	return nil
}

// UpdateSession меняет сессию пользователя под блокировкой
func (r *MemoryUserRepository) UpdateSession(ctx context.Context, userID, chatID int64, fn func(*entity.Session) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user := r.getOrCreateLocked(userID, chatID)
	return fn(user.Session)
}

// getOrCreateLocked вызывается под r.mu
func (r *MemoryUserRepository) getOrCreateLocked(userID, chatID int64) *entity.User {
	if user, exists := r.users[userID]; exists {
		return user
	}
	user := entity.NewUser(userID, chatID)
	r.users[userID] = user
	return user
}

// Проверка реализации интерфейса
var _ port.UserRepository = (*MemoryUserRepository)(nil)
