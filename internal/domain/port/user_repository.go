package port

import (
	"context"

	"gradation-bot/internal/domain/entity"
)

// UserRepository интерфейс хранилища пользователей и их сессий
type UserRepository interface {
	// Get возвращает пользователя по ID, создаёт нового если не найден
	Get(ctx context.Context, userID, chatID int64) (*entity.User, error)

	// Save сохраняет пользователя вместе с сессией
	Save(ctx context.Context, user *entity.User) error

	// UpdateSession меняет сессию пользователя под блокировкой хранилища.
	// Ошибка из fn возвращается как есть, изменения при этом остаются.
	UpdateSession(ctx context.Context, userID, chatID int64, fn func(*entity.Session) error) error
}
