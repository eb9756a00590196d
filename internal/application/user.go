package app

import (
	"context"

	"gradation-bot/internal/domain/entity"
	"gradation-bot/internal/domain/port"
)

type UserService struct {
	repo port.UserRepository
}

func NewUserService(repo port.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Get(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.repo.Get(ctx, userID, chatID)
}

func (s *UserService) SetState(ctx context.Context, userID, chatID int64, state entity.UserState) (*entity.User, error) {
	user, err := s.repo.Get(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}

	user.SetState(state)
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// UpdateSession меняет сессию пользователя атомарно.
func (s *UserService) UpdateSession(ctx context.Context, userID, chatID int64, fn func(*entity.Session) error) error {
	return s.repo.UpdateSession(ctx, userID, chatID, fn)
}

func (s *UserService) BeginImage(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.SetState(ctx, userID, chatID, entity.StateAwaitingPhoto)
}

func (s *UserService) BeginSieve(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.SetState(ctx, userID, chatID, entity.StateAwaitingSieveTable)
}

// Cancel возвращает в главное меню и бросает начатую калибровку.
// Снимок и уже измеренный масштаб сохраняются.
func (s *UserService) Cancel(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	err := s.repo.UpdateSession(ctx, userID, chatID, func(sess *entity.Session) error {
		sess.PendingReference = 0
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.SetState(ctx, userID, chatID, entity.StateMainMenu)
}
