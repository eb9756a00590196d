package app

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gradation-bot/internal/domain/entity"
	"gradation-bot/internal/domain/gradation"
	"gradation-bot/internal/domain/port"
)

// ImageService ведёт сценарий анализа по снимку: снимок, калибровка, расчёт.
type ImageService struct {
	users    *UserService
	analyzer *Analyzer
	renderer port.ChartRenderer
}

// NewImageService создаёт сервис анализа снимков.
func NewImageService(users *UserService, analyzer *Analyzer, renderer port.ChartRenderer) *ImageService {
	return &ImageService{
		users:    users,
		analyzer: analyzer,
		renderer: renderer,
	}
}

// AcceptPhoto сохраняет снимок в сессии. Прежний масштаб сбрасывается,
// дальше пользователь должен откалибровать новый снимок.
func (s *ImageService) AcceptPhoto(ctx context.Context, userID, chatID int64, photo []byte) (*entity.User, error) {
	if len(photo) == 0 {
		return nil, ErrNoImage
	}
	err := s.users.UpdateSession(ctx, userID, chatID, func(sess *entity.Session) error {
		sess.LoadImage(photo)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.users.SetState(ctx, userID, chatID, entity.StateAwaitingCalibration)
}

// BeginCalibration запоминает длину эталона и ждёт координаты линии.
// Прежний масштаб сбрасывается сразу: до успешного завершения калибровки
// пересчёт размеров заблокирован.
func (s *ImageService) BeginCalibration(ctx context.Context, userID, chatID int64, reference float64) (*entity.User, error) {
	err := s.users.UpdateSession(ctx, userID, chatID, func(sess *entity.Session) error {
		if !sess.HasImage() {
			return ErrNoImage
		}
		sess.InvalidateScale()
		if _, err := gradation.Calibrate(1, reference); err != nil {
			return err
		}
		sess.PendingReference = reference
		return nil
	})
	if errors.Is(err, gradation.ErrInvalidCalibrationInput) {
		return nil, s.failCalibration(ctx, userID, chatID, err)
	}
	if err != nil {
		return nil, err
	}
	return s.users.SetState(ctx, userID, chatID, entity.StateAwaitingCalibrationLine)
}

// RejectCalibration отмечает калибровку неудачной, когда ввод не удалось
// даже разобрать. Масштаб сбрасывается, как при любой другой ошибке.
func (s *ImageService) RejectCalibration(ctx context.Context, userID, chatID int64, cause error) error {
	var hasImage bool
	err := s.users.UpdateSession(ctx, userID, chatID, func(sess *entity.Session) error {
		sess.InvalidateScale()
		hasImage = sess.HasImage()
		return nil
	})
	if err != nil {
		return err
	}
	if !hasImage {
		return cause
	}
	return s.failCalibration(ctx, userID, chatID, cause)
}

// failCalibration возвращает пользователя к шагу /calibrate и отдаёт cause.
func (s *ImageService) failCalibration(ctx context.Context, userID, chatID int64, cause error) error {
	if _, err := s.users.SetState(ctx, userID, chatID, entity.StateAwaitingCalibration); err != nil {
		log.Printf("Error resetting state for user %d: %v", userID, err)
	}
	return cause
}

// FinishCalibration считает масштаб по линии, проведённой вдоль эталона.
// При ошибке масштаб сбрасывается и пользователь снова ждёт /calibrate.
func (s *ImageService) FinishCalibration(ctx context.Context, userID, chatID int64, a, b entity.Point) (entity.ScaleFactor, error) {
	var scale entity.ScaleFactor
	err := s.users.UpdateSession(ctx, userID, chatID, func(sess *entity.Session) error {
		if !sess.HasImage() {
			return ErrNoImage
		}
		var err error
		scale, err = gradation.CalibrateLine(a, b, sess.PendingReference)
		if err != nil {
			sess.InvalidateScale()
			return err
		}
		sess.SetScale(scale)
		return nil
	})
	if err != nil {
		return 0, s.failCalibration(ctx, userID, chatID, err)
	}

	if _, err := s.users.SetState(ctx, userID, chatID, entity.StateMainMenu); err != nil {
		return 0, err
	}
	return scale, nil
}

// Calibrate выполняет калибровку одной командой: длина эталона и линия сразу.
func (s *ImageService) Calibrate(ctx context.Context, userID, chatID int64, reference float64, a, b entity.Point) (entity.ScaleFactor, error) {
	if _, err := s.BeginCalibration(ctx, userID, chatID, reference); err != nil {
		return 0, err
	}
	return s.FinishCalibration(ctx, userID, chatID, a, b)
}

// Analyze запускает расчёт по текущему снимку и масштабу сессии.
func (s *ImageService) Analyze(ctx context.Context, userID, chatID int64) (*AnalysisOutput, error) {
	var (
		image []byte
		scale entity.ScaleFactor
	)
	err := s.users.UpdateSession(ctx, userID, chatID, func(sess *entity.Session) error {
		if !sess.HasImage() {
			return ErrNoImage
		}
		if !sess.Calibrated() {
			return ErrNotCalibrated
		}
		image, scale = sess.Image, sess.Scale
		return nil
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.users.SetState(ctx, userID, chatID, entity.StateProcessing); err != nil {
		return nil, err
	}
	defer func() {
		if _, err := s.users.SetState(ctx, userID, chatID, entity.StateMainMenu); err != nil {
			log.Printf("Error resetting state for user %d: %v", userID, err)
		}
	}()

	result, err := s.analyzer.AnalyzeImage(ctx, image, scale)
	if err != nil {
		return nil, fmt.Errorf("analyze image: %w", err)
	}

	err = s.users.UpdateSession(ctx, userID, chatID, func(sess *entity.Session) error {
		sess.LastResult = result
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := render(s.renderer, result)
	if len(result.Segmentation.Regions) > 0 {
		if out.Highlighted, err = s.analyzer.Highlight(image, result); err != nil {
			log.Printf("Error highlighting particles %s: %v", result.ID, err)
		}
	}
	return out, nil
}
