package app

import (
	"context"
	"errors"

	"gradation-bot/internal/domain/entity"
	"gradation-bot/internal/domain/port"
)

// ReportService выгружает последний результат пользователя.
type ReportService struct {
	users    *UserService
	exporter port.ReportExporter
}

func NewReportService(users *UserService, exporter port.ReportExporter) *ReportService {
	return &ReportService{users: users, exporter: exporter}
}

// ExportLast возвращает файл отчёта и его имя.
func (s *ReportService) ExportLast(ctx context.Context, userID, chatID int64) ([]byte, string, error) {
	if s.exporter == nil {
		return nil, "", errors.New("exporter is not configured")
	}

	var result *entity.AnalysisResult
	err := s.users.UpdateSession(ctx, userID, chatID, func(sess *entity.Session) error {
		result = sess.LastResult
		return nil
	})
	if err != nil {
		return nil, "", err
	}
	if result == nil {
		return nil, "", ErrNoResult
	}

	return s.exporter.Export(result)
}
