package app

import (
	"context"
	"errors"

	"gradation-bot/internal/domain/entity"
	"gradation-bot/internal/domain/port"
)

// SieveService строит кривую по результатам ситового анализа.
type SieveService struct {
	users    *UserService
	analyzer *Analyzer
	parser   port.SieveTableParser
	renderer port.ChartRenderer
}

func NewSieveService(users *UserService, analyzer *Analyzer, parser port.SieveTableParser, renderer port.ChartRenderer) *SieveService {
	return &SieveService{
		users:    users,
		analyzer: analyzer,
		parser:   parser,
		renderer: renderer,
	}
}

// Submit разбирает таблицу (текст или файл) и считает кривую.
// При ошибке пользователь остаётся в ожидании таблицы и может прислать исправленную.
func (s *SieveService) Submit(ctx context.Context, userID, chatID int64, name string, data []byte) (*AnalysisOutput, error) {
	if s.parser == nil {
		return nil, errors.New("sieve parser is not configured")
	}

	entries, err := s.parser.Parse(ctx, name, data)
	if err != nil {
		return nil, err
	}

	result, err := s.analyzer.AnalyzeSieve(entries)
	if err != nil {
		return nil, err
	}

	err = s.users.UpdateSession(ctx, userID, chatID, func(sess *entity.Session) error {
		sess.LastResult = result
		return nil
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.users.SetState(ctx, userID, chatID, entity.StateMainMenu); err != nil {
		return nil, err
	}
	return render(s.renderer, result), nil
}

// SubmitText — Submit для таблицы, присланной текстом сообщения.
func (s *SieveService) SubmitText(ctx context.Context, userID, chatID int64, text string) (*AnalysisOutput, error) {
	return s.Submit(ctx, userID, chatID, "", []byte(text))
}
