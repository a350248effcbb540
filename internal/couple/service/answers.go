package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/secondate/secondate/internal/couple/domain"
	"github.com/secondate/secondate/internal/couple/store"
	"github.com/secondate/secondate/pkg/slogx"
)

var (
	ErrEmptyAnswers    = errors.New("answers must not be empty")
	ErrAnswersNotFound = errors.New("no answers saved for user")
)

// AnswersService stores and retrieves a user's own questionnaire answers.
type AnswersService struct {
	Store store.Store
}

// Save replaces the caller's answer set. Saving again overwrites the
// previous set wholesale.
func (s *AnswersService) Save(ctx context.Context, userID string, answers domain.AnswerSet) error {
	if len(answers) == 0 {
		return ErrEmptyAnswers
	}

	if err := s.Store.Answers().UpsertAnswers(ctx, userID, answers); err != nil {
		slogx.FromContext(ctx).Error("failed to save answers",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
		return err
	}

	slogx.FromContext(ctx).Debug("answers saved",
		slog.String("user_id", userID),
		slog.Int("count", len(answers)),
	)
	return nil
}

// Get returns the caller's saved answer set.
func (s *AnswersService) Get(ctx context.Context, userID string) (domain.AnswerSet, error) {
	record, err := s.Store.Answers().GetAnswers(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrAnswersNotFound
		}
		return nil, err
	}
	return record.Answers, nil
}
