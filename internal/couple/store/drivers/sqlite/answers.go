package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/secondate/secondate/internal/couple/domain"
)

type answersRepo struct {
	db dbtx
}

func (r *answersRepo) GetAnswers(ctx context.Context, userID string) (domain.AnswerRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT user_id, answers, created_at, updated_at FROM answers WHERE user_id = ?`,
		userID)

	var rec domain.AnswerRecord
	var raw string
	if err := row.Scan(&rec.UserID, &raw, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return domain.AnswerRecord{}, mapNotFound(err)
	}

	if err := json.Unmarshal([]byte(raw), &rec.Answers); err != nil {
		return domain.AnswerRecord{}, fmt.Errorf("decode answers for user %s: %w", userID, err)
	}
	return rec, nil
}

func (r *answersRepo) UpsertAnswers(ctx context.Context, userID string, answers domain.AnswerSet) error {
	raw, err := json.Marshal(answers)
	if err != nil {
		return fmt.Errorf("encode answers: %w", err)
	}

	now := time.Now().UTC()
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO answers (user_id, answers, created_at, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (user_id) DO UPDATE SET answers = excluded.answers, updated_at = excluded.updated_at`,
		userID, string(raw), now, now)
	return err
}

func (r *answersRepo) HasAnswers(ctx context.Context, userID string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM answers WHERE user_id = ?`, userID).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
