package domain

import "time"

// AnswerSet maps question ids to the chosen answer values. One set per user,
// last write wins on re-submission.
type AnswerSet map[string]string

// Clone returns a shallow copy so callers can't mutate stored state.
func (a AnswerSet) Clone() AnswerSet {
	if a == nil {
		return nil
	}
	out := make(AnswerSet, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// AnswerRecord is a user's stored questionnaire submission.
type AnswerRecord struct {
	UserID    string
	Answers   AnswerSet
	CreatedAt time.Time
	UpdatedAt time.Time
}
