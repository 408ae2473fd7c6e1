package evaluation

import (
	"fmt"
	"time"
)

type ResultBuilder struct {
	Now func() time.Time
}

func NewResultBuilder(now func() time.Time) ResultBuilder {
	if now == nil {
		now = time.Now
	}
	return ResultBuilder{Now: now}
}

// Build assembles the result record, stamping it with the builder's clock.
func (b ResultBuilder) Build(studentID string, answered []AnsweredQuestion, card Scorecard) (Result, error) {
	total := len(answered)
	if card.Score < 0 || card.Score > total {
		return Result{}, fmt.Errorf("%w: score %d outside 0-%d", ErrInconsistentScore, card.Score, total)
	}
	if len(card.Missed) != total-card.Score {
		return Result{}, fmt.Errorf("%w: %d missed for score %d of %d", ErrInconsistentScore, len(card.Missed), card.Score, total)
	}

	now := b.Now
	if now == nil {
		now = time.Now
	}

	missed := make([]MissedQuestion, len(card.Missed))
	copy(missed, card.Missed)

	return Result{
		StudentID:       studentID,
		Date:            now().UTC(),
		Score:           card.Score,
		TotalQuestions:  total,
		MissedQuestions: missed,
	}, nil
}
