package evaluation_test

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/saulo-duarte/tabuada-lambda/internal/evaluation"
)

func answeredFixture() []evaluation.AnsweredQuestion {
	return []evaluation.AnsweredQuestion{
		{Question: evaluation.NewQuestion(2, 3), UserAnswer: 6, Correct: true},
		{Question: evaluation.NewQuestion(5, 4), UserAnswer: 21, Correct: false},
	}
}

func TestScore(t *testing.T) {
	t.Run("OneCorrectOneMissed", func(t *testing.T) {
		card := evaluation.Score(answeredFixture())

		if card.Score != 1 {
			t.Errorf("expected score 1, got %d", card.Score)
		}
		want := []evaluation.MissedQuestion{{Question: "5 x 4", CorrectAnswer: 20, UserAnswer: 21}}
		if !reflect.DeepEqual(card.Missed, want) {
			t.Errorf("unexpected missed list: %+v", card.Missed)
		}
	})

	t.Run("MissedKeepsAnswerOrder", func(t *testing.T) {
		answered := []evaluation.AnsweredQuestion{
			{Question: evaluation.NewQuestion(9, 9), UserAnswer: 80},
			{Question: evaluation.NewQuestion(1, 2), UserAnswer: 2, Correct: true},
			{Question: evaluation.NewQuestion(3, 0), UserAnswer: 3},
		}
		card := evaluation.Score(answered)
		if len(card.Missed) != 2 || card.Missed[0].Question != "9 x 9" || card.Missed[1].Question != "3 x 0" {
			t.Errorf("missed order changed: %+v", card.Missed)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		card := evaluation.Score(nil)
		if card.Score != 0 || card.Missed == nil || len(card.Missed) != 0 {
			t.Errorf("unexpected scorecard for no answers: %+v", card)
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		answered := answeredFixture()
		if !reflect.DeepEqual(evaluation.Score(answered), evaluation.Score(answered)) {
			t.Error("scoring the same answers twice gave different results")
		}
	})
}

func TestResultBuilder(t *testing.T) {
	stamp := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	builder := evaluation.NewResultBuilder(func() time.Time { return stamp })

	t.Run("Build", func(t *testing.T) {
		answered := answeredFixture()
		res, err := builder.Build("7", answered, evaluation.Score(answered))
		if err != nil {
			t.Fatalf("Build failed: %v", err)
		}
		if res.StudentID != "7" || res.Score != 1 || res.TotalQuestions != 2 {
			t.Errorf("unexpected result: %+v", res)
		}
		if !res.Date.Equal(stamp) {
			t.Errorf("expected date %v, got %v", stamp, res.Date)
		}
		if len(res.MissedQuestions) != res.TotalQuestions-res.Score {
			t.Errorf("missed count %d does not match %d-%d", len(res.MissedQuestions), res.TotalQuestions, res.Score)
		}
		if res.Percentage() != 50 {
			t.Errorf("expected 50%%, got %d", res.Percentage())
		}
	})

	t.Run("RejectsInconsistentScorecard", func(t *testing.T) {
		answered := answeredFixture()
		card := evaluation.Score(answered)
		card.Missed = nil

		if _, err := builder.Build("7", answered, card); !errors.Is(err, evaluation.ErrInconsistentScore) {
			t.Errorf("expected ErrInconsistentScore, got %v", err)
		}

		card = evaluation.Scorecard{Score: 3}
		if _, err := builder.Build("7", answered, card); !errors.Is(err, evaluation.ErrInconsistentScore) {
			t.Errorf("expected ErrInconsistentScore for score above total, got %v", err)
		}
	})
}
