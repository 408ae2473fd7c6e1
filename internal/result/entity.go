package result

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/tabuada-lambda/internal/evaluation"
	"gorm.io/datatypes"
)

// Record is the stored form of an evaluation result. Position keeps the
// history in the order results were appended.
type Record struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Position        int            `gorm:"not null;index" json:"position"`
	StudentID       string         `gorm:"type:text;not null;index" json:"student_id"`
	Date            time.Time      `gorm:"not null" json:"date"`
	Score           int            `gorm:"not null;default:0" json:"score"`
	TotalQuestions  int            `gorm:"not null;default:0" json:"total_questions"`
	MissedQuestions datatypes.JSON `gorm:"type:jsonb;not null" json:"missed_questions"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (Record) TableName() string {
	return "evaluation_results"
}

func toRecord(position int, res evaluation.Result) (Record, error) {
	missed := res.MissedQuestions
	if missed == nil {
		missed = []evaluation.MissedQuestion{}
	}
	raw, err := json.Marshal(missed)
	if err != nil {
		return Record{}, fmt.Errorf("failed to encode missed questions: %w", err)
	}
	return Record{
		ID:              uuid.New(),
		Position:        position,
		StudentID:       res.StudentID,
		Date:            res.Date.UTC(),
		Score:           res.Score,
		TotalQuestions:  res.TotalQuestions,
		MissedQuestions: datatypes.JSON(raw),
	}, nil
}

func (r Record) toResult() (evaluation.Result, error) {
	missed, err := decodeMissed(r.MissedQuestions)
	if err != nil {
		return evaluation.Result{}, fmt.Errorf("record %s: %w", r.ID, err)
	}
	return evaluation.Result{
		StudentID:       r.StudentID,
		Date:            r.Date.UTC(),
		Score:           r.Score,
		TotalQuestions:  r.TotalQuestions,
		MissedQuestions: missed,
	}, nil
}

func decodeMissed(raw []byte) ([]evaluation.MissedQuestion, error) {
	missed := []evaluation.MissedQuestion{}
	if len(raw) == 0 {
		return missed, nil
	}
	if err := json.Unmarshal(raw, &missed); err != nil {
		return nil, fmt.Errorf("failed to decode missed questions: %w", err)
	}
	return missed, nil
}
