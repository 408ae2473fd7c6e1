package evaluation

import (
	"fmt"
	"time"
)

type Question struct {
	A      int `json:"a"`
	B      int `json:"b"`
	Answer int `json:"answer"`
}

func NewQuestion(a, b int) Question {
	return Question{A: a, B: b, Answer: a * b}
}

// Label renders the question the way it is stored in missed question lists.
func (q Question) Label() string {
	return fmt.Sprintf("%d x %d", q.A, q.B)
}

type AnsweredQuestion struct {
	Question   Question `json:"question"`
	UserAnswer int      `json:"user_answer"`
	Correct    bool     `json:"correct"`
}

type MissedQuestion struct {
	Question      string `json:"question"`
	CorrectAnswer int    `json:"correctAnswer"`
	UserAnswer    int    `json:"userAnswer"`
}

// Result is the unit exchanged with the results history.
type Result struct {
	StudentID       string           `json:"studentId"`
	Date            time.Time        `json:"date"`
	Score           int              `json:"score"`
	TotalQuestions  int              `json:"totalQuestions"`
	MissedQuestions []MissedQuestion `json:"missedQuestions"`
}

// Percentage returns the score over total as a rounded 0-100 value.
func (r Result) Percentage() int {
	if r.TotalQuestions <= 0 {
		return 0
	}
	return int(float64(r.Score)/float64(r.TotalQuestions)*100 + 0.5)
}
