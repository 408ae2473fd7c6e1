package attempt

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/saulo-duarte/tabuada-lambda/internal/evaluation"
)

type BeginRequest struct {
	StudentID string `json:"student_id"`
}

// SubmitAnswerRequest accepts the answer as a JSON string or number.
type SubmitAnswerRequest struct {
	Answer json.RawMessage `json:"answer"`
}

func (r SubmitAnswerRequest) Raw() string {
	raw := strings.TrimSpace(string(r.Answer))
	var s string
	if err := json.Unmarshal(r.Answer, &s); err == nil {
		return s
	}
	if raw == "null" {
		return ""
	}
	return raw
}

// QuestionView hides the expected answer from the client.
type QuestionView struct {
	A int `json:"a"`
	B int `json:"b"`
}

type AttemptView struct {
	ID             uuid.UUID                     `json:"id"`
	StudentID      string                        `json:"student_id"`
	Phase          evaluation.Phase              `json:"phase"`
	SelectedTables []int                         `json:"selected_tables,omitempty"`
	Current        *QuestionView                 `json:"current,omitempty"`
	Index          int                           `json:"index"`
	Total          int                           `json:"total"`
	Answered       []evaluation.AnsweredQuestion `json:"answered,omitempty"`
	Result         *evaluation.Result            `json:"result,omitempty"`
}

type FeedbackView struct {
	Ready bool   `json:"ready"`
	Text  string `json:"text,omitempty"`
}

func newView(id uuid.UUID, s *evaluation.Session) *AttemptView {
	view := &AttemptView{
		ID:        id,
		StudentID: s.StudentID(),
		Phase:     s.Phase(),
	}
	view.Index, view.Total = s.Progress()

	switch s.Phase() {
	case evaluation.PhaseSetup:
		view.SelectedTables = s.SelectedTables()
	case evaluation.PhaseActive:
		if q, err := s.Current(); err == nil {
			view.Current = &QuestionView{A: q.A, B: q.B}
		}
	case evaluation.PhaseFinished:
		view.Answered = s.Answered()
		if res, err := s.Result(); err == nil {
			view.Result = &res
		}
	}
	return view
}
