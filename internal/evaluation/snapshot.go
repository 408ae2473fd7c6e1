package evaluation

import "fmt"

// Snapshot is the serializable form of a session, used by session stores.
type Snapshot struct {
	StudentID string             `json:"student_id"`
	PerTable  int                `json:"per_table"`
	Phase     Phase              `json:"phase"`
	Tables    []int              `json:"tables,omitempty"`
	Questions []Question         `json:"questions,omitempty"`
	Index     int                `json:"index"`
	Answered  []AnsweredQuestion `json:"answered,omitempty"`
	Result    *Result            `json:"result,omitempty"`
}

func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		StudentID: s.studentID,
		PerTable:  s.perTable,
		Phase:     s.Phase(),
	}
	switch st := s.state.(type) {
	case setupState:
		snap.Tables = sortedTables(st.tables)
	case activeState:
		snap.Questions = append([]Question{}, st.questions...)
		snap.Index = st.index
		snap.Answered = append([]AnsweredQuestion{}, st.answered...)
	case finishedState:
		snap.Answered = append([]AnsweredQuestion{}, st.answered...)
		res, _ := s.Result()
		snap.Result = &res
		snap.Index = len(st.answered)
	}
	return snap
}

// Restore rebuilds a session from a snapshot, rejecting inconsistent combinations.
func Restore(snap Snapshot, opts ...Option) (*Session, error) {
	if snap.PerTable > 0 {
		opts = append(append([]Option{}, opts...), WithPerTable(snap.PerTable))
	}
	s := NewSession(snap.StudentID, opts...)

	switch snap.Phase {
	case PhaseSetup:
		st := newSetupState()
		for _, t := range snap.Tables {
			if !ValidTable(t) {
				return nil, fmt.Errorf("%w: snapshot table %d out of range", ErrInvalidInput, t)
			}
			st.tables[t] = struct{}{}
		}
		s.state = st
	case PhaseActive:
		if len(snap.Questions) == 0 || snap.Index < 0 || snap.Index >= len(snap.Questions) || len(snap.Answered) != snap.Index {
			return nil, fmt.Errorf("%w: inconsistent active snapshot", ErrInvalidInput)
		}
		s.state = activeState{
			questions: append([]Question{}, snap.Questions...),
			index:     snap.Index,
			answered:  append(make([]AnsweredQuestion, 0, len(snap.Questions)), snap.Answered...),
		}
	case PhaseFinished:
		if snap.Result == nil || snap.Result.TotalQuestions != len(snap.Answered) {
			return nil, fmt.Errorf("%w: inconsistent finished snapshot", ErrInvalidInput)
		}
		res := *snap.Result
		res.MissedQuestions = append([]MissedQuestion{}, snap.Result.MissedQuestions...)
		s.state = finishedState{
			answered: append([]AnsweredQuestion{}, snap.Answered...),
			result:   res,
		}
	case PhaseCancelled:
		s.state = cancelledState{}
	default:
		return nil, fmt.Errorf("%w: unknown phase %q", ErrInvalidInput, snap.Phase)
	}
	return s, nil
}
