package evaluation

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// state is one of setupState, activeState, finishedState or cancelledState.
// Each variant carries only the fields that are valid in that phase.
type state interface {
	phase() Phase
}

type setupState struct {
	tables map[int]struct{}
}

type activeState struct {
	questions []Question
	index     int
	answered  []AnsweredQuestion
}

type finishedState struct {
	answered []AnsweredQuestion
	result   Result
}

type cancelledState struct{}

func (setupState) phase() Phase     { return PhaseSetup }
func (activeState) phase() Phase    { return PhaseActive }
func (finishedState) phase() Phase  { return PhaseFinished }
func (cancelledState) phase() Phase { return PhaseCancelled }

type Option func(*Session)

func WithGenerator(g *Generator) Option { return func(s *Session) { s.generator = g } }
func WithPerTable(n int) Option         { return func(s *Session) { s.perTable = n } }
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.builder = NewResultBuilder(now) }
}

// Session is the quiz state machine for one evaluation attempt of one student.
// It is not safe for concurrent use; callers serialize transitions.
type Session struct {
	studentID string
	perTable  int
	generator *Generator
	builder   ResultBuilder
	state     state
}

func NewSession(studentID string, opts ...Option) *Session {
	s := &Session{
		studentID: studentID,
		perTable:  DefaultPerTable,
		builder:   NewResultBuilder(nil),
		state:     newSetupState(),
	}
	for _, o := range opts {
		o(s)
	}
	if s.generator == nil {
		s.generator = NewGenerator(nil)
	}
	return s
}

func newSetupState() setupState {
	return setupState{tables: map[int]struct{}{}}
}

func (s *Session) StudentID() string { return s.studentID }
func (s *Session) Phase() Phase      { return s.state.phase() }

// ToggleTable adds the table to the selection, or removes it if already selected.
func (s *Session) ToggleTable(table int) error {
	st, err := s.setup()
	if err != nil {
		return err
	}
	if !ValidTable(table) {
		return fmt.Errorf("%w: table %d out of range %d-%d", ErrInvalidInput, table, MinTable, MaxTable)
	}
	if _, ok := st.tables[table]; ok {
		delete(st.tables, table)
	} else {
		st.tables[table] = struct{}{}
	}
	return nil
}

// SelectedTables returns the sorted selection while in setup, nil otherwise.
func (s *Session) SelectedTables() []int {
	st, ok := s.state.(setupState)
	if !ok {
		return nil
	}
	return sortedTables(st.tables)
}

// Start generates the question set and moves the session to the active phase.
func (s *Session) Start() error {
	st, err := s.setup()
	if err != nil {
		return err
	}
	if len(st.tables) == 0 {
		return fmt.Errorf("%w: select at least one table", ErrInvalidInput)
	}

	questions, err := s.generator.Generate(sortedTables(st.tables), s.perTable)
	if err != nil {
		return err
	}

	s.state = activeState{
		questions: questions,
		index:     0,
		answered:  make([]AnsweredQuestion, 0, len(questions)),
	}
	return nil
}

func (s *Session) Current() (Question, error) {
	st, err := s.active()
	if err != nil {
		return Question{}, err
	}
	return st.questions[st.index], nil
}

// Progress returns the zero-based index of the current question and the total.
// Once finished the index equals the total.
func (s *Session) Progress() (int, int) {
	switch st := s.state.(type) {
	case activeState:
		return st.index, len(st.questions)
	case finishedState:
		return len(st.answered), len(st.answered)
	}
	return 0, 0
}

// Submit parses a raw answer. Non-numeric input is rejected without advancing.
func (s *Session) Submit(raw string) (AnsweredQuestion, error) {
	if _, err := s.active(); err != nil {
		return AnsweredQuestion{}, err
	}
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return AnsweredQuestion{}, fmt.Errorf("%w: answer %q is not a number", ErrInvalidInput, raw)
	}
	return s.SubmitValue(value)
}

func (s *Session) SubmitValue(value int) (AnsweredQuestion, error) {
	st, err := s.active()
	if err != nil {
		return AnsweredQuestion{}, err
	}

	q := st.questions[st.index]
	answer := AnsweredQuestion{Question: q, UserAnswer: value, Correct: value == q.Answer}
	answered := append(st.answered, answer)

	if st.index < len(st.questions)-1 {
		st.answered = answered
		st.index++
		s.state = st
		return answer, nil
	}

	result, err := s.builder.Build(s.studentID, answered, Score(answered))
	if err != nil {
		return AnsweredQuestion{}, err
	}
	s.state = finishedState{answered: answered, result: result}
	return answer, nil
}

// Answered returns a copy of the answers collected so far.
func (s *Session) Answered() []AnsweredQuestion {
	var src []AnsweredQuestion
	switch st := s.state.(type) {
	case activeState:
		src = st.answered
	case finishedState:
		src = st.answered
	default:
		return nil
	}
	out := make([]AnsweredQuestion, len(src))
	copy(out, src)
	return out
}

func (s *Session) Result() (Result, error) {
	st, ok := s.state.(finishedState)
	if !ok {
		if s.Phase() == PhaseCancelled {
			return Result{}, ErrSessionClosed
		}
		return Result{}, fmt.Errorf("%w: result is only available once finished", ErrWrongPhase)
	}
	res := st.result
	res.MissedQuestions = append([]MissedQuestion{}, st.result.MissedQuestions...)
	return res, nil
}

// Restart discards everything, including the table selection, and returns to setup.
func (s *Session) Restart() error {
	if s.Phase() == PhaseCancelled {
		return ErrSessionClosed
	}
	s.state = newSetupState()
	return nil
}

// Cancel abandons the session. No result is produced and further operations fail.
func (s *Session) Cancel() {
	s.state = cancelledState{}
}

func (s *Session) setup() (setupState, error) {
	switch st := s.state.(type) {
	case setupState:
		return st, nil
	case cancelledState:
		return setupState{}, ErrSessionClosed
	}
	return setupState{}, fmt.Errorf("%w: expected %s, session is %s", ErrWrongPhase, PhaseSetup, s.Phase())
}

func (s *Session) active() (activeState, error) {
	switch st := s.state.(type) {
	case activeState:
		return st, nil
	case cancelledState:
		return activeState{}, ErrSessionClosed
	}
	return activeState{}, fmt.Errorf("%w: expected %s, session is %s", ErrWrongPhase, PhaseActive, s.Phase())
}

func sortedTables(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Ints(out)
	return out
}
