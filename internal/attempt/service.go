package attempt

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/tabuada-lambda/internal/config"
	"github.com/saulo-duarte/tabuada-lambda/internal/evaluation"
	"github.com/saulo-duarte/tabuada-lambda/internal/events"
	"github.com/saulo-duarte/tabuada-lambda/internal/feedback"
	"github.com/saulo-duarte/tabuada-lambda/internal/result"
	"github.com/saulo-duarte/tabuada-lambda/internal/roster"
)

var ErrInvalidID = errors.New("invalid attempt id")

type AttemptService interface {
	Begin(ctx context.Context, studentID string) (*AttemptView, error)
	Get(ctx context.Context, id string) (*AttemptView, error)
	ToggleTable(ctx context.Context, id string, table int) (*AttemptView, error)
	Start(ctx context.Context, id string) (*AttemptView, error)
	Submit(ctx context.Context, id string, raw string) (*AttemptView, error)
	Restart(ctx context.Context, id string) (*AttemptView, error)
	Cancel(ctx context.Context, id string) error
	Feedback(ctx context.Context, id string) (*FeedbackView, error)
	Save(ctx context.Context, id string) (*evaluation.Result, error)
}

type Deps struct {
	Store     Store
	Students  roster.StudentRepository
	Results   result.ResultService
	Feedback  feedback.Service
	Publisher events.Publisher
	Generator *evaluation.Generator
	PerTable  int
	Now       func() time.Time
}

// attemptService serializes every transition behind mu: load, transition, store.
type attemptService struct {
	mu   sync.Mutex
	deps Deps
}

func NewService(deps Deps) AttemptService {
	if deps.Generator == nil {
		deps.Generator = evaluation.NewGenerator(nil)
	}
	if deps.PerTable == 0 {
		deps.PerTable = evaluation.DefaultPerTable
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Publisher == nil {
		deps.Publisher = events.NewNoopPublisher()
	}
	return &attemptService{deps: deps}
}

func parseID(log logrus.FieldLogger, id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		log.WithError(err).Warn("Invalid attempt ID")
		return uuid.Nil, ErrInvalidID
	}
	return parsed, nil
}

func (s *attemptService) sessionOptions() []evaluation.Option {
	return []evaluation.Option{
		evaluation.WithGenerator(s.deps.Generator),
		evaluation.WithClock(s.deps.Now),
	}
}

func (s *attemptService) load(ctx context.Context, id uuid.UUID) (*evaluation.Session, error) {
	snap, err := s.deps.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	session, err := evaluation.Restore(snap, s.sessionOptions()...)
	if err != nil {
		// stored state is corrupt, not a client error
		return nil, fmt.Errorf("failed to restore attempt %s: %v", id, err)
	}
	return session, nil
}

// transition loads the session, applies fn and stores the new state. When fn
// fails the stored state is left untouched.
func (s *attemptService) transition(ctx context.Context, id string, action string, fn func(*evaluation.Session) error) (uuid.UUID, *evaluation.Session, error) {
	log := config.WithContext(ctx).WithField("attempt_id", id)

	attemptID, err := parseID(log, id)
	if err != nil {
		return uuid.Nil, nil, err
	}

	session, err := s.load(ctx, attemptID)
	if err != nil {
		if !errors.Is(err, ErrAttemptNotFound) {
			log.WithError(err).Errorf("Failed to load attempt to %s", action)
		}
		return uuid.Nil, nil, err
	}

	if err := fn(session); err != nil {
		log.WithError(err).Warnf("Rejected %s", action)
		return uuid.Nil, nil, err
	}

	if err := s.deps.Store.Put(ctx, attemptID, session.Snapshot()); err != nil {
		log.WithError(err).Errorf("Failed to store attempt after %s", action)
		return uuid.Nil, nil, err
	}
	return attemptID, session, nil
}

func (s *attemptService) Begin(ctx context.Context, studentID string) (*AttemptView, error) {
	log := config.WithContext(ctx).WithField("student_id", studentID)

	if _, err := s.deps.Students.GetByID(studentID); err != nil {
		log.WithError(err).Warn("Cannot begin evaluation for unknown student")
		return nil, err
	}

	opts := append(s.sessionOptions(), evaluation.WithPerTable(s.deps.PerTable))
	session := evaluation.NewSession(studentID, opts...)
	id := uuid.New()

	if err := s.deps.Store.Put(ctx, id, session.Snapshot()); err != nil {
		log.WithError(err).Error("Failed to store new attempt")
		return nil, err
	}

	log.WithField("attempt_id", id).Info("Evaluation attempt created")
	return newView(id, session), nil
}

func (s *attemptService) Get(ctx context.Context, id string) (*AttemptView, error) {
	log := config.WithContext(ctx).WithField("attempt_id", id)

	attemptID, err := parseID(log, id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.load(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	return newView(attemptID, session), nil
}

func (s *attemptService) ToggleTable(ctx context.Context, id string, table int) (*AttemptView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	attemptID, session, err := s.transition(ctx, id, "table toggle", func(session *evaluation.Session) error {
		return session.ToggleTable(table)
	})
	if err != nil {
		return nil, err
	}
	return newView(attemptID, session), nil
}

func (s *attemptService) Start(ctx context.Context, id string) (*AttemptView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	attemptID, session, err := s.transition(ctx, id, "quiz start", (*evaluation.Session).Start)
	if err != nil {
		return nil, err
	}

	_, total := session.Progress()
	config.WithContext(ctx).WithFields(logrus.Fields{
		"attempt_id": attemptID,
		"questions":  total,
	}).Info("Quiz started")
	return newView(attemptID, session), nil
}

func (s *attemptService) Submit(ctx context.Context, id string, raw string) (*AttemptView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	attemptID, session, err := s.transition(ctx, id, "answer", func(session *evaluation.Session) error {
		_, err := session.Submit(raw)
		return err
	})
	if err != nil {
		return nil, err
	}

	if session.Phase() == evaluation.PhaseFinished {
		res, err := session.Result()
		if err != nil {
			return nil, err
		}
		config.WithContext(ctx).WithFields(logrus.Fields{
			"attempt_id": attemptID,
			"score":      res.Score,
			"total":      res.TotalQuestions,
		}).Info("Quiz finished")
		s.requestFeedback(ctx, attemptID, res)
	}

	return newView(attemptID, session), nil
}

// requestFeedback fires the single feedback call for a finished attempt. The
// answer is stored only if the attempt still holds the same result.
func (s *attemptService) requestFeedback(ctx context.Context, id uuid.UUID, res evaluation.Result) {
	ctx = context.WithoutCancel(ctx)
	log := config.WithContext(ctx).WithField("attempt_id", id)

	name := res.StudentID
	if student, err := s.deps.Students.GetByID(res.StudentID); err == nil {
		name = student.FirstName
	}

	replies := s.deps.Feedback.RequestAsync(ctx, feedback.NewRequest(name, res))

	go func() {
		text := <-replies

		s.mu.Lock()
		defer s.mu.Unlock()

		snap, err := s.deps.Store.Get(ctx, id)
		if err != nil {
			log.WithError(err).Debug("Attempt gone before feedback arrived")
			return
		}
		if snap.Phase != evaluation.PhaseFinished || snap.Result == nil || !snap.Result.Date.Equal(res.Date) {
			log.Debug("Discarding feedback for a superseded result")
			return
		}
		if err := s.deps.Store.PutFeedback(ctx, id, text); err != nil {
			log.WithError(err).Warn("Failed to store feedback")
		}
	}()
}

func (s *attemptService) Restart(ctx context.Context, id string) (*AttemptView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	attemptID, session, err := s.transition(ctx, id, "restart", (*evaluation.Session).Restart)
	if err != nil {
		return nil, err
	}
	if err := s.deps.Store.DeleteFeedback(ctx, attemptID); err != nil {
		config.WithContext(ctx).WithError(err).Warn("Failed to clear feedback on restart")
	}
	return newView(attemptID, session), nil
}

func (s *attemptService) Cancel(ctx context.Context, id string) error {
	log := config.WithContext(ctx).WithField("attempt_id", id)

	attemptID, err := parseID(log, id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.load(ctx, attemptID)
	if err != nil {
		return err
	}
	session.Cancel()

	if err := s.deps.Store.Delete(ctx, attemptID); err != nil {
		log.WithError(err).Error("Failed to discard cancelled attempt")
		return err
	}
	log.Info("Evaluation attempt cancelled")
	return nil
}

func (s *attemptService) Feedback(ctx context.Context, id string) (*FeedbackView, error) {
	log := config.WithContext(ctx).WithField("attempt_id", id)

	attemptID, err := parseID(log, id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.load(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	if session.Phase() != evaluation.PhaseFinished {
		return nil, fmt.Errorf("%w: feedback is only available once finished", evaluation.ErrWrongPhase)
	}

	text, ready, err := s.deps.Store.Feedback(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	return &FeedbackView{Ready: ready, Text: text}, nil
}

// Save persists the result built at completion and discards the attempt.
func (s *attemptService) Save(ctx context.Context, id string) (*evaluation.Result, error) {
	log := config.WithContext(ctx).WithField("attempt_id", id)

	attemptID, err := parseID(log, id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.load(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	res, err := session.Result()
	if err != nil {
		log.WithError(err).Warn("Cannot save an unfinished attempt")
		return nil, err
	}

	if err := s.deps.Results.Append(ctx, res); err != nil {
		return nil, err
	}

	if err := s.deps.Publisher.PublishResult(ctx, res); err != nil {
		log.WithError(err).Warn("Failed to publish evaluation event")
	}

	if err := s.deps.Store.Delete(ctx, attemptID); err != nil {
		log.WithError(err).Warn("Failed to discard saved attempt")
	}

	log.Info("Evaluation attempt saved")
	return &res, nil
}
