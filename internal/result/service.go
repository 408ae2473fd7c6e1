package result

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/saulo-duarte/tabuada-lambda/internal/config"
	"github.com/saulo-duarte/tabuada-lambda/internal/evaluation"
	"github.com/saulo-duarte/tabuada-lambda/internal/roster"
	"github.com/sirupsen/logrus"
)

var ErrInvalidResult = errors.New("invalid evaluation result")

type ResultService interface {
	Append(ctx context.Context, res evaluation.Result) error
	List(ctx context.Context) ([]evaluation.Result, error)
	ListByStudent(ctx context.Context, studentID string) ([]evaluation.Result, error)
	StudentSummary(ctx context.Context, studentID string) (*StudentSummary, error)
	Overview(ctx context.Context) (*Overview, error)
}

type resultService struct {
	mu       sync.Mutex
	store    ResultStore
	students roster.StudentRepository
}

func NewService(store ResultStore, students roster.StudentRepository) ResultService {
	return &resultService{
		store:    store,
		students: students,
	}
}

// Append adds res to the history and saves the full list.
func (s *resultService) Append(ctx context.Context, res evaluation.Result) error {
	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"student_id": res.StudentID,
		"score":      res.Score,
		"total":      res.TotalQuestions,
	})

	if err := validate(res); err != nil {
		log.WithError(err).Warn("Rejected evaluation result")
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.store.Load(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load results history")
		return err
	}

	all = append(all, res)
	if err := s.store.Save(ctx, all); err != nil {
		log.WithError(err).Error("Failed to save results history")
		return err
	}

	log.WithField("history_size", len(all)).Info("Evaluation result saved")
	return nil
}

func (s *resultService) List(ctx context.Context) ([]evaluation.Result, error) {
	results, err := s.store.Load(ctx)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list results")
		return nil, err
	}
	return results, nil
}

func (s *resultService) ListByStudent(ctx context.Context, studentID string) ([]evaluation.Result, error) {
	if _, err := s.students.GetByID(studentID); err != nil {
		return nil, err
	}
	results, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return filterByStudent(results, studentID), nil
}

func (s *resultService) StudentSummary(ctx context.Context, studentID string) (*StudentSummary, error) {
	if _, err := s.students.GetByID(studentID); err != nil {
		return nil, err
	}
	results, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	summary := Summarize(studentID, results)
	return &summary, nil
}

func (s *resultService) Overview(ctx context.Context) (*Overview, error) {
	results, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	overview := BuildOverview(s.students.List(), results)
	return &overview, nil
}

func validate(res evaluation.Result) error {
	if res.StudentID == "" {
		return fmt.Errorf("%w: missing student id", ErrInvalidResult)
	}
	if res.TotalQuestions <= 0 || res.Score < 0 || res.Score > res.TotalQuestions {
		return fmt.Errorf("%w: score %d of %d", ErrInvalidResult, res.Score, res.TotalQuestions)
	}
	if len(res.MissedQuestions) != res.TotalQuestions-res.Score {
		return fmt.Errorf("%w: %d missed questions for score %d of %d", ErrInvalidResult, len(res.MissedQuestions), res.Score, res.TotalQuestions)
	}
	if res.Date.IsZero() {
		return fmt.Errorf("%w: missing date", ErrInvalidResult)
	}
	return nil
}
