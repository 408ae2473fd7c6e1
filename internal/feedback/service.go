package feedback

import (
	"context"
	"strings"

	"github.com/saulo-duarte/tabuada-lambda/internal/config"
)

// Service turns an evaluation outcome into a tutor comment. It never fails:
// every provider error resolves to FallbackMessage.
type Service interface {
	RequestFeedback(ctx context.Context, req Request) string
	RequestAsync(ctx context.Context, req Request) <-chan string
}

type service struct {
	provider Provider
}

// NewService accepts a nil provider, in which case every request falls back.
func NewService(provider Provider) Service {
	return &service{provider: provider}
}

func (s *service) RequestFeedback(ctx context.Context, req Request) string {
	log := config.WithContext(ctx).WithField("student", req.StudentName)

	if s.provider == nil {
		log.Warn("No feedback provider configured, using fallback")
		return FallbackMessage
	}

	text, err := s.provider.SendPrompt(ctx, BuildPrompt(req))
	if err != nil {
		log.WithError(err).Warn("Feedback provider failed, using fallback")
		return FallbackMessage
	}

	text = strings.TrimSpace(text)
	if text == "" {
		log.Warn("Feedback provider returned empty text, using fallback")
		return FallbackMessage
	}

	log.Info("Feedback generated")
	return text
}

// RequestAsync issues a single request in the background. The channel receives
// exactly one message and is then closed.
func (s *service) RequestAsync(ctx context.Context, req Request) <-chan string {
	out := make(chan string, 1)
	go func() {
		defer close(out)
		out <- s.RequestFeedback(ctx, req)
	}()
	return out
}
