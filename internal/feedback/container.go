package feedback

import (
	"context"
	"time"

	"github.com/saulo-duarte/tabuada-lambda/internal/config"
)

type FeedbackContainer struct {
	Service Service
}

func NewFeedbackContainer(model string, timeout time.Duration) *FeedbackContainer {
	ctx := context.Background()

	provider, err := NewGeminiProvider(ctx, model, timeout)
	if err != nil {
		config.Logger.WithError(err).Warn("Gemini provider unavailable, feedback will use the fallback message")
		provider = nil
	}

	return &FeedbackContainer{
		Service: NewService(provider),
	}
}
