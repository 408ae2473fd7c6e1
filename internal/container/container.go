package container

import (
	"context"
	"log"

	"github.com/saulo-duarte/tabuada-lambda/internal/attempt"
	"github.com/saulo-duarte/tabuada-lambda/internal/config"
	"github.com/saulo-duarte/tabuada-lambda/internal/evaluation"
	"github.com/saulo-duarte/tabuada-lambda/internal/events"
	"github.com/saulo-duarte/tabuada-lambda/internal/feedback"
	"github.com/saulo-duarte/tabuada-lambda/internal/result"
	"github.com/saulo-duarte/tabuada-lambda/internal/roster"
)

type Container struct {
	Settings          config.Settings
	RosterContainer   *roster.RosterContainer
	ResultContainer   *result.ResultContainer
	FeedbackContainer *feedback.FeedbackContainer
	AttemptContainer  *attempt.AttemptContainer
	Publisher         events.Publisher
}

func New() *Container {
	config.Init()
	settings := config.LoadSettings()

	ctx := context.Background()

	rosterContainer := roster.NewRosterContainer()

	store, err := result.NewStore(ctx, settings)
	if err != nil {
		log.Fatalf("failed to open results store: %v", err)
	}
	resultContainer := result.NewResultContainer(store, rosterContainer.Repo)

	feedbackContainer := feedback.NewFeedbackContainer(settings.GeminiModel, settings.FeedbackTimeout)
	publisher := events.NewPublisher(settings.RabbitMQURL, settings.RabbitMQExchange)

	attemptContainer := attempt.NewAttemptContainer(attempt.Deps{
		Store:     attempt.NewStore(settings),
		Students:  rosterContainer.Repo,
		Results:   resultContainer.Service,
		Feedback:  feedbackContainer.Service,
		Publisher: publisher,
		Generator: evaluation.NewGenerator(nil),
		PerTable:  settings.QuestionsPerTable,
	})

	return &Container{
		Settings:          settings,
		RosterContainer:   rosterContainer,
		ResultContainer:   resultContainer,
		FeedbackContainer: feedbackContainer,
		AttemptContainer:  attemptContainer,
		Publisher:         publisher,
	}
}

func (c *Container) Close() {
	if err := c.Publisher.Close(); err != nil {
		config.Logger.WithError(err).Warn("Failed to close event publisher")
	}
}
