package result

import (
	"context"
	"fmt"

	"github.com/saulo-duarte/tabuada-lambda/internal/config"
	"github.com/saulo-duarte/tabuada-lambda/internal/roster"
)

type ResultContainer struct {
	Store   ResultStore
	Service ResultService
	Handler *Handler
}

func NewResultContainer(store ResultStore, students roster.StudentRepository) *ResultContainer {
	service := NewService(store, students)
	handler := NewHandler(service)

	return &ResultContainer{
		Store:   store,
		Service: service,
		Handler: handler,
	}
}

// NewStore picks the results backend from the configured driver.
func NewStore(ctx context.Context, settings config.Settings) (ResultStore, error) {
	switch settings.ResultsDriver {
	case config.ResultsDriverPostgres:
		if err := config.Connect(ctx, settings.DatabaseDSN); err != nil {
			return nil, err
		}
		if err := Migrate(config.DB); err != nil {
			return nil, fmt.Errorf("failed to migrate results table: %w", err)
		}
		return NewGormStore(config.DB), nil
	case config.ResultsDriverSQLite:
		db, err := OpenSQLite(ctx, settings.SQLiteDSN)
		if err != nil {
			return nil, err
		}
		return NewSQLiteStore(db), nil
	default:
		return nil, fmt.Errorf("unsupported results driver: %s", settings.ResultsDriver)
	}
}
