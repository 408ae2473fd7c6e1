package attempt

import (
	"github.com/redis/go-redis/v9"

	"github.com/saulo-duarte/tabuada-lambda/internal/config"
)

type AttemptContainer struct {
	Service AttemptService
	Handler *Handler
}

func NewAttemptContainer(deps Deps) *AttemptContainer {
	service := NewService(deps)
	handler := NewHandler(service)

	return &AttemptContainer{
		Service: service,
		Handler: handler,
	}
}

// NewStore picks the session backend from settings.
func NewStore(settings config.Settings) Store {
	if settings.SessionStore == config.SessionStoreRedis {
		client := redis.NewClient(&redis.Options{
			Addr:     settings.RedisAddr,
			Password: settings.RedisPassword,
			DB:       settings.RedisDB,
		})
		return NewRedisStore(client, settings.SessionTTL)
	}
	return NewMemoryStore(settings.SessionTTL)
}
