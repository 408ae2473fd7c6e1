package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/saulo-duarte/tabuada-lambda/internal/attempt"
	"github.com/saulo-duarte/tabuada-lambda/internal/config"
	"github.com/saulo-duarte/tabuada-lambda/internal/middlewares"
	"github.com/saulo-duarte/tabuada-lambda/internal/result"
	"github.com/saulo-duarte/tabuada-lambda/internal/roster"
)

type RouterConfig struct {
	RosterHandler  *roster.Handler
	AttemptHandler *attempt.Handler
	ResultHandler  *result.Handler
	AllowedOrigins []string
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.NewCorsMiddleware(cfg.AllowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Mount("/students", roster.Routes(cfg.RosterHandler))
	r.Mount("/evaluations", attempt.Routes(cfg.AttemptHandler))
	r.Mount("/results", result.Routes(cfg.ResultHandler))
	r.Mount("/analytics", result.AnalyticsRoutes(cfg.ResultHandler))
	return r
}
