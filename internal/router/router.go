package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/aiquizzer/aiquizzer-lambda/internal/aiquiz"
	"github.com/aiquizzer/aiquizzer-lambda/internal/attempt"
	"github.com/aiquizzer/aiquizzer-lambda/internal/auth"
	"github.com/aiquizzer/aiquizzer-lambda/internal/middlewares"
	"github.com/aiquizzer/aiquizzer-lambda/internal/quiz"
)

type RouterConfig struct {
	AIQuizHandler  *aiquiz.Handler
	QuizHandler    *quiz.Handler
	AttemptHandler *attempt.Handler
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/ai-quiz", aiquiz.Routes(cfg.AIQuizHandler))
		r.Mount("/quizzes", quiz.Routes(cfg.QuizHandler))
		r.Mount("/quiz-attempts", attempt.Routes(cfg.AttemptHandler))
	})
	return r
}
