package quiz

import (
	"github.com/aiquizzer/aiquizzer-lambda/internal/aiquiz"
	"gorm.io/gorm"
)

type QuizContainer struct {
	Repo    QuizRepository
	Service QuizService
	Handler *Handler
}

func NewQuizContainer(db *gorm.DB, ai aiquiz.Service) *QuizContainer {
	repo := NewRepository(db)
	service := NewService(repo, ai)
	handler := NewHandler(service)

	return &QuizContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
