package container

import (
	"context"
	"log"
	"os"

	"github.com/aiquizzer/aiquizzer-lambda/internal/aiquiz"
	"github.com/aiquizzer/aiquizzer-lambda/internal/attempt"
	"github.com/aiquizzer/aiquizzer-lambda/internal/auth"
	"github.com/aiquizzer/aiquizzer-lambda/internal/config"
	"github.com/aiquizzer/aiquizzer-lambda/internal/quiz"
	"github.com/aiquizzer/aiquizzer-lambda/internal/user"
)

type Container struct {
	UserContainer    *user.UserContainer
	AIQuizContainer  *aiquiz.AIQuizContainer
	QuizContainer    *quiz.QuizContainer
	AttemptContainer *attempt.AttemptContainer
}

func New() *Container {
	config.Init()
	auth.Init()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(context.Background(), dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	if err := config.DB.AutoMigrate(
		&user.User{},
		&quiz.Quiz{},
		&quiz.Question{},
		&quiz.Answer{},
		&attempt.QuizAttempt{},
		&attempt.UserAnswer{},
	); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	userContainer := user.NewUserContainer(config.DB)
	if _, err := userContainer.Repo.EnsureLocalUser(); err != nil {
		log.Fatalf("failed to ensure local user: %v", err)
	}

	aiQuizContainer := aiquiz.NewAIQuizContainer()
	quizContainer := quiz.NewQuizContainer(config.DB, aiQuizContainer.Service)
	attemptContainer := attempt.NewAttemptContainer(
		config.DB,
		quizContainer.Repo,
		aiQuizContainer.Service,
		config.InitRedis(),
	)

	return &Container{
		UserContainer:    userContainer,
		AIQuizContainer:  aiQuizContainer,
		QuizContainer:    quizContainer,
		AttemptContainer: attemptContainer,
	}
}
