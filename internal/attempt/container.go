package attempt

import (
	"github.com/aiquizzer/aiquizzer-lambda/internal/aiquiz"
	"github.com/aiquizzer/aiquizzer-lambda/internal/quiz"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type AttemptContainer struct {
	Attempts AttemptRepository
	Answers  UserAnswerRepository
	Service  AttemptService
	Handler  *Handler
}

func NewAttemptContainer(db *gorm.DB, quizzes quiz.QuizRepository, ai aiquiz.Service, redisClient *redis.Client) *AttemptContainer {
	attempts := NewAttemptRepository(db)
	answers := NewUserAnswerRepository(db)

	var locker StartLocker
	if redisClient != nil {
		locker = NewRedisLocker(redisClient)
	} else {
		locker = NewMemoryLocker()
	}

	service := NewService(attempts, answers, quizzes, ai, locker)
	handler := NewHandler(service)

	return &AttemptContainer{
		Attempts: attempts,
		Answers:  answers,
		Service:  service,
		Handler:  handler,
	}
}
