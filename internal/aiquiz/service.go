package aiquiz

import (
	"context"
	"strings"

	"github.com/aiquizzer/aiquizzer-lambda/internal/config"
)

type Service interface {
	GenerateQuestions(ctx context.Context, req QuestionRequest) ([]GeneratedQuestion, error)
	GenerateTitle(ctx context.Context, topic string, difficulty Difficulty) (string, error)
	GenerateDescription(ctx context.Context, topic string, difficulty Difficulty, count int) (string, error)
	GenerateHint(ctx context.Context, userAnswer, correctAnswer, question string) (string, error)
}

type service struct {
	provider Provider
}

func NewService(provider Provider) Service {
	return &service{provider: provider}
}

// GenerateQuestions prompts the generator and parses whatever comes back.
// Parsing never fails; a transport failure is the only error path, and the
// result may hold fewer questions than requested.
func (s *service) GenerateQuestions(ctx context.Context, req QuestionRequest) ([]GeneratedQuestion, error) {
	log := config.WithContext(ctx)

	raw, err := s.provider.SendPrompt(ctx, BuildQuestionPrompt(req))
	if err != nil {
		return nil, err
	}

	questions := ParseQuestions(raw, req.Type)
	log.Infof("parsed %d of %d requested questions", len(questions), req.Count)
	return questions, nil
}

func (s *service) GenerateTitle(ctx context.Context, topic string, difficulty Difficulty) (string, error) {
	raw, err := s.provider.SendPrompt(ctx, BuildTitlePrompt(topic, difficulty))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(raw), nil
}

func (s *service) GenerateDescription(ctx context.Context, topic string, difficulty Difficulty, count int) (string, error) {
	raw, err := s.provider.SendPrompt(ctx, BuildDescriptionPrompt(topic, difficulty, count))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(raw), nil
}

func (s *service) GenerateHint(ctx context.Context, userAnswer, correctAnswer, question string) (string, error) {
	raw, err := s.provider.SendPrompt(ctx, BuildHintPrompt(userAnswer, correctAnswer, question))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(raw), nil
}
