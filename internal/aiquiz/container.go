package aiquiz

import (
	"context"
	"log"
)

type AIQuizContainer struct {
	Service Service
	Handler *Handler
}

func NewAIQuizContainer() *AIQuizContainer {
	ctx := context.Background()
	provider, err := NewGeminiProvider(ctx)
	if err != nil {
		log.Fatalf("failed to initialize generator provider: %v", err)
	}
	service := NewService(provider)
	handler := NewHandler(service)

	return &AIQuizContainer{
		Service: service,
		Handler: handler,
	}
}
