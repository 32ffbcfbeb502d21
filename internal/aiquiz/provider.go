package aiquiz

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aiquizzer/aiquizzer-lambda/internal/config"
	"google.golang.org/genai"
)

// Provider is the external text-generation collaborator. Its output carries
// no format guarantee and must be treated as unstructured text.
type Provider interface {
	SendPrompt(ctx context.Context, prompt string) (string, error)
}

const (
	geminiModel    = "gemini-2.0-flash"
	requestTimeout = 30 * time.Second
	maxAttempts    = 2
)

type geminiProvider struct {
	client *genai.Client
}

func NewGeminiProvider(ctx context.Context) (Provider, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &geminiProvider{client: client}, nil
}

// SendPrompt calls the model with a bounded timeout and retries once before
// giving up. The upstream service has no latency guarantee.
func (p *geminiProvider) SendPrompt(ctx context.Context, prompt string) (string, error) {
	log := config.WithContext(ctx)

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, requestTimeout)
		result, err := p.client.Models.GenerateContent(callCtx, geminiModel, genai.Text(prompt), nil)
		cancel()

		if err != nil {
			lastErr = err
			log.WithError(err).Warnf("generator call failed (attempt %d/%d)", attempt, maxAttempts)
			continue
		}

		raw := result.Text()
		if raw == "" {
			lastErr = errors.New("empty response from model")
			log.Warnf("generator returned empty response (attempt %d/%d)", attempt, maxAttempts)
			continue
		}

		log.Debugf("raw generator response:\n%s", raw)
		return raw, nil
	}

	return "", fmt.Errorf("failed to generate content: %w", lastErr)
}
