package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fadilmartias/job-wingman/internal/config"
	"github.com/fadilmartias/job-wingman/internal/model"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// GeminiService is the Gemini-backed completion provider, selected with
// COMPLETION_PROVIDER=gemini.
type GeminiService struct {
	client     *genai.Client
	model      string
	maxRetries int
	baseDelay  time.Duration
	logger     *zap.Logger
}

func NewGeminiService(ctx context.Context, logger *zap.Logger) (*GeminiService, error) {
	cfg := config.LoadGeminiConfig()
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}

	return &GeminiService{
		client:     client,
		model:      cfg.Model,
		maxRetries: 3,
		baseDelay:  time.Second,
		logger:     logger,
	}, nil
}

func (s *GeminiService) Complete(ctx context.Context, messages []model.Message) (string, error) {
	genConfig := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(completionTemperature)),
		MaxOutputTokens: completionMaxTokens,
		CandidateCount:  1,
	}

	// Gemini carries the system message separately and names the assistant
	// role "model".
	var contents []*genai.Content
	for _, m := range messages {
		switch m.Role {
		case model.RoleSystem:
			genConfig.SystemInstruction = genai.NewContentFromText(m.Content, genai.RoleUser)
		case model.RoleAssistant:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
		}
	}

	var lastErr error
	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		if attempt > 0 {
			delay := s.baseDelay * time.Duration(1<<(attempt-1))
			s.logger.Warn("retrying completion",
				zap.Int("attempt", attempt),
				zap.Duration("delay", delay))
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		result, err := s.client.Models.GenerateContent(ctx, s.model, contents, genConfig)
		if err != nil {
			lastErr = err
			continue
		}

		text := result.Text()
		if text == "" {
			return "", errors.New("completion provider returned empty response")
		}
		return text, nil
	}

	return "", fmt.Errorf("completion failed after %d retries: %w", s.maxRetries, lastErr)
}
