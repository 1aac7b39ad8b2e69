package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fadilmartias/job-wingman/internal/config"
	"github.com/fadilmartias/job-wingman/internal/model"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// OpenRouterService talks to an OpenAI-compatible chat-completions endpoint.
type OpenRouterService struct {
	client *resty.Client
	model  string
	logger *zap.Logger
}

func NewOpenRouterService(logger *zap.Logger) *OpenRouterService {
	cfg := config.LoadOpenRouterConfig()
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(90 * time.Second)

	return &OpenRouterService{
		client: client,
		model:  cfg.Model,
		logger: logger,
	}
}

func (s *OpenRouterService) Complete(ctx context.Context, messages []model.Message) (string, error) {
	payload := map[string]any{
		"model":       s.model,
		"messages":    messages,
		"max_tokens":  completionMaxTokens,
		"temperature": completionTemperature,
		"n":           1,
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(payload).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}

	if resp.IsError() {
		s.logger.Error("completion provider returned error status",
			zap.Int("status", resp.StatusCode()),
			zap.ByteString("body", resp.Body()))
		return "", fmt.Errorf("completion provider returned status %d", resp.StatusCode())
	}

	content := gjson.GetBytes(resp.Body(), "choices.0.message.content")
	if !content.Exists() {
		s.logger.Error("completion provider returned malformed payload",
			zap.ByteString("body", resp.Body()))
		return "", errors.New("completion provider returned malformed payload")
	}

	return content.String(), nil
}
