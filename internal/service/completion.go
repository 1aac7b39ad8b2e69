package service

import (
	"context"

	"github.com/fadilmartias/job-wingman/internal/model"
)

// CompletionServiceInterface is implemented by every completion provider.
// Complete takes the assembled role-tagged message list and returns the
// generated reply text.
type CompletionServiceInterface interface {
	Complete(ctx context.Context, messages []model.Message) (string, error)
}

// Fixed sampling parameters: one completion, bounded output, moderate
// temperature.
const (
	completionMaxTokens   = 512
	completionTemperature = 0.7
)
