package service

import (
	"context"
	"fmt"

	"github.com/aognev/go-notes-api/internal/adapter"
	"github.com/aognev/go-notes-api/internal/logger"
)

// summaryWordLimit is the word budget given to the model; it doubles as the
// completion's max_tokens value.
const summaryWordLimit = 100

// summarizeService is the concrete implementation of SummarizeService.
// A nil completion client means the capability is not configured, which is
// reported as ErrSummarizerNotConfigured, distinct from a call that failed.
type summarizeService struct {
	completion adapter.CompletionClient

	logger *logger.Logger
}

// NewSummarizeService constructs a SummarizeService. Pass a nil completion
// client to construct it in disabled mode (no LLM API key configured).
func NewSummarizeService(completion adapter.CompletionClient, logger *logger.Logger) SummarizeService {
	return &summarizeService{completion: completion, logger: logger}
}

func (s *summarizeService) Summarize(ctx context.Context, text string) (string, error) {
	if s.completion == nil {
		return "", ErrSummarizerNotConfigured
	}

	systemPrompt := fmt.Sprintf("Summarize the following text in %d words or less:", summaryWordLimit)
	summary, err := s.completion.Complete(ctx, systemPrompt, text, summaryWordLimit)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrSummarizationFailed, err)
	}

	return summary, nil
}
