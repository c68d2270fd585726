package intelligence

import (
	"context"
	"fmt"
	"time"

	"github.com/anirudhsk/jarvis/internal/interpreter"
	"github.com/anirudhsk/jarvis/internal/llm"
)

// FreeformService classifies utterances the rule layer could not resolve.
// It implements interpreter.FreeformClassifier.
type FreeformService struct {
	client llm.Client
}

// NewFreeformService creates a FreeformService backed by an LLM client.
func NewFreeformService(client llm.Client) *FreeformService {
	return &FreeformService{client: client}
}

// ClassifyFreeform sends the utterance to the model and extracts a structured
// action guess. Any transport or parse failure is returned as an error; the
// caller decides how to degrade.
func (s *FreeformService) ClassifyFreeform(ctx context.Context, text string, now time.Time) (*interpreter.FreeformResult, error) {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskClassify,
		SystemPrompt: buildClassifySystemPrompt(now),
		UserPrompt:   text,
	})
	if err != nil {
		return nil, fmt.Errorf("freeform classify: %w", err)
	}

	result, err := llm.ExtractJSON[interpreter.FreeformResult](resp.Text, validateFreeform)
	if err != nil {
		return nil, fmt.Errorf("freeform classify: %w", err)
	}
	if result.Fields == nil {
		result.Fields = map[string]string{}
	}
	return &result, nil
}

// validateFreeform is the schema validator for ExtractJSON. The action name
// is required; unknown names are allowed here and mapped to chat downstream.
func validateFreeform(r interpreter.FreeformResult) error {
	if r.Action == "" {
		return fmt.Errorf("action is required")
	}
	return nil
}
