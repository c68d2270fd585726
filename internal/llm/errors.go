package llm

import "errors"

// Sentinel errors for the Ollama transport. Callers match with errors.Is;
// the interpreter treats every one of them as a failed fallback attempt.
var (
	ErrUnavailable    = errors.New("ollama server unavailable")
	ErrTimeout        = errors.New("llm request timed out")
	ErrInvalidOutput  = errors.New("invalid llm output format")
	ErrRetryExhausted = errors.New("llm retry attempts exhausted")
)
