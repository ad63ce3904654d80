package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for precondition failures. These map to 4xx responses
// in the server error middleware.
var (
	ErrAPIKeyMissing    = errors.New("gemini api key is not configured")
	ErrEmptyDescription = errors.New("company description is empty")
	ErrNoSitemap        = errors.New("no sitemap has been generated yet")
	ErrWrongStage       = errors.New("action not available in the current workflow stage")
	ErrNoSavedPlan      = errors.New("no saved plan found")
)

// GenerationError wraps a provider or normalization failure for one
// generation task. Detail embeds the upstream failure so the user sees
// what went wrong without getting a raw payload or stack trace.
type GenerationError struct {
	Task   string
	Detail string
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("failed to generate %s. %s", e.Task, e.Detail)
}

func NewGenerationError(task string, cause error) *GenerationError {
	detail := ""
	if cause != nil {
		detail = cause.Error()
	}
	return &GenerationError{Task: task, Detail: detail}
}

// IsGenerationError reports whether err is (or wraps) a GenerationError.
func IsGenerationError(err error) bool {
	var ge *GenerationError
	return errors.As(err, &ge)
}
