package smart

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrValidation means the objective is absent or too short. The caller should edit the input.
	ErrValidation = errors.New("objective text is missing or too short")
	// ErrEvaluation covers every failure of the model call or of parsing its output.
	ErrEvaluation = errors.New("ai evaluation failed")
)

// Client-facing messages. Causes are never exposed.
const (
	ValidationMessage = "Objective text is missing or too short."
	EvaluationMessage = "AI evaluation failed."
)

// SchemaError reports model output that parsed as JSON but does not have the rubric shape.
type SchemaError struct {
	Key    Key
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Key == "" {
		return "result schema: " + e.Reason
	}
	return fmt.Sprintf("result schema: %s: %s", e.Key, e.Reason)
}

// StatusCode maps an evaluation error to its HTTP status.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Message maps an evaluation error to the fixed client message.
func Message(err error) string {
	if errors.Is(err, ErrValidation) {
		return ValidationMessage
	}
	return EvaluationMessage
}
