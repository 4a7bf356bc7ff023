package schema

import "encoding/json"

// ErrorCode classifies executor failures.
type ErrorCode string

const (
	ErrNotFound         ErrorCode = "NOT_FOUND"
	ErrAlreadyExists    ErrorCode = "ALREADY_EXISTS"
	ErrMissingParam     ErrorCode = "MISSING_PARAM"
	ErrInvalidParam     ErrorCode = "INVALID_PARAM"
	ErrAPIError         ErrorCode = "API_ERROR"
	ErrPermissionDenied ErrorCode = "PERMISSION_DENIED"
	ErrUnknownAction    ErrorCode = "UNKNOWN_ACTION"
	ErrMissingAction    ErrorCode = "MISSING_ACTION"
	ErrInvalidDirective ErrorCode = "INVALID_DIRECTIVE"
	ErrExecutionError   ErrorCode = "EXECUTION_ERROR"
)

// ActionError is the structured error payload of a failed result.
type ActionError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// AgentActionResult is the executor's output, tagged by Success.
type AgentActionResult struct {
	Success     bool           `json:"success"`
	ActionTaken string         `json:"action_taken,omitempty"`
	Result      map[string]any `json:"result,omitempty"`
	Message     string         `json:"message,omitempty"`
	Error       *ActionError   `json:"error,omitempty"`
	Suggestions []string       `json:"suggestions,omitempty"`
}

// MaxSuggestions bounds the follow-up list attached to a successful result.
const MaxSuggestions = 3

// SuccessResult builds a successful result. Suggestions beyond
// MaxSuggestions are dropped.
func SuccessResult(action string, result map[string]any, message string, suggestions []string) AgentActionResult {
	if len(suggestions) > MaxSuggestions {
		suggestions = suggestions[:MaxSuggestions]
	}
	return AgentActionResult{
		Success:     true,
		ActionTaken: action,
		Result:      result,
		Message:     message,
		Suggestions: suggestions,
	}
}

// ErrorResult builds a failed result with a classified error.
func ErrorResult(action string, code ErrorCode, message string) AgentActionResult {
	return AgentActionResult{
		Success:     false,
		ActionTaken: action,
		Error:       &ActionError{Code: code, Message: message},
	}
}

// Encode serializes the result for logging or transport.
func (r AgentActionResult) Encode() ([]byte, error) {
	return json.Marshal(r)
}
