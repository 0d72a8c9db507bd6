package domain

import "fmt"

// GenerationParams controls one text generation request.
type GenerationParams struct {
	MaxNewTokens   int
	Temperature    float64
	ReturnFullText bool
}

// FailureKind classifies why a generation request failed.
type FailureKind string

const (
	FailureMissingToken      FailureKind = "missing_token"
	FailureInvalidInput      FailureKind = "invalid_input"
	FailureTransport         FailureKind = "transport"
	FailureHTTPStatus        FailureKind = "http_status"
	FailureMalformedResponse FailureKind = "malformed_response"
)

// GenerationFailure is the structured error half of a GenerationResult.
type GenerationFailure struct {
	Kind       FailureKind
	StatusCode int
	Message    string
}

func (f *GenerationFailure) Error() string {
	if f.StatusCode != 0 {
		return fmt.Sprintf("%s (status %d): %s", f.Kind, f.StatusCode, f.Message)
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

// GenerationResult is either generated text or a failure, never both.
// Gateways return failures as values so callers cannot mistake an error
// message for generated content.
type GenerationResult struct {
	Text    string
	Failure *GenerationFailure
}

// OK reports whether the generation succeeded.
func (r GenerationResult) OK() bool { return r.Failure == nil }

// Generated wraps successful output.
func Generated(text string) GenerationResult {
	return GenerationResult{Text: text}
}

// Failed builds a failed result.
func Failed(kind FailureKind, statusCode int, format string, args ...any) GenerationResult {
	return GenerationResult{Failure: &GenerationFailure{
		Kind:       kind,
		StatusCode: statusCode,
		Message:    fmt.Sprintf(format, args...),
	}}
}
