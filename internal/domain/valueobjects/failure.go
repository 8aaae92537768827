package valueobjects

import (
	"errors"
	"fmt"
	"strings"
)

type FailureKind string

const (
	FailureMissingCredential FailureKind = "missing_credential"
	FailureInvalidCredential FailureKind = "invalid_credential"
	FailurePermissionDenied  FailureKind = "permission_denied"
	FailureModelNotFound     FailureKind = "model_not_found"
	FailureTimeout           FailureKind = "timeout"
	FailureNoOutput          FailureKind = "no_output"
	FailurePollError         FailureKind = "poll_error"
	FailureUnclassified      FailureKind = "unclassified"
)

// Failure is a classified generation or analysis error. Each kind maps to one
// user-facing message so the caller can render a tailored explanation.
type Failure struct {
	kind    FailureKind
	message string
	cause   error
}

func NewFailure(kind FailureKind, message string) *Failure {
	return &Failure{kind: kind, message: message}
}

func WrapFailure(kind FailureKind, cause error) *Failure {
	return &Failure{kind: kind, message: cause.Error(), cause: cause}
}

func (f *Failure) Kind() FailureKind {
	return f.kind
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %s", f.kind, f.message)
}

func (f *Failure) Unwrap() error {
	return f.cause
}

func (f *Failure) UserMessage() string {
	switch f.kind {
	case FailureMissingCredential:
		return "No API key configured. Enter a Gemini API key and save it before generating."
	case FailureInvalidCredential:
		return "The API key was rejected. Check that the key is correct and has not been revoked."
	case FailurePermissionDenied:
		return "Access was denied. Check API access and billing settings for your Google Cloud project."
	case FailureModelNotFound:
		return "The requested model is not available. Make sure the Generative Language API is enabled for your key."
	case FailureTimeout:
		return "Video generation timed out. Try a simpler prompt or a shorter duration."
	case FailureNoOutput:
		return "The model returned no video. The prompt may have been blocked by content filters."
	case FailurePollError:
		return "Lost contact with the generation service. Check your connection and try again."
	default:
		return fmt.Sprintf("Video generation failed: %s", f.message)
	}
}

// ClassifyError maps a remote error to a Failure by inspecting the error text
// for known substrings. The SDK does not surface structured codes uniformly,
// so substring matching is the fallback adapter at this boundary.
func ClassifyError(err error) *Failure {
	if err == nil {
		return nil
	}

	var f *Failure
	if errors.As(err, &f) {
		return f
	}

	errStr := strings.ToLower(err.Error())

	switch {
	case strings.Contains(errStr, "api key not valid") ||
		strings.Contains(errStr, "api_key_invalid") ||
		strings.Contains(errStr, "invalid api key"):
		return WrapFailure(FailureInvalidCredential, err)
	case strings.Contains(errStr, "permission denied") ||
		strings.Contains(errStr, "permission_denied") ||
		strings.Contains(errStr, "billing"):
		return WrapFailure(FailurePermissionDenied, err)
	case strings.Contains(errStr, "not found") ||
		strings.Contains(errStr, "not_found"):
		return WrapFailure(FailureModelNotFound, err)
	default:
		return WrapFailure(FailureUnclassified, err)
	}
}
