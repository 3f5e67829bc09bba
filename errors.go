package voyage

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrValidation indicates a request failed validation.
	ErrValidation = errors.New("validation error")

	// ErrRequestFailed indicates an API call failed, either because the
	// network call itself failed or because the backend returned a
	// non-2xx status. No finer classification is made; every failure is
	// terminal for that one call.
	ErrRequestFailed = errors.New("request failed")

	// ErrUnsupportedAction indicates a UI element carried an action
	// identifier with no registered handler.
	ErrUnsupportedAction = errors.New("unsupported action")
)
