package domain

import "errors"

// Sentinel errors shared across services and adapters.
var (
	// ErrUnauthorized is returned when credentials are rejected or the
	// received access token cannot be decoded.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrSubmitFailed is returned when the backend rejects or fails an
	// event submission. The form state is preserved so the user can retry.
	ErrSubmitFailed = errors.New("event submission failed")

	// ErrSubmitInFlight is returned when a submission is requested while a
	// previous one for the same session has not finished.
	ErrSubmitInFlight = errors.New("submission already in flight")

	// ErrTokenDecode is returned when a bearer token payload cannot be
	// decoded into claims.
	ErrTokenDecode = errors.New("malformed token payload")
)

// ValidationError reports the first form rule violated. The message is
// user-facing and is surfaced verbatim by the notifier.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// AsValidationError unwraps err into a *ValidationError, if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	ok := errors.As(err, &verr)
	return verr, ok
}
