package future

import "errors"

var (
	// ErrNotReady is returned when reading a future that has not finished.
	ErrNotReady = errors.New("future not ready")

	// ErrNotFailed is returned by ReadError when the future finished
	// successfully.
	ErrNotFailed = errors.New("future not failed")

	// ErrStreamClosed fails futures returned by writes to a closed stream.
	ErrStreamClosed = errors.New("stream closed for writing")
)

// Error wraps the failure of a future together with the diagnostics captured
// when it failed.
type Error struct {
	Message string
	Cause   error

	// Stacktrace captured when the future failed
	Stacktrace string

	// Future is the diagnostic label of the failed future. Empty in release
	// builds.
	Future string
}

func (fe *Error) Error() string {
	return fe.Message
}

func (fe *Error) Unwrap() error {
	return fe.Cause
}

func (fe *Error) Stack() string {
	return fe.Stacktrace
}

var _ error = (*Error)(nil)

func (c *core) wrapError() *Error {
	return &Error{
		Message:    c.err.Error(),
		Cause:      c.err,
		Stacktrace: c.errStack,
		Future:     c.diag.label(),
	}
}
