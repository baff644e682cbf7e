package apperror

import "fmt"

// AppError is the error currency of the service layer: a stable code
// for clients, a human message, the HTTP status the handler should
// emit, and optionally the underlying cause.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the cause so errors.Is and errors.As see through it.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New builds a standalone AppError. Module error packages use it to
// declare their sentinel values.
func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap attaches code, message and status to an underlying error.
// A nil cause yields nil so call sites can wrap unconditionally.
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}
