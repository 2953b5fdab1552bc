package apperror

import "fmt"

// AppError is the domain error taxonomy surfaced over HTTP: NotFound,
// Conflict and BadRequest. Anything else is treated as an infrastructure
// failure and propagates as a 500.
type AppError struct {
	Code    int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewNotFound(format string, args ...interface{}) *AppError {
	return &AppError{Code: 404, Message: fmt.Sprintf(format, args...)}
}

func NewConflict(format string, args ...interface{}) *AppError {
	return &AppError{Code: 409, Message: fmt.Sprintf(format, args...)}
}

func NewBadRequest(format string, args ...interface{}) *AppError {
	return &AppError{Code: 400, Message: fmt.Sprintf(format, args...)}
}

func NewUnauthorized(format string, args ...interface{}) *AppError {
	return &AppError{Code: 401, Message: fmt.Sprintf(format, args...)}
}

func IsNotFound(err error) bool {
	appErr, ok := err.(*AppError)
	return ok && appErr.Code == 404
}
