package shared

import (
	"errors"
	"net/http"
)

// AppError carries an HTTP status alongside the client-facing message.
// Handlers return these and the central fiber error handler serializes them.
type AppError struct {
	StatusCode int         `json:"-"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	Err        error       `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(statusCode int, err error, message string) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Err: err}
}

func NewBadRequestError(err error, message string) *AppError {
	if message == "" {
		message = "Bad Request"
	}
	return NewAppError(http.StatusBadRequest, err, message)
}

// Duplicate unique keys surface as 400 to the client, same as the
// validation path.
func NewConflictError(err error, message string) *AppError {
	return NewAppError(http.StatusBadRequest, err, message)
}

func NewUnauthorizedError(err error, message string) *AppError {
	if message == "" {
		message = "Unauthorized"
	}
	return NewAppError(http.StatusUnauthorized, err, message)
}

func NewForbiddenError(err error, message string) *AppError {
	if message == "" {
		message = "Forbidden"
	}
	return NewAppError(http.StatusForbidden, err, message)
}

func NewNotFoundError(err error, message string) *AppError {
	if message == "" {
		message = "Not Found"
	}
	return NewAppError(http.StatusNotFound, err, message)
}

func NewInternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, err, "Internal Server Error")
}

func GetAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
