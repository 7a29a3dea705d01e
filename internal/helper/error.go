package helper

import (
	"errors"
	"net/http"
)

const (
	MsgInternalServerError = "Internal Server Error"
	MsgBadRequest          = "Bad Request"
	MsgNotFound            = "Not Found"
	MsgUnauthorized        = "Unauthorized"
	MsgForbidden           = "Forbidden"
	MsgConflict            = "Conflict"
	MsgMethodNotAllowed    = "Method Not Allowed"
	MsgTooManyRequests     = "Too Many Requests"
	MsgServiceUnavailable  = "Service Unavailable"
)

type ErrorKind string

const (
	KindValidation    ErrorKind = "validation"
	KindAuth          ErrorKind = "auth"
	KindNetwork       ErrorKind = "network"
	KindPartialUpload ErrorKind = "partial_upload"
	KindNotFound      ErrorKind = "not_found"
	KindRateLimit     ErrorKind = "rate_limit"
	KindUnexpected    ErrorKind = "unexpected"
)

type AppError struct {
	Code      int
	Kind      ErrorKind
	Message   string
	Fields    map[string]string
	Retryable bool
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Kind:    kindForStatus(code),
		Message: message,
	}
}

func kindForStatus(code int) ErrorKind {
	switch {
	case code == http.StatusBadRequest || code == http.StatusUnprocessableEntity || code == http.StatusConflict:
		return KindValidation
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return KindAuth
	case code == http.StatusNotFound || code == http.StatusMethodNotAllowed:
		return KindNotFound
	case code == http.StatusTooManyRequests:
		return KindRateLimit
	case code == http.StatusBadGateway || code == http.StatusServiceUnavailable || code == http.StatusGatewayTimeout:
		return KindNetwork
	default:
		return KindUnexpected
	}
}

func NewBadRequestError(message string) *AppError {
	if message == "" {
		message = MsgBadRequest
	}
	return NewAppError(http.StatusBadRequest, message)
}

// NewValidationError carries field-scoped messages and blocks progression.
func NewValidationError(message string, fields map[string]string) *AppError {
	if message == "" {
		message = MsgBadRequest
	}
	appErr := NewAppError(http.StatusUnprocessableEntity, message)
	appErr.Fields = fields
	return appErr
}

func NewInternalServerError(message string) *AppError {
	if message == "" {
		message = MsgInternalServerError
	}
	return NewAppError(http.StatusInternalServerError, message)
}

// NewNetworkError reports a failed backend call the client may retry.
func NewNetworkError(message string) *AppError {
	if message == "" {
		message = MsgServiceUnavailable
	}
	appErr := NewAppError(http.StatusBadGateway, message)
	appErr.Retryable = true
	return appErr
}

func NewNotFoundError(message string) *AppError {
	if message == "" {
		message = MsgNotFound
	}
	return NewAppError(http.StatusNotFound, message)
}

func NewUnauthorizedError(message string) *AppError {
	if message == "" {
		message = MsgUnauthorized
	}
	return NewAppError(http.StatusUnauthorized, message)
}

func NewForbiddenError(message string) *AppError {
	if message == "" {
		message = MsgForbidden
	}
	return NewAppError(http.StatusForbidden, message)
}

func NewConflictError(message string) *AppError {
	if message == "" {
		message = MsgConflict
	}
	return NewAppError(http.StatusConflict, message)
}

func NewMethodNotAllowedError(message string) *AppError {
	if message == "" {
		message = MsgMethodNotAllowed
	}
	return NewAppError(http.StatusMethodNotAllowed, message)
}

func NewTooManyRequestsError(message string) *AppError {
	if message == "" {
		message = MsgTooManyRequests
	}
	appErr := NewAppError(http.StatusTooManyRequests, message)
	appErr.Retryable = true
	return appErr
}

func NewServiceUnavailableError(message string) *AppError {
	if message == "" {
		message = MsgServiceUnavailable
	}
	appErr := NewAppError(http.StatusServiceUnavailable, message)
	appErr.Retryable = true
	return appErr
}

func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
