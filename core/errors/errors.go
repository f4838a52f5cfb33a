package errors

import "fmt"

// ErrorCode identifies an application error category
type ErrorCode string

const (
	// Generic codes
	ErrInvalidInput               ErrorCode = "INVALID_INPUT"
	ErrInvalidRequestData         ErrorCode = "INVALID_REQUEST_DATA"
	ErrUnauthorized               ErrorCode = "UNAUTHORIZED"
	ErrForbidden                  ErrorCode = "FORBIDDEN"
	ErrNotFound                   ErrorCode = "NOT_FOUND"
	ErrAlreadyExists              ErrorCode = "ALREADY_EXISTS"
	ErrInternalServer             ErrorCode = "INTERNAL_SERVER_ERROR"
	ErrTokenExpired               ErrorCode = "TOKEN_EXPIRED"
	ErrInvalidTokenFormat         ErrorCode = "INVALID_TOKEN_FORMAT"
	ErrMissingAuthorizationHeader ErrorCode = "MISSING_AUTHORIZATION_HEADER"

	// Scheduling codes
	//
	// ErrNoQualifiedHost: no host matches the event's venue/type at all.
	// ErrNoAvailableHost: qualified hosts exist but none survived the
	// coverage/quota filter. Kept distinct so operators can tell "wrong
	// skill" from "nobody free" at a glance.
	ErrNoQualifiedHost     ErrorCode = "NO_QUALIFIED_HOST"
	ErrNoAvailableHost     ErrorCode = "NO_AVAILABLE_HOST"
	ErrReservationConflict ErrorCode = "RESERVATION_CONFLICT"
)

// AppError is the error type returned by all service-layer methods
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
