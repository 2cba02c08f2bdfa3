package errors

import "fmt"

// ErrorType represents different types of errors that can occur
type ErrorType string

const (
	ErrorTypeNetwork     ErrorType = "network"
	ErrorTypeAuth        ErrorType = "auth"
	ErrorTypeCSRF        ErrorType = "csrf"
	ErrorTypeTwoFactor   ErrorType = "two_factor"
	ErrorTypeParsing     ErrorType = "parsing"
	ErrorTypeNotFound    ErrorType = "not_found"
	ErrorTypeServerError ErrorType = "server_error"
	ErrorTypeUnknown     ErrorType = "unknown"
)

// Error represents an API error with type information
type Error struct {
	Type    ErrorType
	Message string
	Code    int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s error (code %d): %s", e.Type, e.Code, e.Message)
}

// IsType reports whether err is an *Error of the given type.
func IsType(err error, errorType ErrorType) bool {
	apiErr, ok := err.(*Error)
	return ok && apiErr.Type == errorType
}
