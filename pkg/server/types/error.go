package types

import (
	"errors"
	"net/http"

	"kanjize-hq/kanjize/pkg/kanjize"
)

// Error types.
const (
	ErrorTypeInvalidNumeral       = "invalid_numeral"
	ErrorTypeInvalidConfiguration = "invalid_configuration"
	ErrorTypeOutOfRange           = "out_of_range"
	ErrorTypeInvalidRequest       = "invalid_request"
	ErrorTypeNotFound             = "not_found"
	ErrorTypeMethodNotAllowed     = "method_not_allowed"
	ErrorTypeServerError          = "server_error"
	ErrorTypeGatewayTimeout       = "gateway_timeout"
	ErrorTypeOverloaded           = "overloaded"
)

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains detailed error information.
type ErrorDetail struct {
	// Type categorizes the error.
	Type string `json:"type"`

	// Reason is the machine-readable rejection reason for invalid numerals,
	// or the offending field for invalid configuration.
	Reason string `json:"reason,omitempty"`

	// Message is a human-readable error message.
	Message string `json:"message"`

	// Param names the query parameter at fault, if any.
	Param string `json:"param,omitempty"`
}

// NewErrorResponse creates an error response.
func NewErrorResponse(errorType, reason, message, param string) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorDetail{
			Type:    errorType,
			Reason:  reason,
			Message: message,
			Param:   param,
		},
	}
}

// NewInvalidRequestError reports a missing or malformed query parameter.
func NewInvalidRequestError(message, param string) *ErrorResponse {
	return NewErrorResponse(ErrorTypeInvalidRequest, "", message, param)
}

// NewServerError creates an error response for internal server errors.
func NewServerError(message string) *ErrorResponse {
	return NewErrorResponse(ErrorTypeServerError, "", message, "")
}

// NewGatewayTimeoutError creates an error response for requests that ran
// past their deadline.
func NewGatewayTimeoutError(message string) *ErrorResponse {
	return NewErrorResponse(ErrorTypeGatewayTimeout, "", message, "")
}

// NewOverloadedError reports a request rejected by the concurrency limit.
func NewOverloadedError(message string) *ErrorResponse {
	return NewErrorResponse(ErrorTypeOverloaded, "", message, "")
}

// FromError maps a conversion error onto an error response. param names
// the query parameter that carried the input.
func FromError(err error, param string) *ErrorResponse {
	var numErr *kanjize.NumeralError
	var cfgErr *kanjize.ConfigurationError

	switch {
	case errors.As(err, &numErr):
		return NewErrorResponse(ErrorTypeInvalidNumeral, string(numErr.Reason), err.Error(), param)
	case errors.As(err, &cfgErr):
		return NewErrorResponse(ErrorTypeInvalidConfiguration, cfgErr.Field, err.Error(), cfgErr.Field)
	case errors.Is(err, kanjize.ErrOutOfRange):
		return NewErrorResponse(ErrorTypeOutOfRange, "", err.Error(), param)
	default:
		return NewServerError("An internal error occurred.")
	}
}

// HTTPStatusCode returns the status code for the error type.
func (e *ErrorDetail) HTTPStatusCode() int {
	switch e.Type {
	case ErrorTypeInvalidNumeral, ErrorTypeInvalidConfiguration, ErrorTypeOutOfRange, ErrorTypeInvalidRequest:
		return http.StatusBadRequest
	case ErrorTypeNotFound:
		return http.StatusNotFound
	case ErrorTypeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case ErrorTypeGatewayTimeout:
		return http.StatusGatewayTimeout
	case ErrorTypeOverloaded:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
