// Package error defines domain-specific errors for the household budget application.
package error

import "errors"

// Purchase request domain errors.
var (
	// ErrRequestNotFound is returned when a purchase request is not found.
	ErrRequestNotFound = errors.New("purchase request not found")

	// ErrRequestToSelf is returned when the requester and recipient are the same member.
	ErrRequestToSelf = errors.New("cannot send a purchase request to yourself")

	// ErrRequestAlreadyResolved is returned when responding to a non-pending request.
	ErrRequestAlreadyResolved = errors.New("purchase request already resolved")

	// ErrNotRequestRecipient is returned when a member other than the recipient responds.
	ErrNotRequestRecipient = errors.New("only the recipient can respond to a request")

	// ErrInvalidRequestStatus is returned when the response status is unknown.
	ErrInvalidRequestStatus = errors.New("invalid request status")
)

// RequestErrorCode defines error codes for purchase request errors.
// Format: REQ-XXYYYY where XX is category and YYYY is specific error.
type RequestErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeRequestToSelf        RequestErrorCode = "REQ-010001"
	ErrCodeInvalidRequestStatus RequestErrorCode = "REQ-010002"

	// State errors (02XXXX)
	ErrCodeRequestNotFound        RequestErrorCode = "REQ-020001"
	ErrCodeRequestAlreadyResolved RequestErrorCode = "REQ-020002"
	ErrCodeNotRequestRecipient    RequestErrorCode = "REQ-020003"
)

// RequestError represents a purchase request error with code and message.
type RequestError struct {
	Code    RequestErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RequestError) Unwrap() error {
	return e.Err
}

// NewRequestError creates a new RequestError with the given code and message.
func NewRequestError(code RequestErrorCode, message string, err error) *RequestError {
	return &RequestError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
