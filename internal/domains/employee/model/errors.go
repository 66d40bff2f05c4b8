package model

import (
	"errors"
	"fmt"
	"net/http"
)

// EmployeeError định nghĩa base error cho employee domain
type EmployeeError struct {
	Code    string // Error code duy nhất (VD: "EMPLOYEE_EMAIL_EXISTS")
	Message string // Human-readable message
	Err     error  // Underlying error
}

// Error implements error interface
func (e *EmployeeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap allows error wrapping compatibility
func (e *EmployeeError) Unwrap() error {
	return e.Err
}

// Is matches any EmployeeError carrying the same code, so errors.Is works
// against the sentinels below even when the message is customised.
func (e *EmployeeError) Is(target error) bool {
	var t *EmployeeError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// Error codes
const (
	CodeEmailAlreadyExists = "EMPLOYEE_EMAIL_EXISTS"
	CodeEmployeeNotFound   = "EMPLOYEE_NOT_FOUND"
	CodeInvalidEmployeeID  = "INVALID_EMPLOYEE_ID"
	CodeInvalidPayload     = "INVALID_PAYLOAD"
	CodeInternal           = "INTERNAL_ERROR"
)

var (
	// ErrEmailAlreadyExists - create with an email that is already stored
	ErrEmailAlreadyExists = &EmployeeError{
		Code:    CodeEmailAlreadyExists,
		Message: "Employee already exist with given email",
	}

	// ErrEmployeeNotFound - an update raced with a delete and the row is gone.
	// Plain lookups report absence with a found flag instead.
	ErrEmployeeNotFound = &EmployeeError{
		Code:    CodeEmployeeNotFound,
		Message: "Employee not found",
	}

	// ErrInvalidEmployeeID - path id is not an integer
	ErrInvalidEmployeeID = &EmployeeError{
		Code:    CodeInvalidEmployeeID,
		Message: "Invalid employee ID",
	}

	// ErrInvalidPayload - request body is not valid employee JSON
	ErrInvalidPayload = &EmployeeError{
		Code:    CodeInvalidPayload,
		Message: "Invalid request payload",
	}
)

// NewEmailAlreadyExists builds the conflict error naming the duplicate email
func NewEmailAlreadyExists(email string) *EmployeeError {
	return &EmployeeError{
		Code:    CodeEmailAlreadyExists,
		Message: "Employee already exist with given email: " + email,
	}
}

// NewInvalidEmployeeID builds a bad request error for an unparsable id
func NewInvalidEmployeeID(raw string) *EmployeeError {
	return &EmployeeError{
		Code:    CodeInvalidEmployeeID,
		Message: fmt.Sprintf("Invalid employee ID: %q", raw),
	}
}

// NewInvalidPayload wraps a binding error
func NewInvalidPayload(err error) *EmployeeError {
	return &EmployeeError{
		Code:    CodeInvalidPayload,
		Message: ErrInvalidPayload.Message,
		Err:     err,
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	var e *EmployeeError
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}

	switch e.Code {
	case CodeEmailAlreadyExists:
		return http.StatusConflict
	case CodeEmployeeNotFound:
		return http.StatusNotFound
	case CodeInvalidEmployeeID, CodeInvalidPayload:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	var e *EmployeeError
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}
