// Package common provides shared errors used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Input errors.
	ErrFileNotFound    = errors.New("file not found")
	ErrUnsupportedFile = errors.New("unsupported file type")

	// Parameter errors.
	ErrInvalidDate       = errors.New("invalid date format")
	ErrInvalidConfidence = errors.New("invalid confidence level")
	ErrInvalidWindow     = errors.New("invalid days window")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}
