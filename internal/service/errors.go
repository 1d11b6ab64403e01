package service

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidCredentials indicates that provided login credentials are incorrect.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidStatus is returned when a contact status transition names an unknown state.
	ErrInvalidStatus = errors.New("invalid contact status")
)

// ValidationError carries the itemized field messages of a rejected entity.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// AsValidationError unwraps err into a ValidationError, if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var v *ValidationError
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
