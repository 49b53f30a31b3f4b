package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a request payload fails
	// struct-tag validation. The wrapped detail names the offending fields.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned by Login for both an unknown email
	// and a wrong password. One sentinel for both causes: callers must not
	// be able to probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
