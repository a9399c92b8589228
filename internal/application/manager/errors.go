package manager

import "errors"

var (
	ErrInvalidRegistration = errors.New("invalid registration data")
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
)
