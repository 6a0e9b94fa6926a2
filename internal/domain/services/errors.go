package services

import (
	"errors"
)

// Service-level sentinel errors. Controllers map these onto API error codes.
var (
	// ErrInvalidPhone means the phone failed the national mobile pattern
	ErrInvalidPhone = errors.New("invalid phone number")
	// ErrInvalidPIN means the PIN is not exactly 4 digits
	ErrInvalidPIN = errors.New("invalid PIN")
	// ErrInvalidEmail means the email failed the local@domain shape
	ErrInvalidEmail = errors.New("invalid email")
	// ErrInvalidPassword means the password is shorter than 6 characters
	ErrInvalidPassword = errors.New("invalid password")
	// ErrInvalidDate means a date field was not YYYY-MM-DD
	ErrInvalidDate = errors.New("invalid date")
	// ErrMissingField means a required field was empty after sanitizing
	ErrMissingField = errors.New("missing required field")

	// ErrBadCredentials covers both unknown account and wrong secret, so
	// callers cannot distinguish the two cases
	ErrBadCredentials = errors.New("incorrect credentials")
	// ErrTokenInvalid means the bearer token failed verification
	ErrTokenInvalid = errors.New("invalid token")
	// ErrPhoneInUse means the phone is already registered in the table
	ErrPhoneInUse = errors.New("phone already in use")
)
