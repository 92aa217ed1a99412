package domain

import "errors"

var (
	ErrEventNotFound        = errors.New("event not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrProfileNotFound      = errors.New("profile not found")
	ErrRegistrationNotFound = errors.New("registration not found")
)

var (
	ErrCapacityReached   = errors.New("event capacity reached")
	ErrAlreadyRegistered = errors.New("you are already registered for this event")
	ErrEventCodeTaken    = errors.New("event code already taken")
)

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

var (
	ErrValidation = errors.New("validation error")
)
