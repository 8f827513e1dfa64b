package domain

import "errors"

var (
	ErrDuplicateAccount   = errors.New("username already registered")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountNotFound    = errors.New("account not found")
	ErrNoSession          = errors.New("no active session")

	ErrMissingCredential  = errors.New("API key is missing")
	ErrMissingData        = errors.New("no health data recorded yet")
	ErrUpstream           = errors.New("plan endpoint request failed")
	ErrMalformedResponse  = errors.New("plan endpoint returned an unreadable reply")
	ErrCredentialNotFound = errors.New("credential not found")
)
