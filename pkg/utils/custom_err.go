package utils

import "errors"

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrDevoteeNotFound    = errors.New("devotee not found")
	ErrEntryNotFound      = errors.New("sadhana entry not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrDuplicateEntry     = errors.New("entry already exists for this date")
	ErrAccessDenied       = errors.New("access denied")
	ErrInvalidRole        = errors.New("invalid role")
	ErrValidation         = errors.New("invalid request")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrDatabaseError      = errors.New("database error")
)
