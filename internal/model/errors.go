// File: internal/model/errors.go
package model

import "errors"

var (
	ErrValidation      = errors.New("validation failed")
	ErrDuplicateEmail  = errors.New("email already registered")
	ErrUserNotFound    = errors.New("user not found")
	ErrTaskNotFound    = errors.New("task not found")
	ErrBadCredential   = errors.New("incorrect password")
	ErrUnauthenticated = errors.New("unauthenticated")
)
