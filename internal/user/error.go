package user

import "errors"

var (
	ErrEmailExists        = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotApproved        = errors.New("user not approved by admin")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidResetToken  = errors.New("invalid or expired token")
)
