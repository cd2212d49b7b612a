package user

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrUserEmailExists = errors.New("email already registered")
	ErrUsernameExists  = errors.New("username already taken")
)
