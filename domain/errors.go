package dmn

import "errors"

// Repository errors shared by the persistence implementations.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrUsernameConflict = errors.New("username conflict")
)
