package user

import "errors"

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUserSuspended = errors.New("user is suspended")
	ErrInvalidRole   = errors.New("invalid role")
	ErrInvalidStatus = errors.New("invalid status")
)
