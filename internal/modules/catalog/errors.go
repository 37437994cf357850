package catalog

import "errors"

var (
	ErrPropertyNotFound = errors.New("property not found")
	ErrUserNotFound     = errors.New("user not found")
)
