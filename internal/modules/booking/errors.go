package booking

import "errors"

var (
	ErrPropertyNotFound = errors.New("property not found")
	ErrGuestNotFound    = errors.New("guest not found")
	ErrGuestsOnly       = errors.New("only guests can book")
)
