package attendance

import "errors"

var (
	ErrDateNotToday       = errors.New("only today's date is allowed")
	ErrCheckOutNotAfterIn = errors.New("check-out time must be greater than check-in time")
	ErrInvalidClock       = errors.New("time must be in HH:mm format")
)

const (
	msgRequired     = "Date, check-in time, and check-out time are required"
	msgInvalidClock = "Time must be in HH:mm format"
)
