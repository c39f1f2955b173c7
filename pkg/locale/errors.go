package locale

import "errors"

var (
	ErrEmptyTimezone   = errors.New("timezone name is empty")
	ErrUnknownTimezone = errors.New("unknown timezone")
)
