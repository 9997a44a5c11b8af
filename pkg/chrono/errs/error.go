package errs

import "errors"

var (
	ErrOverflow      = errors.New("The result overflows the range of safe integers.")
	ErrUnsafeInteger = errors.New("The timestamp must be a safe integer.")
	ErrRange         = errors.New("err value out of range")
	ErrField         = errors.New("err field out of range")
	ErrParseDate     = errors.New("invalid ISO-8601 date string")
	ErrParseTime     = errors.New("invalid ISO-8601 time string")
	ErrParseInstant  = errors.New("unrecognized UTC ISO-8601 date-time string")
	ErrParseRange    = errors.New("invalid ISO-8601 interval string")
	ErrRangeOrder    = errors.New("err range start must be strictly before end")
)
