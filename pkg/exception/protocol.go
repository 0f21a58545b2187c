package exception

import "errors"

var (
	ErrMalformedInput  = errors.New("protocol: malformed input field")
	ErrEmptyLine       = errors.New("protocol: empty line")
	ErrUnknownCommand  = errors.New("protocol: unknown command")
	ErrMissingArgument = errors.New("protocol: missing argument")
	ErrWriteFailed     = errors.New("protocol: response write failed")
)
