package util

import "errors"

var (
	ErrEmptyReference   = errors.New("reference string must contain at least 1 page")
	ErrInvalidFrames    = errors.New("frames must be a positive integer")
	ErrInvalidMaxFrames = errors.New("benchmark max frames must be a positive integer")
	ErrInvalidWorkers   = errors.New("workers must be a positive integer")
	ErrInvalidCapacity  = errors.New("invalid frame capacity")
	ErrUnknownPolicy    = errors.New("unknown replacement policy")
	ErrStepOutOfRange   = errors.New("step out of range")
	ErrInvalidLogLevel  = errors.New("invalid log level")
)
