package usecase

import "errors"

var (
	ErrMalformedRecord  = errors.New("malformed match record")
	ErrUnknownOperation = errors.New("unknown operation")
	ErrMissingArgument  = errors.New("missing argument")
	ErrInvalidFilter    = errors.New("invalid filter")
	ErrStoreFault       = errors.New("store fault")
)
