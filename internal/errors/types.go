package errors

import "errors"

var (
	ErrRetryExhausted        = errors.New("too many unsuccessful attempts")
	ErrBadRequest            = errors.New("bad request")
	ErrUnknownUpstreamStatus = errors.New("unknown upstream status")
	ErrEmptyResult           = errors.New("no golfers in response")
	ErrUnknownSource         = errors.New("unknown handicap source")
	ErrLogin                 = errors.New("upstream login failed")
	ErrInvalidInput          = errors.New("invalid input")
	ErrRateLimit             = errors.New("rate limit exceeded")
)
