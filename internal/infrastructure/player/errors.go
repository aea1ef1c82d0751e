package player

import "errors"

var (
	ErrMissingBaseURL = errors.New("missing required base url")
	ErrInvalidBaseURL = errors.New("base url must be an absolute http(s) url")
	ErrNilHTTPDoer    = errors.New("http doer must not be nil")
	ErrNilResponse    = errors.New("play request returned no response")
)
