package domain

import "errors"

// ErrorLabel prefixes every message written to an error sink.
const ErrorLabel = "Error:"

var ErrIncompleteSinks = errors.New("both success and error sinks are required")

// Sinks are the two terminal outputs of an activation. Exactly one of them
// receives each activation's outcome.
type Sinks struct {
	Success func(a Activation, body string)
	Error   func(a Activation, err error)
}

func (s Sinks) Validate() error {
	if s.Success == nil || s.Error == nil {
		return ErrIncompleteSinks
	}
	return nil
}
