package domain

import "errors"

var (
	ErrEmptyButtonID = errors.New("button id must not be empty")
	ErrNilListener   = errors.New("activation listener must not be nil")
)
