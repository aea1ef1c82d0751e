package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	SourceTUI       = "tui"
	SourceHTTP      = "http"
	SourceWebsocket = "ws"
	SourceStdin     = "stdin"
)

// Activation identifies a single press. It only lives as long as the
// request/response cycle it started.
type Activation struct {
	ID       uuid.UUID `json:"id"`
	ButtonID string    `json:"buttonId"`
	Source   string    `json:"source"`
	At       time.Time `json:"at"`
}

func NewActivation(buttonID, source string) Activation {
	return Activation{
		ID:       uuid.New(),
		ButtonID: buttonID,
		Source:   source,
		At:       time.Now().UTC(),
	}
}
