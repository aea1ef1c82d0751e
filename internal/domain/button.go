package domain

import (
	"strings"
	"sync"
)

const DefaultButtonID = "playButton"

// Control is a handle to an interactive control that raises activation events.
type Control interface {
	ID() string
	OnActivate(fn func(source string)) error
}

// Button is an in-process control. Front ends (terminal, HTTP, websocket, stdin)
// call Press; listeners bound with OnActivate receive every press.
type Button struct {
	id string

	mu        sync.RWMutex
	listeners []func(source string)
}

func NewButton(id string) (*Button, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrEmptyButtonID
	}

	return &Button{id: id}, nil
}

func (b *Button) ID() string {
	return b.id
}

func (b *Button) OnActivate(fn func(source string)) error {
	if fn == nil {
		return ErrNilListener
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners = append(b.listeners, fn)
	return nil
}

// Press dispatches to listeners synchronously, in registration order.
// A button without listeners ignores the press.
func (b *Button) Press(source string) {
	b.mu.RLock()
	listeners := make([]func(string), len(b.listeners))
	copy(listeners, b.listeners)
	b.mu.RUnlock()

	for _, fn := range listeners {
		fn(source)
	}
}

func (b *Button) Listeners() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.listeners)
}
