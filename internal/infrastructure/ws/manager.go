package ws

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/hilthontt/playbutton/internal/infrastructure/logging"
)

const closingReason = "server shutting down"

var ErrManagerClosed = errors.New("ws manager is closed")

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Manager tracks connected remote clients and their read loops. Once
// CloseAll has run it accepts no new clients.
type Manager struct {
	clients map[string]*Client
	closed  bool
	mu      sync.RWMutex
	loops   sync.WaitGroup
}

func NewManager() *Manager {
	return &Manager{
		clients: make(map[string]*Client),
	}
}

// Upgrade returns ErrManagerClosed without touching w when the manager is
// already closed.
func (m *Manager) Upgrade(w http.ResponseWriter, r *http.Request) (*Client, error) {
	if m.isClosed() {
		return nil, ErrManagerClosed
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return nil, err
	}

	cl := NewClient(conn)

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		_ = cl.Close(closingReason)
		return nil, ErrManagerClosed
	}
	m.clients[cl.ID] = cl
	m.mu.Unlock()

	return cl, nil
}

// Serve runs the client's read loop on its own goroutine. The client is
// removed when the loop ends; CloseAll waits for it.
func (m *Manager) Serve(cl *Client, presser Presser, logger logging.Logger) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		_ = cl.Close(closingReason)
		return
	}
	m.loops.Add(1)
	m.mu.Unlock()

	go func() {
		defer m.loops.Done()
		defer m.Remove(cl)

		cl.ReadLoop(presser, logger)
		logger.Info(logging.Remote, logging.Websocket, "ws client disconnected", map[logging.ExtraKey]any{
			logging.ClientID: cl.ID,
		})
	}()
}

func (m *Manager) Remove(cl *Client) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.clients, cl.ID)
}

func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.clients)
}

func (m *Manager) isClosed() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.closed
}

// CloseAll refuses further clients, closes the connected ones and blocks
// until their read loops have returned. No press arrives from a websocket
// after it returns.
func (m *Manager) CloseAll(reason string) {
	m.mu.Lock()
	m.closed = true
	clients := make([]*Client, 0, len(m.clients))
	for id, cl := range m.clients {
		clients = append(clients, cl)
		delete(m.clients, id)
	}
	m.mu.Unlock()

	for _, cl := range clients {
		_ = cl.Close(reason)
	}

	m.loops.Wait()
}
