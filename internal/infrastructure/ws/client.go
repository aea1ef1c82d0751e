package ws

import (
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/hilthontt/playbutton/internal/domain"
	"github.com/hilthontt/playbutton/internal/infrastructure/logging"
)

const maxFrameSize = 512

// Presser is the part of a control a remote client may touch.
type Presser interface {
	ID() string
	Press(source string)
}

type Client struct {
	conn *connWrapper
	ID   string
}

func NewClient(conn *websocket.Conn) *Client {
	conn.SetReadLimit(maxFrameSize)
	return &Client{
		conn: newConnWrapper(conn),
		ID:   uuid.NewString(),
	}
}

// ReadLoop presses the control once per "press" text frame until the peer
// goes away. Each press is acknowledged; the play outcome is not sent back.
func (c *Client) ReadLoop(presser Presser, logger logging.Logger) {
	defer func() {
		_ = c.conn.Close()
	}()

	for {
		msgType, raw, err := c.conn.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn(logging.Remote, logging.Websocket, "ws read error", map[logging.ExtraKey]any{
					logging.ClientID:     c.ID,
					logging.ErrorMessage: err.Error(),
				})
			}
			return
		}

		if msgType != websocket.TextMessage || !strings.EqualFold(strings.TrimSpace(string(raw)), PressCommand) {
			if err := c.conn.WriteJSON(WSMessage{
				Type: PressRejected,
				Data: map[string]string{"reason": `expected text frame "press"`},
			}); err != nil {
				return
			}
			continue
		}

		presser.Press(domain.SourceWebsocket)

		if err := c.conn.WriteJSON(WSMessage{
			Type: PressAccepted,
			Data: map[string]string{"button": presser.ID()},
		}); err != nil {
			logger.Warn(logging.Remote, logging.Websocket, "ws write error", map[logging.ExtraKey]any{
				logging.ClientID:     c.ID,
				logging.ErrorMessage: err.Error(),
			})
			return
		}
	}
}

func (c *Client) Close(reason string) error {
	return c.conn.CloseWithReason(websocket.CloseGoingAway, reason)
}
