package ws

const (
	PressCommand = "press"

	PressAccepted = "press.accepted"
	PressRejected = "press.rejected"
)

type WSMessage struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}
