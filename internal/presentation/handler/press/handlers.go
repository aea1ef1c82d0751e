package press

import (
	"errors"
	"net/http"

	"github.com/hilthontt/playbutton/internal/domain"
	"github.com/hilthontt/playbutton/internal/infrastructure/json"
	"github.com/hilthontt/playbutton/internal/infrastructure/logging"
	"github.com/hilthontt/playbutton/internal/infrastructure/ws"
)

type Handler struct {
	button  ws.Presser
	manager *ws.Manager
	logger  logging.Logger
}

func NewHandler(button ws.Presser, manager *ws.Manager, logger logging.Logger) *Handler {
	return &Handler{
		button:  button,
		manager: manager,
		logger:  logger,
	}
}

// PressHandler presses the button and answers 202 right away; the play
// outcome only ever reaches the diagnostic sinks.
func (h *Handler) PressHandler(w http.ResponseWriter, r *http.Request) {
	h.button.Press(domain.SourceHTTP)

	json.Write(w, http.StatusAccepted, pressResponse{
		Status: "accepted",
		Button: h.button.ID(),
	})
}

func (h *Handler) WebsocketHandler(w http.ResponseWriter, r *http.Request) {
	client, err := h.manager.Upgrade(w, r)
	if errors.Is(err, ws.ErrManagerClosed) {
		json.WriteError(w, http.StatusServiceUnavailable, "server shutting down")
		return
	}
	if err != nil {
		// the upgrader has already written the HTTP error
		h.logger.Warn(logging.Remote, logging.Websocket, "ws upgrade failed", map[logging.ExtraKey]any{
			logging.ClientIp:     r.RemoteAddr,
			logging.ErrorMessage: err.Error(),
		})
		return
	}

	h.logger.Info(logging.Remote, logging.Websocket, "ws client connected", map[logging.ExtraKey]any{
		logging.ClientID: client.ID,
		logging.ClientIp: r.RemoteAddr,
	})

	h.manager.Serve(client, h.button, h.logger)
}
