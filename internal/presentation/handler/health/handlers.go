package health

import (
	"net/http"
	"time"

	"github.com/hilthontt/playbutton/internal/infrastructure/json"
)

// Status reports what the health endpoint needs from the running remote.
type Status interface {
	ButtonID() string
	Listeners() int
	Clients() int
}

type Handler struct {
	startTime time.Time
	status    Status
}

func NewHandler(status Status) *Handler {
	return &Handler{
		startTime: time.Now(),
		status:    status,
	}
}

// GetHealth is "ok" while the button has at least one bound listener; a
// remote whose presses go nowhere reports "unhealthy" with 503.
func (h *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Button:    h.status.ButtonID(),
		Listeners: h.status.Listeners(),
		Clients:   h.status.Clients(),
	}

	if resp.Listeners == 0 {
		resp.Status = "unhealthy"
		json.Write(w, http.StatusServiceUnavailable, resp)
		return
	}

	json.Write(w, http.StatusOK, resp)
}
