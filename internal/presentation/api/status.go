package api

import (
	"github.com/hilthontt/playbutton/internal/domain"
	"github.com/hilthontt/playbutton/internal/infrastructure/ws"
	healthHandler "github.com/hilthontt/playbutton/internal/presentation/handler/health"
)

type remoteStatus struct {
	button  *domain.Button
	manager *ws.Manager
}

func NewStatus(button *domain.Button, manager *ws.Manager) healthHandler.Status {
	return &remoteStatus{button: button, manager: manager}
}

func (s *remoteStatus) ButtonID() string { return s.button.ID() }
func (s *remoteStatus) Listeners() int   { return s.button.Listeners() }
func (s *remoteStatus) Clients() int     { return s.manager.Count() }
