package socket

import (
	"log"

	"projectmatch_server/models"

	socketio "github.com/googollee/go-socket.io"
)

// Hub pushes negotiation milestones to connected dashboards.
type Hub struct {
	Server *socketio.Server
}

// NewHub initializes the Socket.IO server and its connection handlers.
func NewHub() *Hub {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(c socketio.Conn) error {
		log.Println("Socket connected:", c.ID())
		return nil
	})

	server.OnEvent("/", "join", func(c socketio.Conn, room string) {
		if room == "" {
			log.Println("Invalid room in join request")
			return
		}
		log.Printf("Socket %s joined room %s\n", c.ID(), room)
		c.Join(room)
	})

	server.OnDisconnect("/", func(c socketio.Conn, reason string) {
		log.Println("Socket disconnected:", c.ID(), reason)
	})

	return &Hub{Server: server}
}

// RoundStarted announces a newly opened round.
func (h *Hub) RoundStarted(round int) {
	h.Server.BroadcastToNamespace("/", "roundStarted", map[string]interface{}{
		"round_number": round,
	})
}

// RoundClosed announces that the round stopped accepting decisions.
func (h *Hub) RoundClosed(round int) {
	h.Server.BroadcastToNamespace("/", "roundClosed", map[string]interface{}{
		"round_number": round,
	})
}

// MatchFinalized announces a mutually accepted pairing.
func (h *Hub) MatchFinalized(match models.MatchResult) {
	h.Server.BroadcastToNamespace("/", "matchFinalized", map[string]interface{}{
		"group_email":   match.GroupEmail,
		"project_id":    match.ProjectID,
		"project_name":  match.ProjectName,
		"company_email": match.CompanyEmail,
	})
}
