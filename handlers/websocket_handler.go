package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/retrolan/lanbracket/live"
	"github.com/retrolan/lanbracket/services"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// CORS middleware already gates browser access to /api; the
		// websocket endpoint mirrors that openness.
		return true
	},
}

// WebSocketHandler upgrades connections and binds them to a tournament room.
type WebSocketHandler struct {
	hub     *live.Hub
	service *services.TournamentService
}

func NewWebSocketHandler(hub *live.Hub, service *services.TournamentService) *WebSocketHandler {
	return &WebSocketHandler{hub: hub, service: service}
}

// ServeWS handles GET /ws/tournaments/{tournamentID}. The tournament must
// exist before a room subscription is accepted.
func (h *WebSocketHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	tournamentID := chi.URLParam(r, "tournamentID")

	if _, err := h.service.Get(r.Context(), tournamentID); err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("websocket upgrade failed",
			slog.String("tournament_id", tournamentID),
			slog.Any("error", err))
		return
	}

	client := &live.Client{
		Hub:  h.hub,
		Conn: conn,
		Send: make(chan []byte, 256),
		Room: tournamentID,
	}
	h.hub.Register <- client

	go client.WritePump()
	go client.ReadPump()
}
