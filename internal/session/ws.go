package session

import (
	"errors"
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type wsError struct {
	Error string `json:"error"`
}

// ServeWS upgrades /api/games/{id}/ws and runs a command loop: each
// Command frame gets the resulting snapshot back on the same socket.
// The first frame sent is the current snapshot.
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request, id string) {
	if _, err := h.svc.Snapshot(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			writeErr(w, 404, "not found")
			return
		}
		writeErr(w, 500, err.Error())
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	state, err := h.svc.Snapshot(r.Context(), id)
	if err != nil {
		_ = conn.WriteJSON(wsError{Error: err.Error()})
		return
	}
	if err := conn.WriteJSON(state); err != nil {
		return
	}

	for {
		var cmd Command
		if err := conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Debug("websocket closed", zap.String("session", id), zap.Error(err))
			}
			return
		}

		state, err := h.svc.Apply(r.Context(), id, cmd)
		if err != nil {
			if writeErr := conn.WriteJSON(wsError{Error: err.Error()}); writeErr != nil {
				return
			}
			continue
		}
		if err := conn.WriteJSON(state); err != nil {
			return
		}
	}
}
