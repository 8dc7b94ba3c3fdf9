package session

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Handler serves the session REST surface under /api/games.
type Handler struct {
	svc *Service
	log *zap.Logger
}

func NewHandler(svc *Service, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{svc: svc, log: log}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

func decodeJSON(r *http.Request, out any) error {
	return json.NewDecoder(r.Body).Decode(out)
}

// /api/games  (collection)
func (h *Handler) GamesRoot(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		sessions, err := h.svc.List(r.Context())
		if err != nil {
			writeErr(w, 500, err.Error())
			return
		}
		writeJSON(w, 200, sessions)
		return

	case http.MethodPost:
		var in struct {
			Biome string `json:"biome"`
			Seed  int64  `json:"seed"`
		}
		if r.Body != nil && r.ContentLength != 0 {
			if err := decodeJSON(r, &in); err != nil {
				writeErr(w, 400, "bad json")
				return
			}
		}
		sess, err := h.svc.Create(r.Context(), in.Biome, in.Seed)
		if err != nil {
			writeErr(w, 400, err.Error())
			return
		}
		writeJSON(w, 201, sess)
		return

	default:
		writeErr(w, 405, "method not allowed")
		return
	}
}

// /api/games/{id} and /api/games/{id}/{action}
func (h *Handler) GamesSub(w http.ResponseWriter, r *http.Request) {
	tail := strings.TrimPrefix(r.URL.Path, "/api/games/")
	tail = strings.Trim(tail, "/")
	if tail == "" {
		writeErr(w, 404, "not found")
		return
	}

	parts := strings.Split(tail, "/")
	id := parts[0]

	// /api/games/{id}
	if len(parts) == 1 {
		switch r.Method {
		case http.MethodGet:
			state, err := h.svc.Snapshot(r.Context(), id)
			if errors.Is(err, ErrNotFound) {
				writeErr(w, 404, "not found")
				return
			}
			if err != nil {
				writeErr(w, 500, err.Error())
				return
			}
			writeJSON(w, 200, state)
			return

		case http.MethodDelete:
			err := h.svc.Delete(r.Context(), id)
			if errors.Is(err, ErrNotFound) {
				writeErr(w, 404, "not found")
				return
			}
			if err != nil {
				writeErr(w, 500, err.Error())
				return
			}
			writeJSON(w, 200, map[string]any{"deleted": id})
			return

		default:
			writeErr(w, 405, "method not allowed")
			return
		}
	}

	// /api/games/{id}/ws
	if len(parts) == 2 && parts[1] == "ws" && r.Method == http.MethodGet {
		h.ServeWS(w, r, id)
		return
	}

	// /api/games/{id}/stats
	if len(parts) == 2 && parts[1] == "stats" && r.Method == http.MethodGet {
		stats, err := h.svc.Stats(r.Context(), id)
		if errors.Is(err, ErrNotFound) {
			writeErr(w, 404, "not found")
			return
		}
		if err != nil {
			writeErr(w, 500, err.Error())
			return
		}
		writeJSON(w, 200, stats)
		return
	}

	action := strings.Join(parts[1:], "/")
	if r.Method != http.MethodPost {
		writeErr(w, 404, "not found")
		return
	}

	cmd, ok := commandForRoute(action, r)
	if !ok {
		writeErr(w, 404, "not found")
		return
	}

	state, err := h.svc.Apply(r.Context(), id, cmd)
	if errors.Is(err, ErrNotFound) {
		writeErr(w, 404, "not found")
		return
	}
	if err != nil {
		writeErr(w, 400, err.Error())
		return
	}
	writeJSON(w, 200, state)
}

func commandForRoute(action string, r *http.Request) (Command, bool) {
	var in struct {
		Index int    `json:"index"`
		Biome string `json:"biome"`
	}
	if r.Body != nil && r.ContentLength != 0 {
		if err := decodeJSON(r, &in); err != nil {
			return Command{}, false
		}
	}

	switch action {
	case "play":
		return Command{Action: ActionPlay, Index: in.Index}, true
	case "discard":
		return Command{Action: ActionDiscard, Index: in.Index}, true
	case "end-turn":
		return Command{Action: ActionEndTurn}, true
	case "event":
		return Command{Action: ActionEvent, Index: in.Index}, true
	case "council":
		return Command{Action: ActionCouncil, Index: in.Index}, true
	case "reward":
		return Command{Action: ActionReward, Index: in.Index}, true
	case "reward/skip":
		return Command{Action: ActionRewardSkip}, true
	case "reset":
		return Command{Action: ActionReset, Biome: in.Biome}, true
	}
	return Command{}, false
}
