package serverapp

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pontesfelipe/sistur-sub000/internal/catalog"
	"github.com/pontesfelipe/sistur-sub000/internal/config"
	"github.com/pontesfelipe/sistur-sub000/internal/httpmw"
	"github.com/pontesfelipe/sistur-sub000/internal/session"
	"github.com/pontesfelipe/sistur-sub000/internal/telemetry"
)

type Options struct {
	Config  *config.Config
	Catalog *catalog.Catalog
	DataDir string
	Logger  *zap.Logger

	// Sessions overrides the default SQLite repo (tests).
	Sessions session.Repo
	// Events overrides the default in-memory telemetry repo.
	Events telemetry.Repository
}

// NewHandler wires the whole HTTP surface. The returned closer shuts the
// session store down.
func NewHandler(opts Options) (http.Handler, func() error, error) {
	if opts.Config == nil {
		return nil, nil, errors.New("config is required")
	}
	if opts.Catalog == nil {
		return nil, nil, errors.New("catalog is required")
	}
	if strings.TrimSpace(opts.DataDir) == "" {
		opts.DataDir = "data"
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	closer := func() error { return nil }
	repo := opts.Sessions
	if repo == nil {
		if err := os.MkdirAll(opts.DataDir, 0o755); err != nil {
			return nil, nil, err
		}
		store, err := session.OpenSQLite(filepath.Join(opts.DataDir, "sessions.db"))
		if err != nil {
			return nil, nil, err
		}
		repo = store
		closer = store.Close
	}

	events := opts.Events
	if events == nil {
		events = telemetry.NewMemoryRepository()
	}

	svc := session.NewService(opts.Catalog, opts.Config.Game, repo, events, opts.Logger)
	gamesHandler := session.NewHandler(svc, opts.Logger)

	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "sistur",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	mux.HandleFunc("/api/games", gamesHandler.GamesRoot)
	mux.HandleFunc("/api/games/", gamesHandler.GamesSub)

	mux.HandleFunc("/api/catalog", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, http.StatusOK, opts.Catalog)
	})

	mux.HandleFunc("/api/config", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(opts.Config); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})

	handler := httpmw.Chain(
		mux,
		httpmw.WithAccessLog(opts.Logger),
		httpmw.WithRequestID,
		httpmw.WithRecover(opts.Logger),
	)
	return handler, closer, nil
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
