package serverapp

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pontesfelipe/sistur-sub000/internal/catalog"
	"github.com/pontesfelipe/sistur-sub000/internal/config"
	"github.com/pontesfelipe/sistur-sub000/internal/session"
	"github.com/pontesfelipe/sistur-sub000/internal/sim"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	handler, closer, err := NewHandler(Options{
		Config:   &config.Config{Game: config.Default()},
		Catalog:  catalog.Default(),
		Sessions: session.NewMemoryRepo(),
	})
	require.NoError(t, err)
	srv := httptest.NewServer(handler)
	t.Cleanup(func() {
		srv.Close()
		_ = closer()
	})
	return srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	return resp
}

func decodeState(t *testing.T, resp *http.Response) sim.State {
	t.Helper()
	defer resp.Body.Close()
	var s sim.State
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&s))
	return s
}

func createGame(t *testing.T, srv *httptest.Server) session.Session {
	t.Helper()
	resp := postJSON(t, srv.URL+"/api/games", map[string]any{"biome": "rainforest", "seed": 7})
	require.Equal(t, 201, resp.StatusCode)
	defer resp.Body.Close()
	var sess session.Session
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sess))
	return sess
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, 200, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))
}

func TestCreateAndFetchGame(t *testing.T) {
	srv := newTestServer(t)
	sess := createGame(t, srv)

	assert.Equal(t, "rainforest", sess.State.Biome)
	assert.Equal(t, int64(7), sess.Seed)

	resp, err := http.Get(srv.URL + "/api/games/" + sess.ID)
	require.NoError(t, err)
	state := decodeState(t, resp)
	assert.Equal(t, 1, state.Turn)
	assert.Len(t, state.Deck.Hand, 5)
}

func TestCommandRoutes(t *testing.T) {
	srv := newTestServer(t)
	sess := createGame(t, srv)
	base := srv.URL + "/api/games/" + sess.ID

	resp := postJSON(t, base+"/play", map[string]any{"index": 0})
	require.Equal(t, 200, resp.StatusCode)
	state := decodeState(t, resp)
	assert.Equal(t, 1, state.PlaysThisTurn)

	resp = postJSON(t, base+"/end-turn", nil)
	require.Equal(t, 200, resp.StatusCode)
	state = decodeState(t, resp)
	assert.Equal(t, 2, state.Turn)

	// Rejected player input still returns the snapshot, unchanged.
	resp = postJSON(t, base+"/play", map[string]any{"index": 42})
	require.Equal(t, 200, resp.StatusCode)
	state2 := decodeState(t, resp)
	assert.Equal(t, state.Turn, state2.Turn)
	assert.Equal(t, state.PlaysThisTurn, state2.PlaysThisTurn)

	resp = postJSON(t, base+"/reset", map[string]any{"biome": "coast"})
	require.Equal(t, 200, resp.StatusCode)
	state = decodeState(t, resp)
	assert.Equal(t, 1, state.Turn)
	assert.Equal(t, "coast", state.Biome)
}

func TestUnknownSessionAndRoutes(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/games/no-such-id")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, 404, resp.StatusCode)

	resp = postJSON(t, srv.URL+"/api/games/no-such-id/play", map[string]any{"index": 0})
	resp.Body.Close()
	assert.Equal(t, 404, resp.StatusCode)

	sess := createGame(t, srv)
	resp = postJSON(t, srv.URL+"/api/games/"+sess.ID+"/moonwalk", nil)
	resp.Body.Close()
	assert.Equal(t, 404, resp.StatusCode)
}

func TestStatsEndpoint(t *testing.T) {
	srv := newTestServer(t)
	sess := createGame(t, srv)
	base := srv.URL + "/api/games/" + sess.ID

	resp := postJSON(t, base+"/play", map[string]any{"index": 0})
	resp.Body.Close()
	resp = postJSON(t, base+"/end-turn", nil)
	resp.Body.Close()

	statsResp, err := http.Get(base + "/stats")
	require.NoError(t, err)
	defer statsResp.Body.Close()
	require.Equal(t, 200, statsResp.StatusCode)

	var stats struct {
		CardPlays  int `json:"card_plays"`
		TurnsEnded int `json:"turns_ended"`
	}
	require.NoError(t, json.NewDecoder(statsResp.Body).Decode(&stats))
	assert.Equal(t, 1, stats.CardPlays)
	assert.Equal(t, 1, stats.TurnsEnded)
}

func TestCatalogEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/catalog")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, 200, resp.StatusCode)

	var cat struct {
		Cards  []catalog.Card  `json:"cards"`
		Biomes []catalog.Biome `json:"biomes"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cat))
	assert.NotEmpty(t, cat.Cards)
	assert.NotEmpty(t, cat.Biomes)
}

func TestListAndDeleteGames(t *testing.T) {
	srv := newTestServer(t)
	sess := createGame(t, srv)

	resp, err := http.Get(srv.URL + "/api/games")
	require.NoError(t, err)
	var sessions []session.Session
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sessions))
	resp.Body.Close()
	assert.Len(t, sessions, 1)

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/api/games/"+sess.ID, nil)
	require.NoError(t, err)
	delResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	delResp.Body.Close()
	assert.Equal(t, 200, delResp.StatusCode)

	getResp, err := http.Get(srv.URL + "/api/games/" + sess.ID)
	require.NoError(t, err)
	getResp.Body.Close()
	assert.Equal(t, 404, getResp.StatusCode)
}

func TestWebSocketCommandLoop(t *testing.T) {
	srv := newTestServer(t)
	sess := createGame(t, srv)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/games/" + sess.ID + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	defer conn.Close()

	// First frame is the current snapshot.
	var state sim.State
	require.NoError(t, conn.ReadJSON(&state))
	assert.Equal(t, 1, state.Turn)

	require.NoError(t, conn.WriteJSON(session.Command{Action: session.ActionEndTurn}))
	require.NoError(t, conn.ReadJSON(&state))
	assert.Equal(t, 2, state.Turn)

	// Unknown actions come back as error frames, not closed sockets.
	require.NoError(t, conn.WriteJSON(session.Command{Action: "moonwalk"}))
	var wsErr struct {
		Error string `json:"error"`
	}
	require.NoError(t, conn.ReadJSON(&wsErr))
	assert.NotEmpty(t, wsErr.Error)
}
