package handlers

import (
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-engine/internal/config"
	"github.com/vancomm/minesweeper-engine/internal/mines"
)

var (
	testLogger   = slog.New(slog.NewTextHandler(io.Discard, nil))
	testDefaults = mines.GameParams{Width: 9, Height: 9, MineCount: 10, Slack: mines.DefaultSlack}
	testLimits   = config.GameLimits{MaxWidth: 30, MaxHeight: 16}
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func newTestSession(t *testing.T, params mines.GameParams) *gameSession {
	t.Helper()
	game, err := mines.NewGame(params, testRand())
	require.NoError(t, err)
	s, err := newGameSession("test", testLogger, game)
	require.NoError(t, err)
	return s
}

func TestParseGameParams(t *testing.T) {
	testCases := []struct {
		name  string
		query string
		want  mines.GameParams
	}{
		{"defaults", "", testDefaults},
		{
			"partial",
			"width=16&mine_count=40&slack_y=0",
			mines.GameParams{Width: 16, Height: 9, MineCount: 40, Slack: mines.Slack{X: 2, Y: 0}},
		},
		{
			"seed wins",
			"width=16&seed=30:16:99:3:3",
			mines.GameParams{Width: 30, Height: 16, MineCount: 99, Slack: mines.Slack{X: 3, Y: 3}},
		},
	}
	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			q, err := url.ParseQuery(test.query)
			require.NoError(t, err)
			params, err := ParseGameParams(q, testDefaults, testLimits)
			require.NoError(t, err)
			assert.Equal(t, test.want, *params)
		})
	}

	for _, query := range []string{
		"width=abc",
		"mine_count=100",
		"seed=1:2",
		"width=4294967296&height=4294967296&mine_count=0",
		"width=100000&height=100000&mine_count=0",
		"width=31",
		"seed=31:16:10:2:2",
		"width=5&height=5&mine_count=20",
	} {
		q, err := url.ParseQuery(query)
		require.NoError(t, err)
		_, err = ParseGameParams(q, testDefaults, testLimits)
		assert.Error(t, err, "query %q", query)
	}
}

func TestSessionHandle(t *testing.T) {
	s := newTestSession(t, mines.GameParams{Width: 2, Height: 1, MineCount: 0, Slack: mines.DefaultSlack})

	frame := s.handle("g\no 0 0\n")
	assert.Equal(t, mines.Won, frame.Status)
	assert.Equal(t, []TileUpdate{{0, 0, "0"}, {1, 0, "0"}}, frame.Updates)
	assert.Empty(t, frame.Errors)

	frame = s.handle("n")
	assert.Equal(t, mines.NotStarted, frame.Status)
	assert.ElementsMatch(t, []TileUpdate{{0, 0, ""}, {1, 0, ""}}, frame.Updates)
}

func TestSessionFlagsAndHints(t *testing.T) {
	s := newTestSession(t, mines.GameParams{Width: 5, Height: 5, MineCount: 1, Slack: mines.DefaultSlack})

	frame := s.handle("f 1 1")
	assert.Equal(t, []TileUpdate{{1, 1, mines.LabelFlag}}, frame.Updates)
	assert.Zero(t, frame.FlagsRemaining)

	frame = s.handle("p 0 0\nu 0 0")
	assert.Equal(t, []TileUpdate{{0, 0, mines.LabelHint}, {0, 0, mines.LabelEmpty}}, frame.Updates)
	assert.Equal(t, mines.NotStarted, frame.Status)
}

func TestSessionBadCommands(t *testing.T) {
	s := newTestSession(t, testDefaults)

	frame := s.handle("x 1 1\no 1\no a 1\no 9 9\nf 0 0")
	assert.Len(t, frame.Errors, 4)
	assert.Equal(t, []TileUpdate{{0, 0, mines.LabelFlag}}, frame.Updates, "good commands still run")
}

func TestConnectWS(t *testing.T) {
	ws, err := config.NewWebSocket()
	require.NoError(t, err)
	h := NewGameHandler(testLogger, ws, testDefaults, testLimits, testRand)
	server := httptest.NewServer(http.HandlerFunc(h.ConnectWS))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "?width=2&height=1&mine_count=0"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	var hello HelloFrame
	require.NoError(t, conn.ReadJSON(&hello))
	assert.NotEmpty(t, hello.SessionId)
	assert.Equal(t, 2, hello.Width)
	assert.Equal(t, 1, hello.Height)
	assert.Equal(t, "2:1:0:2:2", hello.Seed)

	type frameJSON struct {
		Status  string       `json:"status"`
		Updates []TileUpdate `json:"updates"`
		Errors  []string     `json:"errors"`
	}

	require.NoError(t, conn.WriteMessage(websocket.BinaryMessage, []byte("o 1 0")))
	var frame frameJSON
	require.NoError(t, conn.ReadJSON(&frame))
	assert.Equal(t, "NOT_STARTED", frame.Status)
	assert.Empty(t, frame.Updates)
	assert.Equal(t, []string{errBinaryMessage}, frame.Errors)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("o 1 0")))
	frame = frameJSON{}
	require.NoError(t, conn.ReadJSON(&frame))
	assert.Empty(t, frame.Errors)
	assert.Equal(t, "WON", frame.Status)
	assert.Equal(t, []TileUpdate{{1, 0, "0"}, {0, 0, "0"}}, frame.Updates)

	require.NoError(t, conn.WriteMessage(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
	))
}

func TestConnectWSBadParams(t *testing.T) {
	ws, err := config.NewWebSocket()
	require.NoError(t, err)
	h := NewGameHandler(testLogger, ws, testDefaults, testLimits, nil)

	for _, query := range []string{
		"mine_count=1000",
		"width=4294967296&height=4294967296&mine_count=0",
		"width=5&height=5&mine_count=20",
	} {
		rec := httptest.NewRecorder()
		h.ConnectWS(rec, httptest.NewRequest(http.MethodGet, "/game/connect?"+query, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "query %q", query)
		assert.Contains(t, rec.Body.String(), "invalid game params", "query %q", query)
	}
}

func TestDefaults(t *testing.T) {
	h := NewGameHandler(testLogger, nil, testDefaults, testLimits, nil)
	rec := httptest.NewRecorder()
	h.Defaults(rec, httptest.NewRequest(http.MethodGet, "/game/defaults", nil))

	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t,
		`{"width":9,"height":9,"mine_count":10,"slack_x":2,"slack_y":2,"seed":"9:9:10:2:2"}`,
		rec.Body.String(),
	)
}
