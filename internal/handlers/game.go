package handlers

import (
	"hash/maphash"
	"log/slog"
	"math/rand/v2"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/vancomm/minesweeper-engine/internal/config"
	"github.com/vancomm/minesweeper-engine/internal/mines"
)

func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

type GameHandler struct {
	logger   *slog.Logger
	ws       *config.WebSocket
	defaults mines.GameParams
	limits   config.GameLimits
	newRand  func() *rand.Rand
}

func NewGameHandler(
	logger *slog.Logger,
	ws *config.WebSocket,
	defaults mines.GameParams,
	limits config.GameLimits,
	newRand func() *rand.Rand,
) *GameHandler {
	if newRand == nil {
		newRand = NewRand
	}
	handler := &GameHandler{
		logger:   logger,
		ws:       ws,
		defaults: defaults,
		limits:   limits,
		newRand:  newRand,
	}

	return handler
}

func (g GameHandler) Defaults(w http.ResponseWriter, r *http.Request) {
	SendJSONOrLog(w, g.logger, NewGameParamsDTO(g.defaults))
}

// ConnectWS starts a game for one client. Each connection owns its game and
// random source; nothing is shared between connections.
func (g GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	params, err := ParseGameParams(r.URL.Query(), g.defaults, g.limits)
	if err != nil {
		badRequest(w, g.logger, err)
		return
	}

	game, err := mines.NewGame(*params, g.newRand())
	if err != nil {
		badRequest(w, g.logger, err)
		return
	}

	id := uuid.NewString()
	logger := g.logger.With(slog.String("session", id))
	session, err := newGameSession(id, logger, game)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		logger.Error("unable to bind tiles", slog.Any("error", err))
		return
	}

	conn, err := g.ws.Upgrader.Upgrade(w, r, nil) // headers sent here
	if err != nil {
		logger.Error("unable to upgrade", slog.Any("error", err))
		return
	}
	defer conn.Close()
	conn.SetReadLimit(g.ws.ReadLimit)

	logger.Debug("established WS connection", slog.String("seed", params.Seed()))

	if err := session.run(r.Context(), conn); err != nil {
		if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
			logger.Debug("client left")
			return
		}
		logger.Warn("error in ws loop", slog.Any("error", err))
	}
}
