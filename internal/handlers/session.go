package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/vancomm/minesweeper-engine/internal/mines"
)

type wsCommand string

const (
	wsNoop    wsCommand = "g"
	wsOpen    wsCommand = "o"
	wsFlag    wsCommand = "f"
	wsPress   wsCommand = "p"
	wsRelease wsCommand = "u"
	wsReset   wsCommand = "n"
)

const errBinaryMessage = "only text messages are supported"

var wsActions = map[wsCommand]mines.Action{
	wsOpen:    mines.ActionCheck,
	wsFlag:    mines.ActionFlag,
	wsPress:   mines.ActionPress,
	wsRelease: mines.ActionRelease,
}

// gameSession is the presentation layer of one websocket client: it owns a
// game and collects the labels the game pushes to its tiles.
type gameSession struct {
	id      string
	logger  *slog.Logger
	game    *mines.Game
	updates []TileUpdate
}

// tile is the observer bound to one cell of the session's board.
type tile struct {
	p       mines.Point
	session *gameSession
}

func (t tile) Coordinates() mines.Point {
	return t.p
}

func (t tile) Notify(label string) {
	t.session.updates = append(t.session.updates, TileUpdate{
		X: t.p.X, Y: t.p.Y, Label: label,
	})
}

func newGameSession(id string, logger *slog.Logger, game *mines.Game) (*gameSession, error) {
	s := &gameSession{
		id:     id,
		logger: logger,
		game:   game,
	}
	for y := range game.Height() {
		for x := range game.Width() {
			if err := game.Register(tile{mines.Point{X: x, Y: y}, s}); err != nil {
				return nil, err
			}
		}
	}
	return s, nil
}

func (s *gameSession) hello() HelloFrame {
	return HelloFrame{
		SessionId: s.id,
		Width:     s.game.Width(),
		Height:    s.game.Height(),
		MineCount: s.game.MineCount(),
		Seed:      s.game.Params().Seed(),
		Status:    s.game.Status(),
	}
}

func (s *gameSession) execute(line string) error {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil
	}
	cmd, args := wsCommand(tokens[0]), tokens[1:]
	switch cmd {
	case wsNoop:
		return nil
	case wsReset:
		s.game.Reset()
		return nil
	}

	action, ok := wsActions[cmd]
	if !ok {
		return fmt.Errorf("unknown command %q", cmd)
	}
	x, y, err := parseXY(args)
	if err != nil {
		return err
	}
	return s.game.Apply(action, mines.Point{X: x, Y: y})
}

// handle runs every command of one client message and returns the frame that
// answers it.
func (s *gameSession) handle(message string) UpdateFrame {
	s.updates = make([]TileUpdate, 0)
	var errs []string

	before := s.game.Status()
	for _, line := range strings.Split(strings.TrimSpace(message), "\n") {
		if err := s.execute(strings.TrimSpace(line)); err != nil {
			s.logger.Debug("bad command", slog.String("command", line), slog.Any("error", err))
			errs = append(errs, err.Error())
		}
	}
	if after := s.game.Status(); after != before {
		s.logger.Info("game status changed",
			slog.String("from", before.String()), slog.String("to", after.String()))
	}

	return s.frame(errs)
}

func (s *gameSession) frame(errs []string) UpdateFrame {
	return UpdateFrame{
		Status:         s.game.Status(),
		FlagsRemaining: s.game.FlagsRemaining(),
		Updates:        s.updates,
		Errors:         errs,
	}
}

func (s *gameSession) run(ctx context.Context, conn *websocket.Conn) error {
	stop := context.AfterFunc(ctx, func() {
		conn.Close()
	})
	defer stop()

	if err := conn.WriteJSON(s.hello()); err != nil {
		return fmt.Errorf("unable to write hello: %w", err)
	}

	for {
		mt, buf, err := conn.ReadMessage()
		if err != nil {
			return err
		}

		var frame UpdateFrame
		if mt == websocket.TextMessage {
			frame = s.handle(string(buf))
		} else {
			s.logger.Debug("ignored non-text message", slog.Int("type", mt))
			s.updates = make([]TileUpdate, 0)
			frame = s.frame([]string{errBinaryMessage})
		}

		if err := conn.WriteJSON(frame); err != nil {
			return fmt.Errorf("unable to write json: %w", err)
		}
	}
}

func parseXY(args []string) (x int, y int, err error) {
	if len(args) != 2 {
		err = fmt.Errorf("invalid args")
		return
	}
	if x, err = strconv.Atoi(args[0]); err != nil {
		err = fmt.Errorf("first argument must be an int")
		return
	}
	if y, err = strconv.Atoi(args[1]); err != nil {
		err = fmt.Errorf("second argument must be an int")
		return
	}
	return
}
