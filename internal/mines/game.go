package mines

import (
	"fmt"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type GameStatus int8

const (
	NotStarted GameStatus = iota
	Ongoing
	Won
	Lost
)

func (s GameStatus) String() string {
	switch s {
	case NotStarted:
		return "NOT_STARTED"
	case Ongoing:
		return "ONGOING"
	case Won:
		return "WON"
	case Lost:
		return "LOST"
	default:
		return "!"
	}
}

// [GameStatus] implements [encoding.TextMarshaler]
func (s GameStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s GameStatus) Over() bool {
	return s == Won || s == Lost
}

// Game is the public face of the engine. It is not safe for concurrent use:
// every call runs to completion, notifications included, before returning.
type Game struct {
	engine *RevealEngine
	status GameStatus
	params GameParams
}

func NewGame(params GameParams, r *rand.Rand) (*Game, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	g := &Game{
		engine: NewRevealEngine(params, r),
		params: params,
	}
	return g, nil
}

func (g *Game) Width() int { return g.engine.Width() }
func (g *Game) Height() int { return g.engine.Height() }
func (g *Game) MineCount() int { return g.engine.MineCount() }
func (g *Game) Params() GameParams { return g.params }
func (g *Game) Status() GameStatus { return g.status }
func (g *Game) HasWon() bool { return g.status == Won }
func (g *Game) HasLost() bool { return g.status == Lost }
func (g *Game) Engine() *RevealEngine { return g.engine }

func (g *Game) FlagsRemaining() int {
	return g.MineCount() - g.engine.FlaggedCount()
}

func (g *Game) Register(o Observer) error {
	return g.engine.Register(o)
}

// setStatus logs finished games at Info, every other transition at Debug.
func (g *Game) setStatus(s GameStatus) {
	entry := Log.WithFields(logrus.Fields{
		"from": g.status, "to": s, "shown": g.engine.ShownCount(),
		"seed": g.params.Seed(),
	})
	if s.Over() {
		entry.Info("game over")
	} else {
		entry.Debug("game status changed")
	}
	g.status = s
}

// Check reveals p, or chords around p when it is already shown.
func (g *Game) Check(p Point) error {
	if g.status.Over() {
		return nil
	}
	vis, err := g.engine.VisibilityAt(p)
	if err != nil {
		return err
	}
	if vis == Flag {
		return nil
	}

	if g.status == NotStarted {
		if err := g.engine.GenerateMines(p); err != nil {
			return fmt.Errorf("unable to start game at %s: %w", p, err)
		}
		g.setStatus(Ongoing)
	}

	if vis != Shown {
		if err := g.engine.UpdateVisibility(p); err != nil {
			return err
		}
		g.evaluate(p)
		return nil
	}

	neighbors, err := g.engine.HiddenNeighborsIfFlagConstraintsMet(p)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		if err := g.engine.UpdateVisibility(n); err != nil {
			return err
		}
		g.evaluate(n)
		if g.status.Over() {
			break
		}
	}
	return nil
}

func (g *Game) evaluate(revealed Point) {
	if g.engine.IsMine(revealed) {
		g.setStatus(Lost)
		g.engine.ShowAllMines()
		return
	}
	if g.engine.ShownCount() == g.engine.NumTiles()-g.MineCount() {
		g.setStatus(Won)
	}
}

// Flag toggles the flag on p. Observers only hear about toggles that took.
func (g *Game) Flag(p Point) error {
	if g.status.Over() {
		return nil
	}
	before, err := g.engine.VisibilityAt(p)
	if err != nil {
		return err
	}
	after, err := g.engine.ToggleFlag(p)
	if err != nil {
		return err
	}
	if after == before {
		return nil
	}
	switch after {
	case Flag:
		g.engine.Notify(p, LabelFlag)
	case Hidden:
		g.engine.Notify(p, LabelEmpty)
	}
	return nil
}

func (g *Game) Reset() {
	g.engine.Reset()
	g.setStatus(NotStarted)
}

// hintTargets are the cells a press on p would light up.
func (g *Game) hintTargets(p Point) ([]Point, error) {
	vis, err := g.engine.VisibilityAt(p)
	if err != nil {
		return nil, err
	}
	if g.status.Over() {
		return nil, nil
	}
	switch vis {
	case Shown:
		return g.engine.HiddenNeighbors(p), nil
	case Hidden:
		return []Point{p}, nil
	}
	return nil, nil
}

// Pressed previews the cells a check on p would touch.
func (g *Game) Pressed(p Point) error {
	targets, err := g.hintTargets(p)
	for _, t := range targets {
		g.engine.Notify(t, LabelHint)
	}
	return err
}

// Released clears the preview set up by Pressed.
func (g *Game) Released(p Point) error {
	targets, err := g.hintTargets(p)
	for _, t := range targets {
		g.engine.Notify(t, LabelEmpty)
	}
	return err
}
