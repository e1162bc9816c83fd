package mines

import (
	"fmt"
	"math/rand/v2"

	"github.com/gammazero/deque"
)

// RevealEngine owns the per-cell state of a game: the mine field, what the
// player sees of it and who gets told about changes.
type RevealEngine struct {
	field     *MineField
	vis       *VisibilityState
	observers *ObserverRegistry

	queue    deque.Deque[Point]
	enqueued []bool
}

func NewRevealEngine(params GameParams, r *rand.Rand) *RevealEngine {
	return &RevealEngine{
		field:     NewMineField(params, r),
		vis:       NewVisibilityState(params.Width, params.Height, params.MineCount),
		observers: NewObserverRegistry(params.Width, params.Height),
		enqueued:  make([]bool, params.NumTiles()),
	}
}

func (e *RevealEngine) Width() int { return e.field.Width() }
func (e *RevealEngine) Height() int { return e.field.Height() }
func (e *RevealEngine) MineCount() int { return e.field.MineCount() }
func (e *RevealEngine) NumTiles() int { return e.Width() * e.Height() }
func (e *RevealEngine) ShownCount() int { return e.vis.ShownCount() }
func (e *RevealEngine) FlaggedCount() int { return e.vis.FlaggedCount() }

func (e *RevealEngine) InBounds(p Point) bool {
	return p.In(e.Width(), e.Height())
}

func (e *RevealEngine) checkBounds(p Point) error {
	if !e.InBounds(p) {
		return fmt.Errorf("%s on %dx%d field: %w",
			p, e.Width(), e.Height(), ErrOutOfBounds)
	}
	return nil
}

func (e *RevealEngine) MineValueAt(p Point) (int, error) {
	if err := e.checkBounds(p); err != nil {
		return 0, err
	}
	return e.field.MineValueAt(p), nil
}

func (e *RevealEngine) VisibilityAt(p Point) (Visibility, error) {
	if err := e.checkBounds(p); err != nil {
		return Hidden, err
	}
	return e.vis.VisibilityAt(p), nil
}

func (e *RevealEngine) Register(o Observer) error {
	return e.observers.AddObserver(o)
}

func (e *RevealEngine) GenerateMines(start Point) error {
	if err := e.checkBounds(start); err != nil {
		return err
	}
	return e.field.GenerateMines(start)
}

func (e *RevealEngine) push(p Point) {
	i := p.Y*e.Width() + p.X
	if e.enqueued[i] {
		return
	}
	e.enqueued[i] = true
	e.queue.PushBack(p)
}

// UpdateVisibility reveals p. A mine is revealed alone; any other cell starts
// a breadth-first cascade through zero cells which stops at numbered cells.
// Observers are notified once per newly shown cell, in visiting order.
//
// panics [AssertionError]
func (e *RevealEngine) UpdateVisibility(p Point) error {
	if err := e.checkBounds(p); err != nil {
		return err
	}
	if e.vis.VisibilityAt(p) != Hidden {
		return nil
	}

	if e.field.IsMine(p) {
		e.vis.SetVisibilityAt(p, Shown)
		e.observers.UpdateObserver(p, LabelMine)
		return nil
	}

	clear(e.enqueued)
	e.queue.Clear()
	e.push(p)
	for e.queue.Len() > 0 {
		cur := e.queue.PopFront()
		v := e.field.MineValueAt(cur)
		if v == Mine {
			panic(AssertionError{"mine reached by cascade at " + cur.String()})
		}
		if v == 0 {
			for n := range cur.Neighbors(e.Width(), e.Height()) {
				if e.vis.VisibilityAt(n) == Hidden {
					e.push(n)
				}
			}
		}
		e.vis.SetVisibilityAt(cur, Shown)
		e.observers.UpdateObserver(cur, countLabel(v))
	}
	return nil
}

// HiddenNeighborsIfFlagConstraintsMet returns the hidden neighbours of p once
// at least as many neighbours are flagged as p has mined neighbours. Whether
// the flags are right is not checked.
func (e *RevealEngine) HiddenNeighborsIfFlagConstraintsMet(p Point) ([]Point, error) {
	if err := e.checkBounds(p); err != nil {
		return nil, err
	}
	v := e.field.MineValueAt(p)
	if v == Mine {
		return nil, nil
	}

	flagged := 0
	hidden := make([]Point, 0, 8)
	for n := range p.Neighbors(e.Width(), e.Height()) {
		switch e.vis.VisibilityAt(n) {
		case Flag:
			flagged++
		case Hidden:
			hidden = append(hidden, n)
		}
	}
	if flagged < v {
		return nil, nil
	}
	return hidden, nil
}

// HiddenNeighbors lists the hidden neighbours of p without any flag check.
func (e *RevealEngine) HiddenNeighbors(p Point) []Point {
	hidden := make([]Point, 0, 8)
	for n := range p.Neighbors(e.Width(), e.Height()) {
		if e.vis.VisibilityAt(n) == Hidden {
			hidden = append(hidden, n)
		}
	}
	return hidden
}

// ShowAllMines discloses every mine, flagged or not.
func (e *RevealEngine) ShowAllMines() {
	for _, p := range e.field.MineLocations() {
		e.vis.ForceShown(p)
		e.observers.UpdateObserver(p, LabelMine)
	}
}

// ToggleFlag flips the flag on p and reports the resulting tag.
func (e *RevealEngine) ToggleFlag(p Point) (Visibility, error) {
	if err := e.checkBounds(p); err != nil {
		return Hidden, err
	}
	return e.vis.ToggleFlag(p), nil
}

// Notify pushes a label to the observer at p without touching any state.
func (e *RevealEngine) Notify(p Point, label string) {
	e.observers.UpdateObserver(p, label)
}

func (e *RevealEngine) IsMine(p Point) bool {
	return e.InBounds(p) && e.field.IsMine(p)
}

func (e *RevealEngine) Reset() {
	e.field.Reset()
	e.vis.Reset()
	e.observers.Reset()
}
