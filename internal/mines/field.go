package mines

import (
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

// Mine is the cell value of a mined cell; any other value is the number of
// mined neighbours.
const Mine = -1

type MineField struct {
	grid      []int
	width     int
	height    int
	mineCount int
	slack     Slack
	generated bool
	r         *rand.Rand
}

func NewMineField(params GameParams, r *rand.Rand) *MineField {
	w, h, mc, s := params.Unpack()
	return &MineField{
		grid:      make([]int, w*h),
		width:     w,
		height:    h,
		mineCount: mc,
		slack:     s,
		r:         r,
	}
}

func (f *MineField) Width() int { return f.width }
func (f *MineField) Height() int { return f.height }
func (f *MineField) MineCount() int { return f.mineCount }
func (f *MineField) Generated() bool {
	return f.generated
}

func (f *MineField) index(p Point) int {
	return p.Y*f.width + p.X
}

func (f *MineField) MineValueAt(p Point) int {
	return f.grid[f.index(p)]
}

func (f *MineField) IsMine(p Point) bool {
	return f.MineValueAt(p) == Mine
}

// GenerateMines places the field's mines uniformly at random among the cells
// outside the safe zone around start. It may be called once per round.
func (f *MineField) GenerateMines(start Point) error {
	if f.generated {
		return ErrAlreadyGenerated
	}

	/*
	 * Write down the list of possible mine locations, then pick
	 * mineCount off the list at random.
	 */
	candidates := make([]Point, 0, len(f.grid))
	for y := range f.height {
		for x := range f.width {
			p := Point{x, y}
			if f.slack.covers(start, p) || f.IsMine(p) {
				continue
			}
			candidates = append(candidates, p)
		}
	}
	if len(candidates) < f.mineCount {
		return ErrNoRoom
	}

	k := len(candidates)
	for range f.mineCount {
		i := f.r.IntN(k)
		f.PlaceMine(candidates[i])
		k--
		candidates[i] = candidates[k]
	}
	f.generated = true

	Log.WithFields(logrus.Fields{
		"start": start, "mines": f.mineCount, "slack": f.slack,
	}).Debug("generated mine field")
	return nil
}

// PlaceMine mines p and bumps the count of its non-mine neighbours. Placing a
// mine twice is a no-op.
func (f *MineField) PlaceMine(p Point) {
	if f.IsMine(p) {
		return
	}
	f.grid[f.index(p)] = Mine
	for n := range p.Neighbors(f.width, f.height) {
		if i := f.index(n); f.grid[i] != Mine {
			f.grid[i]++
		}
	}
}

// MineLocations returns every mined point in row-major order.
func (f *MineField) MineLocations() []Point {
	locations := make([]Point, 0, f.mineCount)
	for i, v := range f.grid {
		if v == Mine {
			locations = append(locations, Point{i % f.width, i / f.width})
		}
	}
	return locations
}

func (f *MineField) Reset() {
	clear(f.grid)
	f.generated = false
}
