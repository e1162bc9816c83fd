package mines

import (
	"fmt"
	"iter"
)

type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

func (p Point) In(width, height int) bool {
	return 0 <= p.X && p.X < width && 0 <= p.Y && p.Y < height
}

// offsets of the Moore neighbourhood; the order is part of the notification
// contract for cascades.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Neighbors yields the up to eight in-bounds neighbours of p.
func (p Point) Neighbors(width, height int) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for _, d := range neighborOffsets {
			n := Point{p.X + d[0], p.Y + d[1]}
			if !n.In(width, height) {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
