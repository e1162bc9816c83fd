package mines

import (
	"fmt"
	"strings"
)

func fieldChar(v int) string {
	switch v {
	case Mine:
		return "m"
	case 0:
		return "."
	default:
		return countLabel(v)
	}
}

// FieldString draws the whole mine field, one row per line.
func (g *Game) FieldString() string {
	var b strings.Builder
	for y := range g.Height() {
		for x := range g.Width() {
			fmt.Fprint(&b, fieldChar(g.engine.field.MineValueAt(Point{x, y})))
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}

// PlayerString draws what the player sees: '#' hidden, 'F' flagged.
func (g *Game) PlayerString() string {
	var b strings.Builder
	for y := range g.Height() {
		for x := range g.Width() {
			p := Point{x, y}
			switch g.engine.vis.VisibilityAt(p) {
			case Hidden:
				fmt.Fprint(&b, "#")
			case Flag:
				fmt.Fprint(&b, "F")
			default:
				fmt.Fprint(&b, fieldChar(g.engine.field.MineValueAt(p)))
			}
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}
