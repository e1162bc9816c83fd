package mines

import (
	"fmt"
	"strings"
)

type Action uint8

const (
	ActionCheck Action = iota + 1
	ActionFlag
	ActionPress
	ActionRelease
)

func (a Action) String() string {
	switch a {
	case ActionCheck:
		return "check"
	case ActionFlag:
		return "flag"
	case ActionPress:
		return "press"
	case ActionRelease:
		return "release"
	default:
		return "!"
	}
}

func ParseAction(s string) (Action, error) {
	switch strings.ToLower(s) {
	case "check", "open":
		return ActionCheck, nil
	case "flag":
		return ActionFlag, nil
	case "press":
		return ActionPress, nil
	case "release":
		return ActionRelease, nil
	}
	return 0, fmt.Errorf("unknown action %q", s)
}

// Apply routes a player intent at p to the matching operation.
func (g *Game) Apply(a Action, p Point) error {
	switch a {
	case ActionCheck:
		return g.Check(p)
	case ActionFlag:
		return g.Flag(p)
	case ActionPress:
		return g.Pressed(p)
	case ActionRelease:
		return g.Released(p)
	}
	return fmt.Errorf("unknown action %d", a)
}
