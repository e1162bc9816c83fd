package mines

type Visibility int8

const (
	Hidden Visibility = iota
	Shown
	Flag
)

func (v Visibility) String() string {
	switch v {
	case Hidden:
		return "HIDDEN"
	case Shown:
		return "SHOWN"
	case Flag:
		return "FLAG"
	default:
		return "!"
	}
}

// VisibilityState tracks what the player can see of every cell. Invalid
// transitions are ignored rather than reported.
type VisibilityState struct {
	grid      []Visibility
	width     int
	height    int
	shown     int
	flagged   int
	flagLimit int
}

func NewVisibilityState(width, height, flagLimit int) *VisibilityState {
	return &VisibilityState{
		grid:      make([]Visibility, width*height),
		width:     width,
		height:    height,
		flagLimit: flagLimit,
	}
}

func (s *VisibilityState) ShownCount() int { return s.shown }
func (s *VisibilityState) FlaggedCount() int { return s.flagged }
func (s *VisibilityState) FlagLimit() int { return s.flagLimit }

func (s *VisibilityState) VisibilityAt(p Point) Visibility {
	return s.grid[p.Y*s.width+p.X]
}

// SetVisibilityAt applies HIDDEN->SHOWN, HIDDEN->FLAG (below the flag limit)
// and FLAG->HIDDEN. SHOWN is terminal.
func (s *VisibilityState) SetVisibilityAt(p Point, v Visibility) {
	i := p.Y*s.width + p.X
	switch prev := s.grid[i]; {
	case prev == Hidden && v == Shown:
		s.shown++
	case prev == Hidden && v == Flag:
		if s.flagged >= s.flagLimit {
			return
		}
		s.flagged++
	case prev == Flag && v == Hidden:
		s.flagged--
	default:
		return
	}
	s.grid[i] = v
}

// ToggleFlag flips HIDDEN and FLAG and reports the tag the cell ends up with.
func (s *VisibilityState) ToggleFlag(p Point) Visibility {
	switch s.VisibilityAt(p) {
	case Hidden:
		s.SetVisibilityAt(p, Flag)
	case Flag:
		s.SetVisibilityAt(p, Hidden)
	}
	return s.VisibilityAt(p)
}

// ForceShown reveals p whatever its current tag, keeping the counters exact.
func (s *VisibilityState) ForceShown(p Point) {
	i := p.Y*s.width + p.X
	switch s.grid[i] {
	case Shown:
		return
	case Flag:
		s.flagged--
	}
	s.grid[i] = Shown
	s.shown++
}

func (s *VisibilityState) Reset() {
	clear(s.grid)
	s.shown = 0
	s.flagged = 0
}
