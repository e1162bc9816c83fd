package mines

import (
	"fmt"
	"strings"
)

// Slack is the per-axis half size of the mine-free rectangle around the first
// revealed cell. A negative component disables the safe zone on that axis.
type Slack struct {
	X, Y int
}

var DefaultSlack = Slack{X: 2, Y: 2}

func (s Slack) covers(start, p Point) bool {
	return absDiff(start.X, p.X) <= s.X && absDiff(start.Y, p.Y) <= s.Y
}

type GameParams struct {
	Width, Height, MineCount int
	Slack                    Slack
}

func (p GameParams) Unpack() (w int, h int, mc int, s Slack) {
	return p.Width, p.Height, p.MineCount, p.Slack
}

func (p GameParams) NumTiles() int {
	return p.Width * p.Height
}

// MaxSide caps both axes of every field.
const MaxSide = 1024

func (p GameParams) Validate() error {
	return p.ValidateWithin(MaxSide, MaxSide)
}

// ValidateWithin is Validate with a tighter bound on the field size. Bounds
// above MaxSide are clamped to it.
func (p GameParams) ValidateWithin(maxWidth, maxHeight int) error {
	maxWidth, maxHeight = min(maxWidth, MaxSide), min(maxHeight, MaxSide)
	switch {
	case p.Width <= 0 || p.Height <= 0:
		return fmt.Errorf("%w: field must be at least 1x1, got %dx%d",
			ErrInvalidParams, p.Width, p.Height)
	case p.Width > maxWidth || p.Height > maxHeight:
		return fmt.Errorf("%w: field must be at most %dx%d, got %dx%d",
			ErrInvalidParams, maxWidth, maxHeight, p.Width, p.Height)
	case p.MineCount < 0:
		return fmt.Errorf("%w: negative mine count %d", ErrInvalidParams, p.MineCount)
	case p.MineCount > p.NumTiles():
		return fmt.Errorf("%w: %d mines do not fit in %dx%d",
			ErrInvalidParams, p.MineCount, p.Width, p.Height)
	case p.MineCount > p.NumTiles()-p.minSafeZone():
		return fmt.Errorf("%w: %d mines do not fit around a %d cell safe zone",
			ErrInvalidParams, p.MineCount, p.minSafeZone())
	}
	return nil
}

// minSafeZone is the size of the smallest safe zone, the one around a corner.
func (p GameParams) minSafeZone() int {
	if p.Slack.X < 0 || p.Slack.Y < 0 {
		return 0
	}
	return min(p.Slack.X+1, p.Width) * min(p.Slack.Y+1, p.Height)
}

// Seed is the compact "w:h:m:sx:sy" form of the params.
func (p GameParams) Seed() string {
	return fmt.Sprintf("%d:%d:%d:%d:%d",
		p.Width, p.Height, p.MineCount, p.Slack.X, p.Slack.Y)
}

func ParseSeed(seed string) (*GameParams, error) {
	p := &GameParams{}
	sseed := strings.ReplaceAll(seed, ":", " ")
	n, err := fmt.Sscanf(
		sseed, "%d %d %d %d %d",
		&p.Width, &p.Height, &p.MineCount, &p.Slack.X, &p.Slack.Y,
	)
	if n != 5 || err != nil {
		return nil, fmt.Errorf(
			`invalid game params seed (sseed = "%s", n = %d, err = %w)`,
			sseed, n, err,
		)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
