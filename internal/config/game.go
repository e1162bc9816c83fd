package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/vancomm/minesweeper-engine/internal/mines"
)

func lookupInt(key string, fallback int) (int, error) {
	s, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("unable to convert %s to int: %w", key, err)
	}
	return n, nil
}

// NewGameDefaults reads the params used when a client does not pick its own.
// Unset variables fall back to a 10x10 field with 25 mines.
func NewGameDefaults() (*mines.GameParams, error) {
	params := &mines.GameParams{
		Width: 10, Height: 10, MineCount: 25, Slack: mines.DefaultSlack,
	}
	fields := []struct {
		key string
		dst *int
	}{
		{"MINES_WIDTH", &params.Width},
		{"MINES_HEIGHT", &params.Height},
		{"MINES_COUNT", &params.MineCount},
		{"MINES_SLACK_X", &params.Slack.X},
		{"MINES_SLACK_Y", &params.Slack.Y},
	}
	for _, f := range fields {
		n, err := lookupInt(f.key, *f.dst)
		if err != nil {
			return nil, err
		}
		*f.dst = n
	}

	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid default game params: %w", err)
	}
	return params, nil
}

// GameLimits bounds the fields clients may ask for.
type GameLimits struct {
	MaxWidth  int
	MaxHeight int
}

// NewGameLimits reads MINES_MAX_WIDTH and MINES_MAX_HEIGHT, both 100 when
// unset and never above [mines.MaxSide].
func NewGameLimits() (*GameLimits, error) {
	limits := &GameLimits{MaxWidth: 100, MaxHeight: 100}
	fields := []struct {
		key string
		dst *int
	}{
		{"MINES_MAX_WIDTH", &limits.MaxWidth},
		{"MINES_MAX_HEIGHT", &limits.MaxHeight},
	}
	for _, f := range fields {
		n, err := lookupInt(f.key, *f.dst)
		if err != nil {
			return nil, err
		}
		if n <= 0 || n > mines.MaxSide {
			return nil, fmt.Errorf("%s must be in [1, %d], got %d", f.key, mines.MaxSide, n)
		}
		*f.dst = n
	}
	return limits, nil
}

func (l GameLimits) Check(p mines.GameParams) error {
	return p.ValidateWithin(l.MaxWidth, l.MaxHeight)
}
