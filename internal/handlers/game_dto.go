package handlers

import (
	"github.com/gorilla/schema"

	"github.com/vancomm/minesweeper-engine/internal/config"
	"github.com/vancomm/minesweeper-engine/internal/mines"
)

type GameParamsDTO struct {
	Width     int    `schema:"width" json:"width"`
	Height    int    `schema:"height" json:"height"`
	MineCount int    `schema:"mine_count" json:"mine_count"`
	SlackX    int    `schema:"slack_x" json:"slack_x"`
	SlackY    int    `schema:"slack_y" json:"slack_y"`
	Seed      string `schema:"seed" json:"seed"`
}

func NewGameParamsDTO(p mines.GameParams) GameParamsDTO {
	return GameParamsDTO{
		Width:     p.Width,
		Height:    p.Height,
		MineCount: p.MineCount,
		SlackX:    p.Slack.X,
		SlackY:    p.Slack.Y,
		Seed:      p.Seed(),
	}
}

// ParseGameParams reads game params from a query, keys missing from src keep
// the values of defaults. A seed overrides every other key. The result must
// fit within limits.
func ParseGameParams(
	src map[string][]string,
	defaults mines.GameParams,
	limits config.GameLimits,
) (*mines.GameParams, error) {
	dto := NewGameParamsDTO(defaults)
	dto.Seed = ""

	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	if err := dec.Decode(&dto, src); err != nil {
		return nil, err
	}

	params := &mines.GameParams{
		Width:     dto.Width,
		Height:    dto.Height,
		MineCount: dto.MineCount,
		Slack:     mines.Slack{X: dto.SlackX, Y: dto.SlackY},
	}
	if dto.Seed != "" {
		p, err := mines.ParseSeed(dto.Seed)
		if err != nil {
			return nil, err
		}
		params = p
	}

	if err := limits.Check(*params); err != nil {
		return nil, err
	}
	return params, nil
}

type HelloFrame struct {
	SessionId string           `json:"session_id"`
	Width     int              `json:"width"`
	Height    int              `json:"height"`
	MineCount int              `json:"mine_count"`
	Seed      string           `json:"seed"`
	Status    mines.GameStatus `json:"status"`
}

type TileUpdate struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Label string `json:"label"`
}

type UpdateFrame struct {
	Status         mines.GameStatus `json:"status"`
	FlagsRemaining int              `json:"flags_remaining"`
	Updates        []TileUpdate     `json:"updates"`
	Errors         []string         `json:"errors,omitempty"`
}
