package worldview

import (
	"time"

	"worldseed/internal/app/ports"
	"worldseed/internal/domain/terrain"
)

type WorldRequest struct {
	ID string
}

type CellRequest struct {
	ID   string
	X, Y int
}

type RegionRequest struct {
	ID     string
	X, Y   int
	Radius int
}

type Summary struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Width           int       `json:"width"`
	Height          int       `json:"height"`
	Wrap            bool      `json:"wrap"`
	Seed            int64     `json:"seed"`
	WaterCells      int       `json:"water_cells"`
	SettlementCells int       `json:"settlement_cells"`
	CreatedAt       time.Time `json:"created_at"`
}

type ListResponse struct {
	Worlds []Summary `json:"worlds"`
}

type WorldResponse struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Width     int            `json:"width"`
	Height    int            `json:"height"`
	Wrap      bool           `json:"wrap"`
	Seed      int64          `json:"seed"`
	Style     string         `json:"style"`
	CreatedAt time.Time      `json:"created_at"`
	Cells     []terrain.Cell `json:"cells"`
}

type CellResponse struct {
	WorldID  string       `json:"world_id"`
	X        int          `json:"x"`
	Y        int          `json:"y"`
	InBounds bool         `json:"in_bounds"`
	Cell     terrain.Cell `json:"cell"`
	Summary  string       `json:"summary"`
}

type RegionCell struct {
	X    int          `json:"x"`
	Y    int          `json:"y"`
	Cell terrain.Cell `json:"cell"`
}

type RegionResponse struct {
	WorldID string       `json:"world_id"`
	CenterX int          `json:"center_x"`
	CenterY int          `json:"center_y"`
	Radius  int          `json:"radius"`
	Cells   []RegionCell `json:"cells"`
}

func newSummary(s ports.WorldSummary) Summary {
	return Summary{
		ID:              s.ID,
		Name:            s.Name,
		Width:           s.Width,
		Height:          s.Height,
		Wrap:            s.Wrap,
		Seed:            s.Seed,
		WaterCells:      s.Stats.WaterCells,
		SettlementCells: s.Stats.SettlementCells,
		CreatedAt:       s.CreatedAt,
	}
}

func newWorldResponse(record ports.WorldRecord) WorldResponse {
	return WorldResponse{
		ID:        record.ID,
		Name:      record.Name,
		Width:     record.Width,
		Height:    record.Height,
		Wrap:      record.Wrap,
		Seed:      record.Seed,
		Style:     string(record.Options.Style),
		CreatedAt: record.CreatedAt,
		Cells:     record.Cells,
	}
}
