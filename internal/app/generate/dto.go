package generate

import (
	"time"

	"worldseed/internal/app/ports"
	"worldseed/internal/domain/terrain"
)

// Request describes the world to generate. A zero Seed picks one from
// the clock; the effective seed is always reported back.
type Request struct {
	Name    string
	Width   int
	Height  int
	Wrap    bool
	Options terrain.Options
}

type Response struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Wrap      bool      `json:"wrap"`
	Seed      int64     `json:"seed"`
	Style     string    `json:"style"`
	Stats     Stats     `json:"stats"`
	CreatedAt time.Time `json:"created_at"`
}

type Stats struct {
	TotalCells      int `json:"total_cells"`
	WaterCells      int `json:"water_cells"`
	SettlementCells int `json:"settlement_cells"`
	RoadCells       int `json:"road_cells"`
	FeatureCells    int `json:"feature_cells"`
}

func newResponse(record ports.WorldRecord) Response {
	return Response{
		ID:     record.ID,
		Name:   record.Name,
		Width:  record.Width,
		Height: record.Height,
		Wrap:   record.Wrap,
		Seed:   record.Seed,
		Style:  string(record.Options.Style),
		Stats: Stats{
			TotalCells:      len(record.Cells),
			WaterCells:      record.Stats.WaterCells,
			SettlementCells: record.Stats.SettlementCells,
			RoadCells:       record.Stats.RoadCells,
			FeatureCells:    record.Stats.FeatureCells,
		},
		CreatedAt: record.CreatedAt,
	}
}
