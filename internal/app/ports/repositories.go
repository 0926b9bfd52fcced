package ports

import (
	"context"
	"time"

	"worldseed/internal/domain/terrain"
)

// WorldStats are aggregate counts computed once at generation time.
type WorldStats struct {
	WaterCells      int `json:"water_cells"`
	SettlementCells int `json:"settlement_cells"`
	RoadCells       int `json:"road_cells"`
	FeatureCells    int `json:"feature_cells"`
}

// WorldRecord is the persisted form of a generated world, cells
// included.
type WorldRecord struct {
	ID        string
	Name      string
	Width     int
	Height    int
	Wrap      bool
	Seed      int64
	Options   terrain.Options
	Cells     []terrain.Cell
	Stats     WorldStats
	CreatedAt time.Time
}

// WorldSummary is the listing view of a world without its cell
// payload.
type WorldSummary struct {
	ID        string
	Name      string
	Width     int
	Height    int
	Wrap      bool
	Seed      int64
	Stats     WorldStats
	CreatedAt time.Time
}

type WorldRepository interface {
	Save(ctx context.Context, record WorldRecord) error
	GetByID(ctx context.Context, id string) (WorldRecord, error)
	List(ctx context.Context) ([]WorldSummary, error)
	Delete(ctx context.Context, id string) error
}
