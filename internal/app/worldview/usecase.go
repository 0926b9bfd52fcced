package worldview

import (
	"context"
	"errors"
	"fmt"

	"worldseed/internal/app/ports"
	"worldseed/internal/domain/terrain"
)

// ErrInvalidRequest is wrapped by every query validation failure.
var ErrInvalidRequest = errors.New("invalid world query")

const maxRegionRadius = 32

// UseCase serves stored worlds: listings, full payloads, single cells,
// and regional views.
type UseCase struct {
	Worlds ports.WorldRepository
}

func (u UseCase) List(ctx context.Context) (ListResponse, error) {
	summaries, err := u.Worlds.List(ctx)
	if err != nil {
		return ListResponse{}, fmt.Errorf("list worlds: %w", err)
	}
	out := ListResponse{Worlds: make([]Summary, 0, len(summaries))}
	for _, s := range summaries {
		out.Worlds = append(out.Worlds, newSummary(s))
	}
	return out, nil
}

func (u UseCase) Get(ctx context.Context, req WorldRequest) (WorldResponse, error) {
	record, err := u.load(ctx, req.ID)
	if err != nil {
		return WorldResponse{}, err
	}
	return newWorldResponse(record), nil
}

func (u UseCase) Delete(ctx context.Context, req WorldRequest) error {
	if req.ID == "" {
		return fmt.Errorf("%w: empty world id", ErrInvalidRequest)
	}
	return u.Worlds.Delete(ctx, req.ID)
}

// Cell returns one cell. Coordinates wrap on toroidal worlds; on
// clipped worlds out-of-range coordinates resolve to a neutral cell,
// matching grid semantics.
func (u UseCase) Cell(ctx context.Context, req CellRequest) (CellResponse, error) {
	record, err := u.load(ctx, req.ID)
	if err != nil {
		return CellResponse{}, err
	}
	grid, err := restore(record)
	if err != nil {
		return CellResponse{}, err
	}
	cell := grid.Get(req.X, req.Y)
	x, y, inBounds := grid.Normalize(req.X, req.Y)
	if !inBounds {
		x, y = req.X, req.Y
	}
	return CellResponse{
		WorldID:  record.ID,
		X:        x,
		Y:        y,
		InBounds: inBounds,
		Cell:     cell,
		Summary:  cell.Describe(),
	}, nil
}

// Region returns the square neighborhood of radius R around a center
// cell. Cells beyond a clipped edge are omitted.
func (u UseCase) Region(ctx context.Context, req RegionRequest) (RegionResponse, error) {
	if req.Radius < 0 || req.Radius > maxRegionRadius {
		return RegionResponse{}, fmt.Errorf("%w: radius %d outside [0,%d]", ErrInvalidRequest, req.Radius, maxRegionRadius)
	}
	record, err := u.load(ctx, req.ID)
	if err != nil {
		return RegionResponse{}, err
	}
	grid, err := restore(record)
	if err != nil {
		return RegionResponse{}, err
	}

	resp := RegionResponse{
		WorldID: record.ID,
		CenterX: req.X,
		CenterY: req.Y,
		Radius:  req.Radius,
	}
	for dy := -req.Radius; dy <= req.Radius; dy++ {
		for dx := -req.Radius; dx <= req.Radius; dx++ {
			x, y, ok := grid.Normalize(req.X+dx, req.Y+dy)
			if !ok {
				continue
			}
			resp.Cells = append(resp.Cells, RegionCell{X: x, Y: y, Cell: grid.Get(x, y)})
		}
	}
	return resp, nil
}

func (u UseCase) load(ctx context.Context, id string) (ports.WorldRecord, error) {
	if id == "" {
		return ports.WorldRecord{}, fmt.Errorf("%w: empty world id", ErrInvalidRequest)
	}
	record, err := u.Worlds.GetByID(ctx, id)
	if err != nil {
		return ports.WorldRecord{}, fmt.Errorf("world %s: %w", id, err)
	}
	return record, nil
}

func restore(record ports.WorldRecord) (*terrain.Grid, error) {
	grid, err := terrain.RestoreGrid(record.Width, record.Height, record.Wrap, record.Cells)
	if err != nil {
		return nil, fmt.Errorf("restore world %s: %w", record.ID, err)
	}
	return grid, nil
}
