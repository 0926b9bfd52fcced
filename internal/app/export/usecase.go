package export

import (
	"context"
	"errors"
	"fmt"

	"worldseed/internal/app/ports"
	"worldseed/internal/domain/terrain"
)

var ErrInvalidRequest = errors.New("invalid export request")

// Request names a stored world and the desired output format. An
// empty format falls through to the renderer's default.
type Request struct {
	WorldID string
	Format  string
}

// UseCase loads a world and hands it to the renderer.
type UseCase struct {
	Worlds   ports.WorldRepository
	Renderer ports.MapRenderer
}

func (u UseCase) Execute(ctx context.Context, req Request) (ports.RenderedMap, error) {
	if req.WorldID == "" {
		return ports.RenderedMap{}, fmt.Errorf("%w: empty world id", ErrInvalidRequest)
	}
	record, err := u.Worlds.GetByID(ctx, req.WorldID)
	if err != nil {
		return ports.RenderedMap{}, fmt.Errorf("world %s: %w", req.WorldID, err)
	}
	grid, err := terrain.RestoreGrid(record.Width, record.Height, record.Wrap, record.Cells)
	if err != nil {
		return ports.RenderedMap{}, fmt.Errorf("restore world %s: %w", record.ID, err)
	}
	return u.Renderer.Render(ctx, req.Format, grid)
}
