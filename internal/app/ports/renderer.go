package ports

import (
	"context"

	"worldseed/internal/domain/terrain"
)

// RenderedMap is a world export in one concrete format.
type RenderedMap struct {
	ContentType string
	Data        []byte
}

// MapRenderer turns a world grid into an export format. Unknown
// formats fail with ErrUnsupportedFormat.
type MapRenderer interface {
	Render(ctx context.Context, format string, grid *terrain.Grid) (RenderedMap, error)
}
