// Package render exports generated worlds as ASCII art, CSV tables,
// JSON payloads, and PNG or SVG images.
package render

import (
	"context"
	"encoding/json"
	"fmt"

	"worldseed/internal/app/ports"
	"worldseed/internal/domain/terrain"
)

const (
	FormatASCII = "ascii"
	FormatCSV   = "csv"
	FormatJSON  = "json"
	FormatPNG   = "png"
	FormatSVG   = "svg"
)

// Renderer implements ports.MapRenderer over the built-in formats.
// The zero value is ready to use.
type Renderer struct{}

var _ ports.MapRenderer = Renderer{}

func NewRenderer() Renderer { return Renderer{} }

func (Renderer) Render(_ context.Context, format string, grid *terrain.Grid) (ports.RenderedMap, error) {
	switch format {
	case "", FormatASCII:
		return ports.RenderedMap{ContentType: "text/plain; charset=utf-8", Data: ASCII(grid)}, nil
	case FormatCSV:
		data, err := CSV(grid)
		if err != nil {
			return ports.RenderedMap{}, err
		}
		return ports.RenderedMap{ContentType: "text/csv", Data: data}, nil
	case FormatJSON:
		data, err := jsonExport(grid)
		if err != nil {
			return ports.RenderedMap{}, err
		}
		return ports.RenderedMap{ContentType: "application/json", Data: data}, nil
	case FormatPNG:
		data, err := PNG(grid)
		if err != nil {
			return ports.RenderedMap{}, err
		}
		return ports.RenderedMap{ContentType: "image/png", Data: data}, nil
	case FormatSVG:
		return ports.RenderedMap{ContentType: "image/svg+xml", Data: SVG(grid)}, nil
	default:
		return ports.RenderedMap{}, fmt.Errorf("%w: %q", ports.ErrUnsupportedFormat, format)
	}
}

func jsonExport(grid *terrain.Grid) ([]byte, error) {
	payload := struct {
		Width  int            `json:"width"`
		Height int            `json:"height"`
		Wrap   bool           `json:"wrap"`
		Cells  []terrain.Cell `json:"cells"`
	}{
		Width:  grid.Width(),
		Height: grid.Height(),
		Wrap:   grid.Wrap(),
		Cells:  grid.Cells(),
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode world json: %w", err)
	}
	return data, nil
}
