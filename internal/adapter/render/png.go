package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"worldseed/internal/domain/terrain"
)

// PNG renders the world at one pixel per cell.
func PNG(grid *terrain.Grid) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, grid.Width(), grid.Height()))
	cells := grid.Cells()
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			img.SetRGBA(x, y, cellColor(cells[grid.Index(x, y)]))
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
