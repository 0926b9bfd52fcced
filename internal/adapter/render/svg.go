package render

import (
	"fmt"
	"strings"

	"worldseed/internal/domain/terrain"
)

const svgCellSize = 4

// SVG renders the world as one rect per cell.
func SVG(grid *terrain.Grid) []byte {
	var b strings.Builder
	w := grid.Width() * svgCellSize
	h := grid.Height() * svgCellSize
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`, w, h, w, h)
	b.WriteByte('\n')
	cells := grid.Cells()
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			c := cellColor(cells[grid.Index(x, y)])
			fmt.Fprintf(&b, `<rect x="%d" y="%d" width="%d" height="%d" fill="#%02x%02x%02x"/>`,
				x*svgCellSize, y*svgCellSize, svgCellSize, svgCellSize, c.R, c.G, c.B)
		}
		b.WriteByte('\n')
	}
	b.WriteString("</svg>\n")
	return []byte(b.String())
}
