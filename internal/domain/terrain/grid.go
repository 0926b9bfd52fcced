package terrain

import "errors"

var (
	// ErrInvalidDimensions is returned for non-positive grid sizes.
	ErrInvalidDimensions = errors.New("grid dimensions must be positive")
	// ErrCellCountMismatch is returned when restoring a grid from a
	// cell slice whose length does not match width*height.
	ErrCellCountMismatch = errors.New("cell count does not match grid dimensions")
)

// Grid is a dense 2D field of cells stored row-major. A wrapped grid
// behaves as a torus: coordinates are taken modulo the dimensions and
// every cell has exactly eight neighbors. An unwrapped grid clips at
// the edges instead.
type Grid struct {
	width  int
	height int
	wrap   bool
	cells  []Cell
}

// NewGrid allocates a grid of neutral cells.
func NewGrid(width, height int, wrap bool) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Grid{
		width:  width,
		height: height,
		wrap:   wrap,
		cells:  make([]Cell, width*height),
	}, nil
}

// RestoreGrid rebuilds a grid around an existing cell slice, for
// example one loaded from storage. The slice is used directly, not
// copied.
func RestoreGrid(width, height int, wrap bool, cells []Cell) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(cells) != width*height {
		return nil, ErrCellCountMismatch
	}
	return &Grid{width: width, height: height, wrap: wrap, cells: cells}, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }
func (g *Grid) Wrap() bool  { return g.wrap }

// Cells exposes the backing slice in row-major order. Mutations write
// through to the grid.
func (g *Grid) Cells() []Cell { return g.cells }

// Index maps in-range coordinates to the backing slice position.
func (g *Grid) Index(x, y int) int { return y*g.width + x }

// Normalize resolves raw coordinates to in-range ones. On a wrapped
// grid any coordinate resolves; otherwise ok is false outside the
// bounds.
func (g *Grid) Normalize(x, y int) (nx, ny int, ok bool) {
	if g.wrap {
		return mod(x, g.width), mod(y, g.height), true
	}
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return 0, 0, false
	}
	return x, y, true
}

// Get returns the cell at (x, y), or a neutral cell for out-of-range
// coordinates on an unwrapped grid.
func (g *Grid) Get(x, y int) Cell {
	nx, ny, ok := g.Normalize(x, y)
	if !ok {
		return Cell{}
	}
	return g.cells[g.Index(nx, ny)]
}

// Set stores the cell at (x, y). Out-of-range writes on an unwrapped
// grid are dropped.
func (g *Grid) Set(x, y int, c Cell) {
	nx, ny, ok := g.Normalize(x, y)
	if !ok {
		return
	}
	g.cells[g.Index(nx, ny)] = c
}

// at returns a pointer into the backing slice, or nil out of range.
func (g *Grid) at(x, y int) *Cell {
	nx, ny, ok := g.Normalize(x, y)
	if !ok {
		return nil
	}
	return &g.cells[g.Index(nx, ny)]
}

// Neighbors returns the Moore neighborhood of (x, y). A wrapped grid
// always yields eight entries; small wrapped grids may therefore
// visit the same cell more than once, which keeps neighbor averages
// consistent with the eight-slot neighborhood.
func (g *Grid) Neighbors(x, y int) []Cell {
	out := make([]Cell, 0, 8)
	g.eachNeighbor(x, y, func(idx int) {
		out = append(out, g.cells[idx])
	})
	return out
}

// eachNeighbor invokes fn with the backing-slice index of every Moore
// neighbor of (x, y), skipping clipped ones on unwrapped grids.
func (g *Grid) eachNeighbor(x, y int, fn func(idx int)) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny, ok := g.Normalize(x+dx, y+dy)
			if !ok {
				continue
			}
			fn(g.Index(nx, ny))
		}
	}
}

// hasWaterNeighbor reports whether any Moore neighbor of (x, y) is
// water.
func (g *Grid) hasWaterNeighbor(x, y int) bool {
	found := false
	g.eachNeighbor(x, y, func(idx int) {
		if g.cells[idx].IsWater() {
			found = true
		}
	})
	return found
}

// Clone deep-copies the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{width: g.width, height: g.height, wrap: g.wrap}
	out.cells = append([]Cell(nil), g.cells...)
	return out
}

func mod(v, n int) int {
	m := v % n
	if m < 0 {
		m += n
	}
	return m
}
