package terrain

import "math"

// buildInfrastructure wires the settled world together. Every
// settlement of hamlet rank or above lays a road to its nearest peer,
// with bridges where the line crosses water. Towns raise walls and
// waterside settlements build docks. Segments are drawn independently
// per settlement; when two settlements pick each other the shared road
// is simply drawn twice, which is idempotent.
func (p *Pipeline) buildInfrastructure(g *Grid) {
	cells := g.Cells()

	var sites []settlementSite
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			idx := g.Index(x, y)
			if cells[idx].Settlement >= SettlementHamlet {
				sites = append(sites, settlementSite{idx: idx, x: x, y: y})
			}
		}
	}

	if len(sites) >= 2 {
		for i, from := range sites {
			nearest := -1
			best := math.MaxFloat64
			for j, to := range sites {
				if j == i {
					continue
				}
				dx := float64(from.x - to.x)
				dy := float64(from.y - to.y)
				// Plain Euclidean distance even on wrapped grids;
				// roads do not cut across the seam. Strict less
				// keeps the earliest site on ties.
				if d := dx*dx + dy*dy; d < best {
					best = d
					nearest = j
				}
			}
			p.layRoad(g, from, sites[nearest])
		}
	}

	for _, site := range sites {
		cell := &cells[site.idx]
		if cell.Settlement >= SettlementTown {
			cell.Infrastructure.Add(InfraWall)
		}
		if g.hasWaterNeighbor(site.x, site.y) {
			cell.Infrastructure.Add(InfraDock)
		}
	}
}

// layRoad rasterizes the segment between two settlements with
// Bresenham's line algorithm. Open land on the path gets road, water
// gets bridged, and settled cells are passed through untouched.
func (p *Pipeline) layRoad(g *Grid, from, to settlementSite) {
	cells := g.Cells()
	x, y := from.x, from.y
	dx := abs(to.x - from.x)
	dy := -abs(to.y - from.y)
	sx, sy := 1, 1
	if from.x > to.x {
		sx = -1
	}
	if from.y > to.y {
		sy = -1
	}
	err := dx + dy
	for {
		cell := &cells[g.Index(x, y)]
		if cell.Settlement == SettlementNone {
			if cell.IsWater() {
				cell.Infrastructure.Add(InfraBridge)
			} else {
				cell.Infrastructure.Add(InfraRoad)
			}
			if cell.Exploration < ExplorationMapped {
				cell.Exploration = ExplorationMapped
			}
		}
		if x == to.x && y == to.y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
