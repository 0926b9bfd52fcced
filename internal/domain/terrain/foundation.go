package terrain

import (
	"math"

	"github.com/aquilax/go-perlin"
)

// shapeFoundation builds the physical base of the world: raw
// elevation seeds, smoothing sweeps, then standing water wherever the
// land sits at or below the water threshold.
func (p *Pipeline) shapeFoundation(g *Grid) {
	switch p.opts.Style {
	case StyleContinents:
		p.seedElevationContinents(g)
	default:
		p.seedElevationClassic(g)
	}
	for i := 0; i < p.opts.ElevationIterations; i++ {
		p.smoothElevation(g)
	}
	p.markWater(g)
	p.classifyFlow(g)
}

// seedElevationClassic raises a uniformly random subset of cells.
// Unseeded cells keep elevation zero until smoothing pulls them up.
func (p *Pipeline) seedElevationClassic(g *Grid) {
	cells := g.Cells()
	for i := range cells {
		if p.rng.Float64() < p.opts.ElevationDensity {
			cells[i].Elevation = uint8(seedElevationMin + p.rng.IntN(seedElevationSpan))
		}
	}
}

// seedElevationContinents raises the cells where smooth 2D noise runs
// highest, so seeds clump into contiguous proto-continents instead of
// scattering. The noise offsets derive from the run's rng, keeping
// the whole layout a function of the seed.
func (p *Pipeline) seedElevationContinents(g *Grid) {
	noise := perlin.NewPerlin(2, 2, 3, int64(p.rng.Uint64()))
	offX := p.rng.Float64() * 1024
	offY := p.rng.Float64() * 1024
	cutoff := 1 - p.opts.ElevationDensity
	cells := g.Cells()
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			n := noise.Noise2D(offX+float64(x)*continentsFrequency, offY+float64(y)*continentsFrequency)
			norm := (n + 1) / 2
			if norm < 0 {
				norm = 0
			} else if norm > 1 {
				norm = 1
			}
			if norm >= cutoff {
				cells[g.Index(x, y)].Elevation = uint8(seedElevationMin + int(norm*float64(seedElevationSpan-1)))
			}
		}
	}
}

// smoothElevation runs one in-place smoothing sweep. Cells are visited
// in row-major order and each blends toward the mean of its current
// Moore neighborhood, so earlier updates within the sweep feed later
// ones. That asynchronous update is what settles the terrain quickly
// and it is part of the generator's contract: a given seed always
// yields the same relief.
func (p *Pipeline) smoothElevation(g *Grid) {
	cells := g.Cells()
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			sum, count := 0, 0
			g.eachNeighbor(x, y, func(idx int) {
				sum += int(cells[idx].Elevation)
				count++
			})
			if count == 0 {
				continue
			}
			cell := &cells[g.Index(x, y)]
			mean := float64(sum) / float64(count)
			cell.Elevation = clampByte(int(math.Round((float64(cell.Elevation) + mean) / 2)))
		}
	}
}

// markWater floods every cell at or below the water threshold. Depth
// grows with how far below the threshold the cell sits and is always
// at least one, so flooded cells are recognizable as water even right
// at the threshold. Flow starts as lake and is refined afterwards.
func (p *Pipeline) markWater(g *Grid) {
	cells := g.Cells()
	for i := range cells {
		if int(cells[i].Elevation) > p.opts.WaterThreshold {
			continue
		}
		depth := (p.opts.WaterThreshold - int(cells[i].Elevation)) * waterDepthPerUnit
		if depth < waterDepthMin {
			depth = waterDepthMin
		}
		cells[i].WaterLevel = clampByte(depth)
		cells[i].WaterFlow = FlowLake
	}
}

// classifyFlow turns lakes into streams or rivers based on how much
// water surrounds them. Isolated pockets stay lakes, thin channels
// become streams, wide bodies become rivers.
func (p *Pipeline) classifyFlow(g *Grid) {
	cells := g.Cells()
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			cell := &cells[g.Index(x, y)]
			if !cell.IsWater() {
				continue
			}
			wet := 0
			g.eachNeighbor(x, y, func(idx int) {
				if cells[idx].IsWater() {
					wet++
				}
			})
			switch {
			case wet >= riverNeighborMin:
				cell.WaterFlow = FlowRiver
			case wet >= 1:
				cell.WaterFlow = FlowStream
			}
		}
	}
}
