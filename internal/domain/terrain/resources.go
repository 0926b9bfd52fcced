package terrain

import "math"

var mineralKinds = [...]MineralSet{MineralIron, MineralCoal, MineralGems, MineralGold}

// distributeResources places mineral deposits in high terrain and lays
// a field of magical energy over the land. Water cells carry neither.
func (p *Pipeline) distributeResources(g *Grid) {
	cells := g.Cells()

	// Minerals concentrate in mountainous terrain. The chance roll is
	// only consumed for eligible cells, which keeps the random stream
	// stable across worlds that differ only in low-lying areas.
	for i := range cells {
		if cells[i].IsWater() || int(cells[i].Elevation) <= mineralMinElevation {
			continue
		}
		if p.rng.Float64() < mineralChance {
			cells[i].Minerals.Add(mineralKinds[p.rng.IntN(len(mineralKinds))])
		}
	}

	// Magical energy starts as pure noise on land.
	for i := range cells {
		if cells[i].IsWater() {
			continue
		}
		cells[i].MagicalEnergy = uint8(p.rng.IntN(256))
	}
	p.diffuseMagic(g)
}

// diffuseMagic runs one in-place sweep pulling each land cell's energy
// toward its neighborhood mean, then nudges it with bounded jitter so
// ley lines stay ragged instead of blurring out. Water neighbors count
// at zero; deep water drains magic from its shores.
func (p *Pipeline) diffuseMagic(g *Grid) {
	cells := g.Cells()
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			cell := &cells[g.Index(x, y)]
			if cell.IsWater() {
				continue
			}
			sum, count := 0, 0
			g.eachNeighbor(x, y, func(idx int) {
				sum += int(cells[idx].MagicalEnergy)
				count++
			})
			if count == 0 {
				continue
			}
			mean := float64(sum) / float64(count)
			blended := int(math.Round((float64(cell.MagicalEnergy) + mean) / 2))
			jitter := p.rng.IntN(2*magicJitterSpan+1) - magicJitterSpan
			cell.MagicalEnergy = clampByte(blended + jitter)
		}
	}
}
