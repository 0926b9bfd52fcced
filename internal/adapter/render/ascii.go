package render

import (
	"bytes"

	"worldseed/internal/domain/terrain"
)

// ASCII draws the world one glyph per cell, one line per row.
// Settlements win over features, features over infrastructure, then
// water and finally the bare biome.
func ASCII(grid *terrain.Grid) []byte {
	var buf bytes.Buffer
	buf.Grow((grid.Width() + 1) * grid.Height())
	cells := grid.Cells()
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			buf.WriteByte(glyphFor(cells[grid.Index(x, y)]))
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

func glyphFor(c terrain.Cell) byte {
	switch c.Settlement {
	case terrain.SettlementCity:
		return 'C'
	case terrain.SettlementTown:
		return 'T'
	case terrain.SettlementVillage:
		return 'V'
	case terrain.SettlementHamlet:
		return 'H'
	case terrain.SettlementFarmland:
		return 'F'
	}
	switch {
	case c.Features.Has(terrain.FeatureDungeon):
		return 'D'
	case c.Features.Has(terrain.FeatureRuins):
		return 'R'
	case c.Features.Has(terrain.FeatureShrine):
		return 'S'
	case c.Features.Has(terrain.FeatureTower):
		return 'I'
	case c.Features.Has(terrain.FeatureCave):
		return 'O'
	case c.Infrastructure.Has(terrain.InfraBridge):
		return '='
	case c.Infrastructure.Has(terrain.InfraRoad):
		return '+'
	case c.IsWater():
		return '~'
	}
	switch c.Biome {
	case terrain.BiomeGrassland:
		return '.'
	case terrain.BiomeForest:
		return '"'
	case terrain.BiomeDesert:
		return ':'
	case terrain.BiomeMountain:
		return '^'
	case terrain.BiomeTundra:
		return ','
	default:
		return '~'
	}
}
