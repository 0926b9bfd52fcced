package render

import (
	"image/color"

	"worldseed/internal/domain/terrain"
)

var biomeColors = map[terrain.BiomeType]color.RGBA{
	terrain.BiomeOcean:     {R: 24, G: 62, B: 154, A: 255},
	terrain.BiomeGrassland: {R: 110, G: 168, B: 74, A: 255},
	terrain.BiomeForest:    {R: 44, G: 108, B: 50, A: 255},
	terrain.BiomeDesert:    {R: 214, G: 186, B: 120, A: 255},
	terrain.BiomeMountain:  {R: 132, G: 130, B: 128, A: 255},
	terrain.BiomeTundra:    {R: 196, G: 206, B: 214, A: 255},
}

var (
	settlementColor = color.RGBA{R: 178, G: 42, B: 36, A: 255}
	farmlandColor   = color.RGBA{R: 222, G: 188, B: 118, A: 255}
	featureColor    = color.RGBA{R: 128, G: 62, B: 156, A: 255}
	roadColor       = color.RGBA{R: 120, G: 100, B: 82, A: 255}
	bridgeColor     = color.RGBA{R: 96, G: 72, B: 48, A: 255}
)

// cellColor resolves the display color of a cell with the same
// precedence the ASCII glyphs use. Water darkens with depth and land
// brightens with elevation so relief stays readable.
func cellColor(c terrain.Cell) color.RGBA {
	switch {
	case c.Settlement >= terrain.SettlementHamlet:
		return settlementColor
	case c.Settlement == terrain.SettlementFarmland:
		return farmlandColor
	case c.Features != 0:
		return featureColor
	case c.Infrastructure.Has(terrain.InfraBridge):
		return bridgeColor
	case c.Infrastructure.Has(terrain.InfraRoad):
		return roadColor
	case c.IsWater():
		depth := int(c.WaterLevel)
		return color.RGBA{
			R: uint8(18 + 30*(255-depth)/255),
			G: uint8(52 + 70*(255-depth)/255),
			B: uint8(130 + 90*(255-depth)/255),
			A: 255,
		}
	default:
		base := biomeColors[c.Biome]
		return shade(base, c.Elevation)
	}
}

// shade scales a color between 70% and 100% brightness by elevation.
func shade(base color.RGBA, elevation uint8) color.RGBA {
	f := 70 + 30*int(elevation)/255
	return color.RGBA{
		R: uint8(int(base.R) * f / 100),
		G: uint8(int(base.G) * f / 100),
		B: uint8(int(base.B) * f / 100),
		A: 255,
	}
}
