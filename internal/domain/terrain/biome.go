package terrain

// assignBiomes settles the living surface of every land cell: biome,
// vegetation cover, and soil fertility. Water cells are left alone
// and keep their ocean default.
func (p *Pipeline) assignBiomes(g *Grid) {
	cells := g.Cells()
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			cell := &cells[g.Index(x, y)]
			if cell.IsWater() {
				continue
			}
			cell.Biome = biomeFor(cell.Climate, cell.Elevation)
			cell.VegetationDensity = vegetationDensityFor(cell.Biome, cell.Rainfall, cell.Temperature)
			cell.Vegetation = vegetationFor(cell.Biome, cell.Climate)
			cell.SoilFertility = fertilityFor(cell.Biome, cell.Elevation, g.hasWaterNeighbor(x, y))
		}
	}
}

// biomeFor maps climate and elevation to a land biome. High peaks are
// mountains regardless of climate.
func biomeFor(zone ClimateZone, elevation uint8) BiomeType {
	if int(elevation) > mountainMinElevation {
		return BiomeMountain
	}
	switch zone {
	case ClimateArctic:
		return BiomeTundra
	case ClimateDesert:
		return BiomeDesert
	case ClimateTropical:
		if int(elevation) < tropicalLowlandMaxElev {
			return BiomeGrassland
		}
		return BiomeForest
	default:
		if int(elevation) > temperateForestMinElev {
			return BiomeForest
		}
		return BiomeGrassland
	}
}

// Per-biome vegetation density baselines, indexed by BiomeType.
var vegetationBase = [...]int{
	BiomeOcean:     0,
	BiomeGrassland: 120,
	BiomeForest:    180,
	BiomeDesert:    30,
	BiomeMountain:  60,
	BiomeTundra:    40,
}

// vegetationDensityFor shifts the biome baseline by how wet and warm
// the cell is.
func vegetationDensityFor(biome BiomeType, rain, temp uint8) uint8 {
	base := vegetationBase[biome]
	base += (int(rain) - rainfallBase) / 2
	base += (int(temp) - 150) / 4
	return clampByte(base)
}

// vegetationFor names the dominant plant cover of a biome, with the
// climate zone deciding what kind of forest grows.
func vegetationFor(biome BiomeType, zone ClimateZone) VegetationType {
	switch biome {
	case BiomeGrassland, BiomeTundra:
		return VegetationGrass
	case BiomeDesert:
		return VegetationShrubs
	case BiomeForest:
		switch zone {
		case ClimateTropical:
			return VegetationTropical
		case ClimateArctic:
			return VegetationConiferous
		case ClimateDesert:
			return VegetationShrubs
		default:
			return VegetationDeciduous
		}
	case BiomeMountain:
		if zone == ClimateDesert {
			return VegetationNone
		}
		return VegetationConiferous
	default:
		return VegetationNone
	}
}

// Per-biome soil fertility baselines, indexed by BiomeType.
var fertilityBase = [...]int{
	BiomeOcean:     0,
	BiomeGrassland: 150,
	BiomeForest:    120,
	BiomeDesert:    30,
	BiomeMountain:  50,
	BiomeTundra:    40,
}

// fertilityFor rewards river valleys: water nearby and moderate
// elevation both push fertility up from the biome baseline.
func fertilityFor(biome BiomeType, elevation uint8, nearWater bool) uint8 {
	base := fertilityBase[biome]
	if nearWater {
		base += fertilityWaterBonus
	}
	if int(elevation) >= fertilityValleyMinElev && int(elevation) <= fertilityValleyMaxElev {
		base += fertilityValleyBonus
	}
	return clampByte(base)
}
