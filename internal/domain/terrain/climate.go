package terrain

// applyClimate derives temperature, rainfall, and the climate zone of
// every cell from elevation and water adjacency. Water cells get
// climate too; coastal weather is part of the world's character.
func (p *Pipeline) applyClimate(g *Grid) {
	cells := g.Cells()
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			cell := &cells[g.Index(x, y)]
			nearWater := g.hasWaterNeighbor(x, y)

			temp := temperatureBase - int(cell.Elevation)/2
			if nearWater {
				temp += temperatureWaterBonus
			}
			cell.Temperature = clampByte(temp)

			rain := rainfallBase
			if nearWater {
				rain += rainfallWaterBonus
			}
			elev := int(cell.Elevation)
			if elev > rainfallHillMinElev && elev < rainfallHillMaxElev {
				rain += rainfallHillBonus
			}
			if elev > rainfallPeakElev {
				rain -= rainfallPeakPenalty
			}
			cell.Rainfall = clampByte(rain)

			cell.Climate = classifyClimate(cell.Temperature, cell.Rainfall)
		}
	}
}

// classifyClimate picks the zone from temperature and rainfall. Cold
// wins over everything, then dryness, then heat.
func classifyClimate(temp, rain uint8) ClimateZone {
	switch {
	case temp < arcticMaxTemperature:
		return ClimateArctic
	case temp > desertMinTemperature && rain < desertMaxRainfall:
		return ClimateDesert
	case temp > tropicalMinTemp:
		return ClimateTropical
	default:
		return ClimateTemperate
	}
}
