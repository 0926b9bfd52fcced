package render

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"worldseed/internal/domain/terrain"
)

var csvHeader = []string{
	"x", "y",
	"elevation", "water_level", "water_flow",
	"temperature", "rainfall", "climate_zone",
	"biome_type", "vegetation_density", "vegetation_type", "soil_fertility",
	"mineral_deposits", "magical_energy",
	"settlement_type", "population_density", "infrastructure",
	"special_features", "danger_level", "exploration_status",
}

// CSV writes one row per cell in row-major order. Set-valued columns
// join their entries with '|'.
func CSV(grid *terrain.Grid) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	cells := grid.Cells()
	row := make([]string, len(csvHeader))
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			c := cells[grid.Index(x, y)]
			row[0] = strconv.Itoa(x)
			row[1] = strconv.Itoa(y)
			row[2] = strconv.Itoa(int(c.Elevation))
			row[3] = strconv.Itoa(int(c.WaterLevel))
			row[4] = c.WaterFlow.String()
			row[5] = strconv.Itoa(int(c.Temperature))
			row[6] = strconv.Itoa(int(c.Rainfall))
			row[7] = c.Climate.String()
			row[8] = c.Biome.String()
			row[9] = strconv.Itoa(int(c.VegetationDensity))
			row[10] = c.Vegetation.String()
			row[11] = strconv.Itoa(int(c.SoilFertility))
			row[12] = strings.Join(c.Minerals.List(), "|")
			row[13] = strconv.Itoa(int(c.MagicalEnergy))
			row[14] = c.Settlement.String()
			row[15] = strconv.Itoa(int(c.PopulationDensity))
			row[16] = strings.Join(c.Infrastructure.List(), "|")
			row[17] = strings.Join(c.Features.List(), "|")
			row[18] = strconv.Itoa(int(c.DangerLevel))
			row[19] = c.Exploration.String()
			if err := w.Write(row); err != nil {
				return nil, fmt.Errorf("write csv row (%d,%d): %w", x, y, err)
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
