package terrain

// placeFeatures scatters points of interest over wild land. Settled
// cells never receive features; adventure sites belong to the
// wilderness. Each eligible cell rolls once against the feature
// density, then the terrain decides what appears. A cell matching no
// terrain rule wastes its roll and stays empty.
func (p *Pipeline) placeFeatures(g *Grid) {
	cells := g.Cells()
	for i := range cells {
		cell := &cells[i]
		if cell.IsWater() || cell.Settlement != SettlementNone {
			continue
		}
		if p.rng.Float64() >= p.opts.FeatureDensity {
			continue
		}
		switch {
		case int(cell.Elevation) > dungeonMinElevation:
			if p.rng.Float64() < dungeonChance {
				cell.Features.Add(FeatureDungeon)
				cell.DangerLevel = clampByte(int(cell.DangerLevel) + dungeonDangerBoost)
			} else {
				cell.Features.Add(FeatureRuins)
				cell.DangerLevel = clampByte(int(cell.DangerLevel) + ruinsDangerBoost)
			}
		case int(cell.VegetationDensity) > denseForestVegetation:
			if p.rng.Float64() < shrineChance {
				cell.Features.Add(FeatureShrine)
			} else {
				cell.Features.Add(FeatureRuins)
			}
		case int(cell.MagicalEnergy) > shrineMinMagic:
			cell.Features.Add(FeatureShrine)
			cell.DangerLevel = clampByte(int(cell.DangerLevel) + shrineDangerBoost)
		}
	}
}
