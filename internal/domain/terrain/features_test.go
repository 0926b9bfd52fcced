package terrain

import "testing"

func featureTestPipeline(t *testing.T, density float64) *Pipeline {
	t.Helper()
	opts := testOptions()
	opts.FeatureDensity = density
	return newTestPipeline(t, opts)
}

func TestHighlandFeatures(t *testing.T) {
	p := featureTestPipeline(t, 1)
	g := mustGrid(t, 20, 20, true)
	cells := g.Cells()
	for i := range cells {
		cells[i].Elevation = 200
	}
	p.placeFeatures(g)

	dungeons, ruins := 0, 0
	for i, c := range cells {
		switch {
		case c.Features.Has(FeatureDungeon):
			dungeons++
			if c.DangerLevel != dungeonDangerBoost {
				t.Fatalf("dungeon cell %d danger %d", i, c.DangerLevel)
			}
		case c.Features.Has(FeatureRuins):
			ruins++
			if c.DangerLevel != ruinsDangerBoost {
				t.Fatalf("ruins cell %d danger %d", i, c.DangerLevel)
			}
		default:
			t.Fatalf("highland cell %d got no feature at density 1: %v", i, c.Features)
		}
	}
	if dungeons+ruins != len(cells) {
		t.Fatalf("every cell should carry one feature, got %d+%d", dungeons, ruins)
	}
	if dungeons <= ruins {
		t.Fatalf("dungeons should dominate at 70%%, got %d dungeons vs %d ruins", dungeons, ruins)
	}
}

func TestDenseForestFeatures(t *testing.T) {
	p := featureTestPipeline(t, 1)
	g := mustGrid(t, 16, 16, true)
	cells := g.Cells()
	for i := range cells {
		cells[i].Elevation = 120
		cells[i].VegetationDensity = 200
	}
	p.placeFeatures(g)
	for i, c := range cells {
		if !c.Features.Has(FeatureShrine) && !c.Features.Has(FeatureRuins) {
			t.Fatalf("forest cell %d got no feature: %v", i, c.Features)
		}
		if c.DangerLevel != 0 {
			t.Fatalf("forest features should not raise danger, cell %d has %d", i, c.DangerLevel)
		}
	}
}

func TestLeyShrines(t *testing.T) {
	p := featureTestPipeline(t, 1)
	g := mustGrid(t, 8, 8, true)
	cells := g.Cells()
	for i := range cells {
		cells[i].Elevation = 120
		cells[i].MagicalEnergy = 200
	}
	p.placeFeatures(g)
	for i, c := range cells {
		if !c.Features.Has(FeatureShrine) {
			t.Fatalf("high-magic cell %d has no shrine: %v", i, c.Features)
		}
		if c.DangerLevel != shrineDangerBoost {
			t.Fatalf("shrine cell %d danger %d", i, c.DangerLevel)
		}
	}
}

func TestZeroFeatureDensity(t *testing.T) {
	p := featureTestPipeline(t, 0)
	g := mustGrid(t, 16, 16, true)
	cells := g.Cells()
	for i := range cells {
		cells[i].Elevation = 200
	}
	p.placeFeatures(g)
	for i, c := range cells {
		if c.Features != 0 {
			t.Fatalf("cell %d has features at zero density: %v", i, c.Features)
		}
	}
}

func TestSettledCellsStayClear(t *testing.T) {
	p := featureTestPipeline(t, 1)
	g := mustGrid(t, 10, 10, true)
	cells := g.Cells()
	for i := range cells {
		cells[i].Elevation = 200
		if i%2 == 0 {
			cells[i].Settlement = SettlementFarmland
		}
	}
	p.placeFeatures(g)
	for i, c := range cells {
		if c.Settlement != SettlementNone && c.Features != 0 {
			t.Fatalf("settled cell %d received features: %v", i, c.Features)
		}
		if c.Settlement == SettlementNone && c.Features == 0 {
			t.Fatalf("wild highland cell %d skipped at density 1", i)
		}
	}
}

func TestQuietLowlandsGetNothing(t *testing.T) {
	p := featureTestPipeline(t, 1)
	g := mustGrid(t, 8, 8, true)
	cells := g.Cells()
	for i := range cells {
		cells[i].Elevation = 120
	}
	p.placeFeatures(g)
	for i, c := range cells {
		if c.Features != 0 {
			t.Fatalf("featureless terrain rule matched at cell %d: %v", i, c.Features)
		}
	}
}
