package terrain

import (
	"errors"
	"slices"
	"testing"
)

// testOptions is a valid baseline the pass tests tweak per scenario.
func testOptions() Options {
	opts := DefaultOptions()
	opts.Seed = 42
	return opts
}

func newTestPipeline(t *testing.T, opts Options) *Pipeline {
	t.Helper()
	p, err := NewPipeline(opts)
	if err != nil {
		t.Fatalf("NewPipeline: %v", err)
	}
	return p
}

func mustGrid(t *testing.T, w, h int, wrap bool) *Grid {
	t.Helper()
	g, err := NewGrid(w, h, wrap)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	return g
}

func TestGenerateDeterministic(t *testing.T) {
	opts := testOptions()
	first, err := Generate(32, 24, true, opts)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	second, err := Generate(32, 24, true, opts)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !slices.Equal(first.Cells(), second.Cells()) {
		t.Fatal("same seed and options must reproduce the world cell for cell")
	}
}

func TestGenerateSeedChangesWorld(t *testing.T) {
	opts := testOptions()
	first, err := Generate(32, 24, true, opts)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	opts.Seed = 43
	second, err := Generate(32, 24, true, opts)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if slices.Equal(first.Cells(), second.Cells()) {
		t.Fatal("different seeds should not produce identical worlds")
	}
}

func TestGenerateRejectsBadInputs(t *testing.T) {
	opts := testOptions()
	opts.SettlementDensity = 3
	if _, err := Generate(16, 16, true, opts); !errors.Is(err, ErrInvalidOptions) {
		t.Fatalf("expected ErrInvalidOptions, got %v", err)
	}
	if _, err := Generate(0, 16, true, testOptions()); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("expected ErrInvalidDimensions, got %v", err)
	}
}

func TestWaterFlowConsistency(t *testing.T) {
	g, err := Generate(40, 30, true, testOptions())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for i, c := range g.Cells() {
		if c.IsWater() != (c.WaterFlow != FlowNone) {
			t.Fatalf("cell %d: water level %d but flow %v", i, c.WaterLevel, c.WaterFlow)
		}
	}
}

func TestWaterCellsStayInert(t *testing.T) {
	g, err := Generate(40, 30, true, testOptions())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for i, c := range g.Cells() {
		if !c.IsWater() {
			continue
		}
		if c.Biome != BiomeOcean || c.Vegetation != VegetationNone || c.VegetationDensity != 0 ||
			c.SoilFertility != 0 || c.Minerals != 0 || c.MagicalEnergy != 0 ||
			c.Settlement != SettlementNone || c.PopulationDensity != 0 || c.Features != 0 {
			t.Fatalf("water cell %d accumulated land attributes: %+v", i, c)
		}
	}
}

func TestSettlementsAndRoadsLandRules(t *testing.T) {
	opts := testOptions()
	opts.SettlementDensity = 0.2
	g, err := Generate(48, 32, true, opts)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	settled := 0
	for i, c := range g.Cells() {
		if c.Settlement != SettlementNone {
			settled++
			if c.IsWater() {
				t.Fatalf("cell %d: settlement on water", i)
			}
			if c.Exploration != ExplorationSettled {
				t.Fatalf("cell %d: settled cell has status %v", i, c.Exploration)
			}
		}
		if c.Infrastructure.Has(InfraRoad) && c.IsWater() {
			t.Fatalf("cell %d: road on water", i)
		}
		if c.Infrastructure.Has(InfraBridge) && c.IsLand() {
			t.Fatalf("cell %d: bridge on land", i)
		}
		if c.Settlement == SettlementNone && c.Infrastructure.Has(InfraRoad|InfraBridge) &&
			c.Exploration < ExplorationMapped {
			t.Fatalf("cell %d: routed cell still %v", i, c.Exploration)
		}
	}
	if settled == 0 {
		t.Fatal("expected at least one settlement at density 0.2")
	}
}

func TestZeroSettlementDensityLeavesWilderness(t *testing.T) {
	opts := testOptions()
	opts.SettlementDensity = 0
	g, err := Generate(32, 32, true, opts)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for i, c := range g.Cells() {
		if c.Settlement != SettlementNone {
			t.Fatalf("cell %d settled despite zero density", i)
		}
		if c.Infrastructure.Has(InfraRoad) {
			t.Fatalf("cell %d has a road with no settlements", i)
		}
	}
}

func TestFullThresholdFloodsWorld(t *testing.T) {
	opts := testOptions()
	opts.WaterThreshold = 255
	g, err := Generate(24, 24, true, opts)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for i, c := range g.Cells() {
		if !c.IsWater() || c.WaterLevel < 1 {
			t.Fatalf("cell %d dry under threshold 255: %+v", i, c)
		}
		if c.Settlement != SettlementNone {
			t.Fatalf("cell %d settled on an all-water world", i)
		}
	}
}

func TestContinentsStyle(t *testing.T) {
	opts := testOptions()
	opts.Style = StyleContinents
	first, err := Generate(32, 32, true, opts)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	second, err := Generate(32, 32, true, opts)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !slices.Equal(first.Cells(), second.Cells()) {
		t.Fatal("continents style must be deterministic per seed")
	}
	classic, err := Generate(32, 32, true, testOptions())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if slices.Equal(first.Cells(), classic.Cells()) {
		t.Fatal("continents and classic styles should lay out different worlds")
	}
}

func TestTinyGrids(t *testing.T) {
	if _, err := Generate(1, 1, false, testOptions()); err != nil {
		t.Fatalf("1x1 clipped: %v", err)
	}
	if _, err := Generate(2, 2, true, testOptions()); err != nil {
		t.Fatalf("2x2 wrapped: %v", err)
	}
}
