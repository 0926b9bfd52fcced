package terrain

import "testing"

func TestSeededElevationRange(t *testing.T) {
	opts := testOptions()
	opts.ElevationDensity = 1
	opts.ElevationIterations = 0
	opts.WaterThreshold = 0
	opts.SettlementDensity = 0
	opts.FeatureDensity = 0
	g, err := Generate(20, 20, true, opts)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for i, c := range g.Cells() {
		if c.Elevation < seedElevationMin {
			t.Fatalf("cell %d seeded below %d: %d", i, seedElevationMin, c.Elevation)
		}
		if c.IsWater() {
			t.Fatalf("cell %d flooded with threshold 0", i)
		}
	}
}

func TestSmoothingPullsPeakDown(t *testing.T) {
	p := newTestPipeline(t, testOptions())
	g := mustGrid(t, 3, 3, false)
	g.Set(1, 1, Cell{Elevation: 200})
	p.smoothElevation(g)
	center := g.Get(1, 1).Elevation
	if center >= 200 || center == 0 {
		t.Fatalf("peak should erode toward neighbors, got %d", center)
	}
	if g.Get(0, 0).Elevation == 0 {
		t.Fatal("smoothing should spread elevation into the corner")
	}
}

func TestSmoothingKeepsUniformTerrain(t *testing.T) {
	p := newTestPipeline(t, testOptions())
	g := mustGrid(t, 6, 6, true)
	cells := g.Cells()
	for i := range cells {
		cells[i].Elevation = 100
	}
	p.smoothElevation(g)
	for i, c := range cells {
		if c.Elevation != 100 {
			t.Fatalf("uniform terrain must be a fixed point, cell %d = %d", i, c.Elevation)
		}
	}
}

func TestMarkWaterDepths(t *testing.T) {
	opts := testOptions()
	opts.WaterThreshold = 90
	p := newTestPipeline(t, opts)
	g := mustGrid(t, 4, 1, false)
	cells := g.Cells()
	cells[0].Elevation = 50
	cells[1].Elevation = 90
	cells[2].Elevation = 91
	cells[3].Elevation = 200
	p.markWater(g)

	if got := cells[0].WaterLevel; got != 80 {
		t.Fatalf("depth at elevation 50 should be 80, got %d", got)
	}
	if got := cells[1].WaterLevel; got != 1 {
		t.Fatalf("cell right at the threshold must still read as water, got depth %d", got)
	}
	if cells[2].IsWater() || cells[3].IsWater() {
		t.Fatal("cells above the threshold must stay dry")
	}
	if cells[0].WaterFlow != FlowLake || cells[1].WaterFlow != FlowLake {
		t.Fatal("fresh water starts as lake before flow classification")
	}
}

func TestClassifyFlow(t *testing.T) {
	p := newTestPipeline(t, testOptions())
	g := mustGrid(t, 5, 5, false)
	cells := g.Cells()
	flood := func(x, y int) {
		cells[g.Index(x, y)].WaterLevel = 10
		cells[g.Index(x, y)].WaterFlow = FlowLake
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			flood(x, y)
		}
	}
	flood(4, 4)
	p.classifyFlow(g)

	if got := g.Get(1, 1).WaterFlow; got != FlowRiver {
		t.Fatalf("block center (8 wet neighbors) should be river, got %v", got)
	}
	if got := g.Get(1, 0).WaterFlow; got != FlowRiver {
		t.Fatalf("block edge (5 wet neighbors) should be river, got %v", got)
	}
	if got := g.Get(0, 0).WaterFlow; got != FlowStream {
		t.Fatalf("block corner (3 wet neighbors) should be stream, got %v", got)
	}
	if got := g.Get(4, 4).WaterFlow; got != FlowLake {
		t.Fatalf("isolated pocket should stay lake, got %v", got)
	}
	if got := g.Get(3, 3).WaterFlow; got != FlowNone {
		t.Fatalf("dry cell should keep no flow, got %v", got)
	}
}
