// Package terrain generates layered fantasy worlds on a 2D cell grid.
//
// A world is built by seven passes that always run in the same order:
// foundation (elevation and water), climate, biomes, resources,
// settlements, infrastructure, and special features. Each pass reads
// the layers written before it and never revisits earlier decisions,
// so the whole run is a single function of the grid shape and the
// Options, seed included.
package terrain

import (
	"math/rand/v2"
)

// Pipeline runs the generation passes over a grid. A Pipeline carries
// the run's random source and must not be reused across runs.
type Pipeline struct {
	opts Options
	rng  *rand.Rand
}

// NewPipeline validates opts and prepares a run.
func NewPipeline(opts Options) (*Pipeline, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.Style == "" {
		opts.Style = StyleClassic
	}
	return &Pipeline{
		opts: opts,
		rng:  rand.New(rand.NewPCG(uint64(opts.Seed), 0)),
	}, nil
}

// Generate builds a complete world in one call.
func Generate(width, height int, wrap bool, opts Options) (*Grid, error) {
	p, err := NewPipeline(opts)
	if err != nil {
		return nil, err
	}
	g, err := NewGrid(width, height, wrap)
	if err != nil {
		return nil, err
	}
	p.Run(g)
	return g, nil
}

// Run executes all passes on g in order. The grid is expected to be
// fresh; rerunning passes over an already generated grid compounds
// their effects.
func (p *Pipeline) Run(g *Grid) {
	p.shapeFoundation(g)
	p.applyClimate(g)
	p.assignBiomes(g)
	p.distributeResources(g)
	p.placeSettlements(g)
	p.buildInfrastructure(g)
	p.placeFeatures(g)
}
