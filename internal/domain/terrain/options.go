package terrain

import (
	"errors"
	"fmt"
)

// Style selects how the elevation seeds of a new world are laid out.
type Style string

const (
	// StyleClassic scatters elevation seeds uniformly at random.
	StyleClassic Style = "classic"
	// StyleContinents places seeds along smooth noise ridges so that
	// landmasses clump into continents.
	StyleContinents Style = "continents"
)

// ErrInvalidOptions is wrapped by every Options validation failure.
var ErrInvalidOptions = errors.New("invalid generation options")

// Options are the tunable inputs of a generation run. The zero value
// is not useful; start from DefaultOptions.
type Options struct {
	// ElevationDensity is the fraction of cells seeded with raised
	// elevation before smoothing, in [0,1].
	ElevationDensity float64
	// ElevationIterations is how many smoothing sweeps run after
	// seeding.
	ElevationIterations int
	// WaterThreshold floods every cell at or below this elevation,
	// in [0,255].
	WaterThreshold int
	// SettlementDensity is the fraction of eligible cells that
	// receive a settlement, in [0,1].
	SettlementDensity float64
	// FeatureDensity is the per-cell chance of a special feature,
	// in [0,1].
	FeatureDensity float64
	// Seed drives every random decision of the run. Equal seeds with
	// equal options produce identical worlds.
	Seed int64
	// Style selects the elevation seeding layout. Empty means
	// StyleClassic.
	Style Style
}

// DefaultOptions returns a balanced mid-size-world configuration.
func DefaultOptions() Options {
	return Options{
		ElevationDensity:    0.35,
		ElevationIterations: 3,
		WaterThreshold:      90,
		SettlementDensity:   0.04,
		FeatureDensity:      0.02,
		Style:               StyleClassic,
	}
}

// Validate rejects out-of-range fields before any generation work
// starts.
func (o Options) Validate() error {
	if o.ElevationDensity < 0 || o.ElevationDensity > 1 {
		return fmt.Errorf("%w: elevation density %v outside [0,1]", ErrInvalidOptions, o.ElevationDensity)
	}
	if o.ElevationIterations < 0 {
		return fmt.Errorf("%w: elevation iterations %d negative", ErrInvalidOptions, o.ElevationIterations)
	}
	if o.WaterThreshold < 0 || o.WaterThreshold > 255 {
		return fmt.Errorf("%w: water threshold %d outside [0,255]", ErrInvalidOptions, o.WaterThreshold)
	}
	if o.SettlementDensity < 0 || o.SettlementDensity > 1 {
		return fmt.Errorf("%w: settlement density %v outside [0,1]", ErrInvalidOptions, o.SettlementDensity)
	}
	if o.FeatureDensity < 0 || o.FeatureDensity > 1 {
		return fmt.Errorf("%w: feature density %v outside [0,1]", ErrInvalidOptions, o.FeatureDensity)
	}
	switch o.Style {
	case "", StyleClassic, StyleContinents:
	default:
		return fmt.Errorf("%w: unknown style %q", ErrInvalidOptions, o.Style)
	}
	return nil
}
