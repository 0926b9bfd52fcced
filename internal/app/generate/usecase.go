package generate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"worldseed/internal/app/ports"
	"worldseed/internal/domain/terrain"
)

// ErrInvalidRequest is wrapped by every request validation failure.
var ErrInvalidRequest = errors.New("invalid generation request")

const (
	maxCells   = 1_000_000
	maxNameLen = 120
)

// UseCase generates a world and persists it in one transaction.
type UseCase struct {
	TxManager ports.TxManager
	Worlds    ports.WorldRepository
	Metrics   ports.GenerationMetrics
	Now       func() time.Time
	NewID     func() string
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if err := validate(req); err != nil {
		u.Metrics.RecordFailure()
		return Response{}, err
	}

	now := u.now()
	opts := req.Options
	if opts.Seed == 0 {
		opts.Seed = now.UnixNano()
	}
	if opts.Style == "" {
		opts.Style = terrain.StyleClassic
	}

	grid, err := terrain.Generate(req.Width, req.Height, req.Wrap, opts)
	if err != nil {
		u.Metrics.RecordFailure()
		return Response{}, err
	}

	name := req.Name
	if name == "" {
		name = fmt.Sprintf("world-%d", opts.Seed)
	}
	record := ports.WorldRecord{
		ID:        u.newID(),
		Name:      name,
		Width:     req.Width,
		Height:    req.Height,
		Wrap:      req.Wrap,
		Seed:      opts.Seed,
		Options:   opts,
		Cells:     grid.Cells(),
		Stats:     statsFor(grid),
		CreatedAt: now,
	}

	err = u.TxManager.RunInTx(ctx, func(ctx context.Context) error {
		return u.Worlds.Save(ctx, record)
	})
	if err != nil {
		u.Metrics.RecordFailure()
		return Response{}, fmt.Errorf("save world %s: %w", record.ID, err)
	}

	u.Metrics.RecordSuccess(opts.Style, len(record.Cells), u.now().Sub(now))
	return newResponse(record), nil
}

func validate(req Request) error {
	if req.Width <= 0 || req.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d must be positive", ErrInvalidRequest, req.Width, req.Height)
	}
	if req.Width*req.Height > maxCells {
		return fmt.Errorf("%w: %d cells exceeds the %d cell limit", ErrInvalidRequest, req.Width*req.Height, maxCells)
	}
	if len(req.Name) > maxNameLen {
		return fmt.Errorf("%w: name longer than %d characters", ErrInvalidRequest, maxNameLen)
	}
	return nil
}

func statsFor(g *terrain.Grid) ports.WorldStats {
	var stats ports.WorldStats
	for _, c := range g.Cells() {
		if c.IsWater() {
			stats.WaterCells++
		}
		if c.Settlement != terrain.SettlementNone {
			stats.SettlementCells++
		}
		if c.Infrastructure.Has(terrain.InfraRoad | terrain.InfraBridge) {
			stats.RoadCells++
		}
		if c.Features != 0 {
			stats.FeatureCells++
		}
	}
	return stats
}

func (u UseCase) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now().UTC()
}

func (u UseCase) newID() string {
	if u.NewID != nil {
		return u.NewID()
	}
	return fmt.Sprintf("wld-%x", time.Now().UnixNano())
}
