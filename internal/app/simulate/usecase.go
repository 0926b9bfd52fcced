package simulate

import (
	"context"
	"errors"
	"fmt"

	"worldseed/internal/domain/automata"
)

var ErrInvalidRequest = errors.New("invalid simulation request")

const (
	maxBoardSide = 256
	maxSteps     = 1024
)

// UseCase runs a standalone cellular automaton to completion. The
// simulation is pure computation, so there is nothing to persist and
// no dependencies to inject.
type UseCase struct{}

func (u UseCase) Execute(_ context.Context, req Request) (Response, error) {
	if req.Width <= 0 || req.Height <= 0 || req.Width > maxBoardSide || req.Height > maxBoardSide {
		return Response{}, fmt.Errorf("%w: board %dx%d outside (0,%d]", ErrInvalidRequest, req.Width, req.Height, maxBoardSide)
	}
	if req.Steps < 0 || req.Steps > maxSteps {
		return Response{}, fmt.Errorf("%w: steps %d outside [0,%d]", ErrInvalidRequest, req.Steps, maxSteps)
	}
	if req.FillDensity < 0 || req.FillDensity > 1 {
		return Response{}, fmt.Errorf("%w: fill density %v outside [0,1]", ErrInvalidRequest, req.FillDensity)
	}
	rule, err := automata.ParseRule(req.Rule)
	if err != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	board, err := automata.NewBoard(req.Width, req.Height, rule)
	if err != nil {
		return Response{}, err
	}
	board.SeedRandom(req.Seed, req.FillDensity)
	board.Run(req.Steps)

	return Response{
		Width:  req.Width,
		Height: req.Height,
		Rule:   string(rule),
		Seed:   req.Seed,
		Steps:  req.Steps,
		Alive:  board.Population(),
		Rows:   board.Rows(),
	}, nil
}
