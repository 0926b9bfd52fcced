// Package automata runs small toroidal cellular automata. Worlds use
// it for standalone simulations rather than terrain itself: a Conway
// life rule for activity maps and a cavern rule that smooths random
// fill into cave systems.
package automata

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
)

// Rule selects the update function of a board.
type Rule string

const (
	// RuleLife is Conway's B3/S23.
	RuleLife Rule = "life"
	// RuleCavern is the 4-5 cave rule: a cell becomes wall when at
	// least five of the nine cells in its block are walls.
	RuleCavern Rule = "cavern"
)

var (
	ErrInvalidDimensions = errors.New("board dimensions must be positive")
	ErrUnknownRule       = errors.New("unknown automaton rule")
)

// ParseRule maps a wire name to a Rule.
func ParseRule(s string) (Rule, error) {
	switch Rule(s) {
	case RuleLife:
		return RuleLife, nil
	case RuleCavern:
		return RuleCavern, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRule, s)
	}
}

// Board is a toroidal grid of live/dead cells evolved step by step.
// Unlike terrain smoothing, steps are synchronous: each generation is
// computed into a scratch buffer and swapped in.
type Board struct {
	width  int
	height int
	rule   Rule
	cells  []uint8
	next   []uint8
}

// NewBoard allocates a dead board.
func NewBoard(width, height int, rule Rule) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if _, err := ParseRule(string(rule)); err != nil {
		return nil, err
	}
	return &Board{
		width:  width,
		height: height,
		rule:   rule,
		cells:  make([]uint8, width*height),
		next:   make([]uint8, width*height),
	}, nil
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }
func (b *Board) Rule() Rule  { return b.rule }

// Cells exposes the current generation row-major.
func (b *Board) Cells() []uint8 { return b.cells }

// Population counts live cells.
func (b *Board) Population() int {
	n := 0
	for _, c := range b.cells {
		if c != 0 {
			n++
		}
	}
	return n
}

// Get reports whether (x, y) is alive, wrapping coordinates.
func (b *Board) Get(x, y int) bool {
	return b.cells[b.index(x, y)] != 0
}

// Set forces (x, y) alive or dead, wrapping coordinates.
func (b *Board) Set(x, y int, alive bool) {
	if alive {
		b.cells[b.index(x, y)] = 1
	} else {
		b.cells[b.index(x, y)] = 0
	}
}

// SeedRandom fills the board, making each cell alive with the given
// probability. The same seed and density always produce the same
// fill.
func (b *Board) SeedRandom(seed int64, density float64) {
	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	for i := range b.cells {
		if rng.Float64() < density {
			b.cells[i] = 1
		} else {
			b.cells[i] = 0
		}
	}
}

// Step advances one generation.
func (b *Board) Step() {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			alive := b.cells[b.index(x, y)] != 0
			n := b.liveNeighbors(x, y)
			var out uint8
			switch b.rule {
			case RuleCavern:
				count := n
				if alive {
					count++
				}
				if count >= 5 {
					out = 1
				}
			default:
				if n == 3 || (alive && n == 2) {
					out = 1
				}
			}
			b.next[b.index(x, y)] = out
		}
	}
	b.cells, b.next = b.next, b.cells
}

// Run advances steps generations.
func (b *Board) Run(steps int) {
	for i := 0; i < steps; i++ {
		b.Step()
	}
}

// Rows renders the board as strings, '#' for live cells and '.' for
// dead ones.
func (b *Board) Rows() []string {
	rows := make([]string, b.height)
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		sb.Reset()
		for x := 0; x < b.width; x++ {
			if b.cells[b.index(x, y)] != 0 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		rows[y] = sb.String()
	}
	return rows
}

func (b *Board) index(x, y int) int {
	x %= b.width
	if x < 0 {
		x += b.width
	}
	y %= b.height
	if y < 0 {
		y += b.height
	}
	return y*b.width + x
}

func (b *Board) liveNeighbors(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if b.cells[b.index(x+dx, y+dy)] != 0 {
				n++
			}
		}
	}
	return n
}
