package automata

import (
	"errors"
	"slices"
	"testing"
)

func TestNewBoardValidation(t *testing.T) {
	if _, err := NewBoard(0, 5, RuleLife); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("expected ErrInvalidDimensions, got %v", err)
	}
	if _, err := NewBoard(5, 5, Rule("maze")); !errors.Is(err, ErrUnknownRule) {
		t.Fatalf("expected ErrUnknownRule, got %v", err)
	}
}

func TestParseRule(t *testing.T) {
	if r, err := ParseRule("cavern"); err != nil || r != RuleCavern {
		t.Fatalf("ParseRule(cavern)=%v,%v", r, err)
	}
	if _, err := ParseRule("b3s23"); !errors.Is(err, ErrUnknownRule) {
		t.Fatalf("expected ErrUnknownRule, got %v", err)
	}
}

func TestLifeBlinkerOscillates(t *testing.T) {
	b, err := NewBoard(5, 5, RuleLife)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	b.Set(1, 2, true)
	b.Set(2, 2, true)
	b.Set(3, 2, true)

	b.Step()
	if b.Population() != 3 {
		t.Fatalf("blinker population changed: %d", b.Population())
	}
	for _, y := range []int{1, 2, 3} {
		if !b.Get(2, y) {
			t.Fatalf("expected vertical blinker arm at (2,%d)", y)
		}
	}

	b.Step()
	for _, x := range []int{1, 2, 3} {
		if !b.Get(x, 2) {
			t.Fatalf("expected horizontal blinker arm at (%d,2)", x)
		}
	}
}

func TestLifeUnderpopulationDies(t *testing.T) {
	b, err := NewBoard(5, 5, RuleLife)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	b.Set(2, 2, true)
	b.Step()
	if b.Population() != 0 {
		t.Fatalf("lone cell must die, population %d", b.Population())
	}
}

func TestCavernFillsLoneGap(t *testing.T) {
	b, err := NewBoard(6, 6, RuleCavern)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			b.Set(x, y, true)
		}
	}
	b.Set(3, 3, false)
	b.Step()
	if !b.Get(3, 3) {
		t.Fatal("a hole surrounded by wall should close")
	}
	if b.Population() != 36 {
		t.Fatalf("solid cavern should stay solid, population %d", b.Population())
	}
}

func TestCavernErodesLoneWall(t *testing.T) {
	b, err := NewBoard(6, 6, RuleCavern)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	b.Set(3, 3, true)
	b.Step()
	if b.Population() != 0 {
		t.Fatalf("isolated wall should erode, population %d", b.Population())
	}
}

func TestSeedRandomDeterministic(t *testing.T) {
	first, err := NewBoard(16, 16, RuleCavern)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	second, _ := NewBoard(16, 16, RuleCavern)
	first.SeedRandom(9, 0.45)
	second.SeedRandom(9, 0.45)
	if !slices.Equal(first.Cells(), second.Cells()) {
		t.Fatal("equal seeds must produce equal fills")
	}
	second.SeedRandom(10, 0.45)
	if slices.Equal(first.Cells(), second.Cells()) {
		t.Fatal("different seeds should produce different fills")
	}
}

func TestSeedDensityExtremes(t *testing.T) {
	b, err := NewBoard(8, 8, RuleLife)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	b.SeedRandom(1, 0)
	if b.Population() != 0 {
		t.Fatalf("density 0 should leave the board dead, got %d", b.Population())
	}
	b.SeedRandom(1, 1)
	if b.Population() != 64 {
		t.Fatalf("density 1 should fill the board, got %d", b.Population())
	}
}

func TestRowsRendering(t *testing.T) {
	b, err := NewBoard(3, 2, RuleLife)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	b.Set(0, 0, true)
	b.Set(2, 1, true)
	rows := b.Rows()
	if rows[0] != "#.." || rows[1] != "..#" {
		t.Fatalf("rows rendered wrong: %q", rows)
	}
}
