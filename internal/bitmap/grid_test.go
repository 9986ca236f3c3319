package bitmap_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-bitmap/internal/bitmap"
)

// colourAt returns the rendered colour at (row, col) or fails the test.
func colourAt(t *testing.T, g *bitmap.Grid, row, col int) string {
	t.Helper()
	cell, ok := g.Get(row, col)
	if !ok {
		t.Fatalf("no cell at (%d,%d)", row, col)
	}
	return cell.String()
}

func TestBuild(t *testing.T) {
	g := bitmap.Build(1, 1)
	if g.Width() != 1 || g.Height() != 1 {
		t.Errorf("expected 1x1 grid, got %dx%d", g.Width(), g.Height())
	}
	if got := colourAt(t, g, 1, 1); got != "O" {
		t.Errorf("expected default cell, got %q", got)
	}

	g = bitmap.Build(4, 5)
	counts := g.CountByColour()
	if counts[bitmap.DefaultColour] != 20 || len(counts) != 1 {
		t.Errorf("expected 20 default cells, got %v", counts)
	}
}

func TestGridGet(t *testing.T) {
	g := bitmap.Build(3, 2)

	testCases := []struct {
		row, col int
		ok       bool
	}{
		{1, 1, true},
		{2, 3, true},
		{0, 1, false},
		{1, 0, false},
		{3, 1, false},
		{1, 4, false},
		{-1, -1, false},
	}

	for _, tc := range testCases {
		_, ok := g.Get(tc.row, tc.col)
		if ok != tc.ok {
			t.Errorf("Get(%d,%d): expected ok=%v, got %v", tc.row, tc.col, tc.ok, ok)
		}
	}
}

func TestSetColour(t *testing.T) {
	g := bitmap.Build(5, 5)

	if err := g.SetColour(2, 3, "X"); err != nil {
		t.Fatalf("SetColour failed: %v", err)
	}
	if got := colourAt(t, g, 2, 3); got != "X" {
		t.Errorf("expected X at (2,3), got %q", got)
	}
	if got := colourAt(t, g, 3, 4); got != "O" {
		t.Errorf("expected O at (3,4), got %q", got)
	}
}

func TestSetColourInvalidColour(t *testing.T) {
	g := bitmap.Build(3, 3)
	before := g.Clone()

	err := g.SetColour(1, 1, "xx")
	if !errors.Is(err, bitmap.ErrInvalidColour) {
		t.Errorf("expected ErrInvalidColour, got %v", err)
	}
	if !g.Equal(before) {
		t.Error("grid should be unchanged after invalid colour")
	}
}

func TestMutationsOutOfBounds(t *testing.T) {
	// width 4, height 5
	g := bitmap.Build(4, 5)
	before := g.Clone()

	coords := []struct{ row, col int }{
		{0, 1}, {1, 0}, {6, 1}, {1, 5}, {6, 5}, {-3, 2}, {2, -3},
	}

	for _, c := range coords {
		if err := g.SetColour(c.row, c.col, "X"); !errors.Is(err, bitmap.ErrOutOfBounds) {
			t.Errorf("SetColour(%d,%d): expected ErrOutOfBounds, got %v", c.row, c.col, err)
		}
		if err := g.Fill(c.row, c.col, "X"); !errors.Is(err, bitmap.ErrOutOfBounds) {
			t.Errorf("Fill(%d,%d): expected ErrOutOfBounds, got %v", c.row, c.col, err)
		}
	}

	if err := g.SetVerticalRange(5, bitmap.R(1, 2), "X"); !errors.Is(err, bitmap.ErrOutOfBounds) {
		t.Errorf("SetVerticalRange on column 5: expected ErrOutOfBounds, got %v", err)
	}
	if err := g.SetHorizontalRange(bitmap.R(1, 2), 6, "X"); !errors.Is(err, bitmap.ErrOutOfBounds) {
		t.Errorf("SetHorizontalRange on row 6: expected ErrOutOfBounds, got %v", err)
	}

	if !g.Equal(before) {
		t.Errorf("grid changed after out-of-bounds operations:\n%s", g)
	}
}

func TestOutOfBoundsMessage(t *testing.T) {
	g := bitmap.Build(4, 5)
	err := g.SetColour(6, 2, "X")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "X(2), Y(6) should be between 1,1 and 4,5") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestSetVerticalRange(t *testing.T) {
	g := bitmap.Build(4, 5)

	if err := g.SetVerticalRange(1, bitmap.R(1, 2), "X"); err != nil {
		t.Fatalf("SetVerticalRange failed: %v", err)
	}

	expected := []struct {
		row, col int
		colour   string
	}{
		{1, 1, "X"},
		{2, 1, "X"},
		{3, 1, "O"},
		{1, 2, "O"},
	}
	for _, e := range expected {
		if got := colourAt(t, g, e.row, e.col); got != e.colour {
			t.Errorf("at (%d,%d): expected %q, got %q", e.row, e.col, e.colour, got)
		}
	}
}

func TestSetHorizontalRange(t *testing.T) {
	g := bitmap.Build(4, 5)

	if err := g.SetHorizontalRange(bitmap.R(1, 3), 3, "C"); err != nil {
		t.Fatalf("SetHorizontalRange failed: %v", err)
	}

	expected := []struct {
		row, col int
		colour   string
	}{
		{3, 1, "C"},
		{3, 2, "C"},
		{3, 3, "C"},
		{3, 4, "O"},
		{2, 1, "O"},
	}
	for _, e := range expected {
		if got := colourAt(t, g, e.row, e.col); got != e.colour {
			t.Errorf("at (%d,%d): expected %q, got %q", e.row, e.col, e.colour, got)
		}
	}
}

func TestRangeValidation(t *testing.T) {
	// width 4, height 5
	testCases := []struct {
		name string
		r    bitmap.Range
	}{
		{"descending", bitmap.R(3, 1)},
		{"single cell", bitmap.R(2, 2)},
		{"negative end", bitmap.R(3, -6)},
		{"zero start", bitmap.R(0, 2)},
		{"missing end", bitmap.Range{Start: 1}},
		{"missing start", bitmap.Range{End: 3}},
		{"zero range", bitmap.Range{}},
	}

	for _, tc := range testCases {
		g := bitmap.Build(4, 5)
		if err := g.SetVerticalRange(1, tc.r, "X"); !errors.Is(err, bitmap.ErrInvalidRange) {
			t.Errorf("%s vertical: expected ErrInvalidRange, got %v", tc.name, err)
		}
		if err := g.SetHorizontalRange(tc.r, 1, "X"); !errors.Is(err, bitmap.ErrInvalidRange) {
			t.Errorf("%s horizontal: expected ErrInvalidRange, got %v", tc.name, err)
		}
		if !g.Equal(bitmap.Build(4, 5)) {
			t.Errorf("%s: grid changed after rejected range", tc.name)
		}
	}

	g := bitmap.Build(4, 5)
	// end beyond the axis bound: rows go to 5, columns to 4
	if err := g.SetVerticalRange(1, bitmap.R(4, 6), "X"); !errors.Is(err, bitmap.ErrInvalidRange) {
		t.Errorf("vertical past height: expected ErrInvalidRange, got %v", err)
	}
	if err := g.SetHorizontalRange(bitmap.R(2, 5), 1, "X"); !errors.Is(err, bitmap.ErrInvalidRange) {
		t.Errorf("horizontal past width: expected ErrInvalidRange, got %v", err)
	}
	if err := g.SetVerticalRange(1, bitmap.R(1, 5), "X"); err != nil {
		t.Errorf("vertical full height should be valid, got %v", err)
	}
	if err := g.SetHorizontalRange(bitmap.R(1, 4), 1, "X"); err != nil {
		t.Errorf("horizontal full width should be valid, got %v", err)
	}
}

func TestRangeInvalidColourLeavesGrid(t *testing.T) {
	g := bitmap.Build(4, 5)
	if err := g.SetHorizontalRange(bitmap.R(1, 4), 1, "a"); !errors.Is(err, bitmap.ErrInvalidColour) {
		t.Errorf("expected ErrInvalidColour, got %v", err)
	}
	if !g.Equal(bitmap.Build(4, 5)) {
		t.Error("grid should be unchanged after invalid colour")
	}
}

func TestGridClone(t *testing.T) {
	g := bitmap.Build(3, 3)
	g.SetColour(1, 1, "R")

	clone := g.Clone()
	if !g.Equal(clone) {
		t.Error("clone should be equal to original")
	}

	g.SetColour(1, 1, "B")
	if got := colourAt(t, clone, 1, 1); got != "R" {
		t.Errorf("clone should not be affected by original modification, got %q", got)
	}
}
