package tui

import (
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-bitmap/internal/bitmap"
)

func TestNewPaletteSkipsInvalidKeys(t *testing.T) {
	p := NewPalette(nil, map[string]string{
		"A":  "9",
		"b":  "10",
		"CD": "11",
		"Z":  "#ff8800",
	})

	if len(p) != 2 {
		t.Fatalf("expected 2 styles, got %d", len(p))
	}
	for _, c := range []bitmap.Colour{'A', 'Z'} {
		if _, ok := p[c]; !ok {
			t.Errorf("expected a style for %s", c)
		}
	}
}

func TestRenderGridPlainText(t *testing.T) {
	g := bitmap.Build(4, 3)
	if err := g.SetHorizontalRange(bitmap.R(2, 4), 2, "A"); err != nil {
		t.Fatalf("SetHorizontalRange failed: %v", err)
	}
	if err := g.SetColour(3, 1, "Z"); err != nil {
		t.Fatalf("SetColour failed: %v", err)
	}

	// Without a colour profile the styled output matches the plain render
	r := lipgloss.NewRenderer(io.Discard)
	testCases := []Palette{
		nil,
		NewPalette(r, map[string]string{"A": "9", "O": "15"}),
	}

	for i, p := range testCases {
		got := RenderGrid(g, p)
		if got != g.String() {
			t.Errorf("palette %d: expected\n%s\ngot\n%s", i, g.String(), got)
		}
	}
}

func TestRenderGridEmpty(t *testing.T) {
	if got := RenderGrid(bitmap.Build(0, 0), nil); got != "" {
		t.Errorf("expected empty render, got %q", got)
	}
	if got := RenderGrid(bitmap.Build(0, 2), nil); got != "\n" {
		t.Errorf("expected one newline, got %q", got)
	}
}
