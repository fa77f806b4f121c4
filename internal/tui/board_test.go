package tui

import (
	"strings"
	"testing"

	"github.com/vplotn/valentine2048/internal/engine"
)

func TestTileLabel(t *testing.T) {
	if got := tileLabel(0); got != "" {
		t.Errorf("tileLabel(0) = %q, want empty", got)
	}
	if got := tileLabel(2048); got != "2048" {
		t.Errorf("tileLabel(2048) = %q, want 2048", got)
	}
}

func TestTileStyleFallback(t *testing.T) {
	// Values beyond the palette reuse the 2048 style instead of panicking.
	beyond := tileStyle(4096)
	if beyond.GetBackground() != tileStyles[2048].GetBackground() {
		t.Error("tileStyle(4096) should reuse the 2048 style")
	}
}

func TestRenderBoardShowsValues(t *testing.T) {
	g := engine.Grid{
		{2, 0, 0, 0},
		{0, 64, 0, 0},
		{0, 0, 512, 0},
		{0, 0, 0, 0},
	}

	out := renderBoard(g)

	for _, want := range []string{"2", "64", "512"} {
		if !strings.Contains(out, want) {
			t.Errorf("board output missing tile value %q", want)
		}
	}
}

func TestRenderBoardHeight(t *testing.T) {
	out := renderBoard(engine.Grid{})

	// 4 rows of 3-line tiles plus top and bottom border.
	lines := strings.Split(out, "\n")
	want := engine.GridSize*tileHeight + 2
	if len(lines) != want {
		t.Errorf("board renders %d lines, want %d", len(lines), want)
	}
}
