package tui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/vplotn/valentine2048/internal/engine"
)

const (
	tileWidth  = 7
	tileHeight = 3
)

// tileStyles maps tile values to their cell styles. The palette walks from
// soft pink to deep red as values grow, one class per value like the
// original's v2..v2048 set.
var tileStyles = map[int]lipgloss.Style{
	0:    newTileStyle("252", "236"),
	2:    newTileStyle("235", "224"),
	4:    newTileStyle("235", "217"),
	8:    newTileStyle("231", "211"),
	16:   newTileStyle("231", "205"),
	32:   newTileStyle("231", "204"),
	64:   newTileStyle("231", "198"),
	128:  newTileStyle("231", "197"),
	256:  newTileStyle("231", "161"),
	512:  newTileStyle("231", "125"),
	1024: newTileStyle("231", "89"),
	2048: newTileStyle("231", "52"),
}

func newTileStyle(fg, bg string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg)).
		Width(tileWidth).
		Height(tileHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Bold(true)
}

var boardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("204")).
	Padding(0, 1)

// tileStyle returns the style for a tile value. Values beyond 2048 reuse the
// 2048 style.
func tileStyle(value int) lipgloss.Style {
	if s, ok := tileStyles[value]; ok {
		return s
	}
	return tileStyles[2048]
}

// tileLabel returns the text shown inside a cell.
func tileLabel(value int) string {
	if value == 0 {
		return ""
	}
	return strconv.Itoa(value)
}

// renderBoard draws the 4x4 grid as a bordered block of styled cells.
func renderBoard(g engine.Grid) string {
	rows := make([]string, 0, engine.GridSize)
	for y := range engine.GridSize {
		cells := make([]string, 0, engine.GridSize)
		for x := range engine.GridSize {
			v := g[y][x]
			cells = append(cells, tileStyle(v).Render(tileLabel(v)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return boardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
