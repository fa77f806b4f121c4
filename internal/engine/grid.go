// Package engine implements the 2048 grid logic: directional slide-and-merge
// moves, random tile spawning, and terminal-state detection. It performs no
// I/O and knows nothing about rendering.
package engine

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// GridSize is the board dimension. The game is fixed at 4x4.
const GridSize = 4

// Grid is the 4x4 board. Each cell is 0 (empty) or a power of two >= 2.
type Grid [GridSize][GridSize]int

// Cell identifies a board position.
type Cell struct {
	X, Y int
}

// slideLine compacts a line toward index 0 and merges adjacent equal pairs.
// The scan is a single pass over the dense values: a merged tile never merges
// again in the same move, so [2,2,2,2] becomes [4,4,0,0] and [2,2,4] becomes
// [4,4,0,0]. Returns the new line and the sum of merged tile values.
func slideLine(line [GridSize]int) (result [GridSize]int, gained int) {
	var dense []int
	for _, v := range line {
		if v != 0 {
			dense = append(dense, v)
		}
	}

	writePos := 0
	for i := 0; i < len(dense); i++ {
		if i+1 < len(dense) && dense[i] == dense[i+1] {
			result[writePos] = dense[i] * 2
			gained += result[writePos]
			i++ // consume the pair
		} else {
			result[writePos] = dense[i]
		}
		writePos++
	}

	return result, gained
}

// reverseLine reverses a line in place order.
func reverseLine(line [GridSize]int) [GridSize]int {
	var result [GridSize]int
	for i := range line {
		result[i] = line[GridSize-1-i]
	}
	return result
}

// orientation returns how lines are extracted for a direction: whether lines
// run along rows (horizontal) and whether the line is read back-to-front so
// the merge always compacts toward the line's start.
func (d Direction) orientation() (horizontal, reversed bool) {
	switch d {
	case DirLeft:
		return true, false
	case DirRight:
		return true, true
	case DirUp:
		return false, false
	default: // DirDown
		return false, true
	}
}

// extractLine reads line i of the grid in the direction's forward order.
func extractLine(g Grid, d Direction, i int) [GridSize]int {
	horizontal, reversed := d.orientation()

	var line [GridSize]int
	if horizontal {
		line = g[i]
	} else {
		for y := range line {
			line[y] = g[y][i]
		}
	}

	if reversed {
		line = reverseLine(line)
	}
	return line
}

// writeLine stores a forward-order line back into the grid at index i.
func writeLine(g *Grid, d Direction, i int, line [GridSize]int) {
	horizontal, reversed := d.orientation()

	if reversed {
		line = reverseLine(line)
	}

	if horizontal {
		g[i] = line
	} else {
		for y := range line {
			g[y][i] = line[y]
		}
	}
}

// Slide performs a move in the given direction. All four directions share one
// merge path via extractLine/writeLine. Returns the new grid, the merge gain,
// and whether any line changed. An out-of-range direction is a no-op.
func Slide(g Grid, d Direction) (Grid, int, bool) {
	if d < DirUp || d > DirRight {
		return g, 0, false
	}

	result := g
	totalGained := 0
	moved := false

	for i := range GridSize {
		line := extractLine(g, d, i)
		merged, gained := slideLine(line)
		writeLine(&result, d, i, merged)
		totalGained += gained

		if merged != line {
			moved = true
		}
	}

	return result, totalGained, moved
}

// EmptyCells returns the coordinates of all empty cells.
func EmptyCells(g Grid) []Cell {
	var cells []Cell
	for y := range GridSize {
		for x := range GridSize {
			if g[y][x] == 0 {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// HasEmptyCell returns true if at least one cell is empty.
func HasEmptyCell(g Grid) bool {
	for y := range GridSize {
		for x := range GridSize {
			if g[y][x] == 0 {
				return true
			}
		}
	}
	return false
}

// HasAdjacentPair returns true if any two horizontally or vertically
// adjacent cells hold the same value.
func HasAdjacentPair(g Grid) bool {
	for y := range GridSize {
		for x := range GridSize {
			val := g[y][x]
			if x < GridSize-1 && g[y][x+1] == val {
				return true
			}
			if y < GridSize-1 && g[y+1][x] == val {
				return true
			}
		}
	}
	return false
}

// IsGameOver returns true if no move in any direction could change the grid:
// no cell is empty and no adjacent cells share a value.
func IsGameOver(g Grid) bool {
	return !HasEmptyCell(g) && !HasAdjacentPair(g)
}

// MaxTile returns the highest tile value on the grid.
func MaxTile(g Grid) int {
	maxVal := 0
	for y := range GridSize {
		for x := range GridSize {
			if g[y][x] > maxVal {
				maxVal = g[y][x]
			}
		}
	}
	return maxVal
}
