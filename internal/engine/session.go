package engine

import "math/rand"

// Default gameplay parameters, matching the observed game behavior.
const (
	DefaultWinTarget  = 512
	DefaultSpawn4Prob = 0.10
)

// Session is the complete player-visible game state.
//
// Score is the highest tile currently on the board, not an accumulated sum of
// merge gains. The merge gain of a move is computed and exposed through
// MoveResult.Gained but deliberately never feeds Score; see MoveResult.
type Session struct {
	Grid  Grid
	Score int
	Won   bool
}

// MoveResult is returned by Engine.Move.
type MoveResult struct {
	State    Session
	Moved    bool // at least one line changed; a tile was spawned
	Gained   int  // sum of merged tile values this move (informational only)
	GameOver bool
	JustWon  bool // true exactly once per session, on the winning move
}

// Config holds the engine parameters.
type Config struct {
	Seed       int64   // RNG seed for deterministic play; required
	WinTarget  int     // tile value that triggers the win signal; 0 means DefaultWinTarget
	Spawn4Prob float64 // probability a spawned tile is a 4 instead of a 2; 0 means DefaultSpawn4Prob
}

// Engine owns a single game session and its random source. It is not safe
// for concurrent use; the surrounding event loop serializes all calls.
type Engine struct {
	rng       *rand.Rand
	winTarget int
	spawn4    float64

	state Session
	moves int
}

// New creates an engine and starts its first session.
func New(cfg Config) *Engine {
	if cfg.WinTarget == 0 {
		cfg.WinTarget = DefaultWinTarget
	}
	if cfg.Spawn4Prob == 0 {
		cfg.Spawn4Prob = DefaultSpawn4Prob
	}

	e := &Engine{
		rng:       rand.New(rand.NewSource(cfg.Seed)),
		winTarget: cfg.WinTarget,
		spawn4:    cfg.Spawn4Prob,
	}
	e.Reset()
	return e
}

// Reset clears the session and spawns the two starting tiles. The second
// spawn sees the board left by the first, so the tiles land on distinct cells.
func (e *Engine) Reset() Session {
	e.state = Session{}
	e.moves = 0
	e.spawnTile()
	e.spawnTile()
	e.state.Score = MaxTile(e.state.Grid)
	return e.state
}

// Move applies a slide in the given direction.
//
// On a successful move it spawns one random tile, recomputes the score, and
// raises JustWon the first time the score reaches the win target. A no-op
// move leaves the session untouched. Game-over is evaluated in both cases,
// since a no-op move can occur on an already stuck board.
func (e *Engine) Move(dir Direction) MoveResult {
	next, gained, moved := Slide(e.state.Grid, dir)
	if !moved {
		return MoveResult{
			State:    e.state,
			GameOver: IsGameOver(e.state.Grid),
		}
	}

	e.state.Grid = next
	e.moves++
	e.spawnTile()
	e.state.Score = MaxTile(e.state.Grid)

	justWon := false
	if !e.state.Won && e.state.Score >= e.winTarget {
		e.state.Won = true
		justWon = true
	}

	return MoveResult{
		State:    e.state,
		Moved:    true,
		Gained:   gained,
		GameOver: IsGameOver(e.state.Grid),
		JustWon:  justWon,
	}
}

// spawnTile places a 2 (or, with probability spawn4, a 4) on a uniformly
// chosen empty cell. A full board is a silent no-op, never an error.
func (e *Engine) spawnTile() {
	empty := EmptyCells(e.state.Grid)
	if len(empty) == 0 {
		return
	}

	cell := empty[e.rng.Intn(len(empty))]

	value := 2
	if e.rng.Float64() < e.spawn4 {
		value = 4
	}
	e.state.Grid[cell.Y][cell.X] = value
}

// Session returns a copy of the current session state.
func (e *Engine) Session() Session {
	return e.state
}

// Grid returns the current board.
func (e *Engine) Grid() Grid {
	return e.state.Grid
}

// Score returns the highest tile on the board.
func (e *Engine) Score() int {
	return e.state.Score
}

// Moves returns the number of successful moves this session.
func (e *Engine) Moves() int {
	return e.moves
}

// GameOver reports whether the current board has no legal move.
func (e *Engine) GameOver() bool {
	return IsGameOver(e.state.Grid)
}
