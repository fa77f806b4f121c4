package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vplotn/valentine2048/internal/config"
)

func testConfig() config.GameConfig {
	cfg := config.DefaultGameConfig()
	return cfg
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// pressMoves sends slide keys until one of them counts as a move.
func pressMoves(t *testing.T, m Model) Model {
	t.Helper()
	before := m.eng.Moves()
	for _, r := range []rune{'a', 'd', 'w', 's'} {
		next, _ := m.Update(keyRune(r))
		m = next.(Model)
		if m.eng.Moves() > before {
			return m
		}
	}
	t.Fatal("no direction produced a move on a fresh board")
	return m
}

func TestModelMoveAdvancesEngine(t *testing.T) {
	m := NewModel(testConfig(), nil, 42, 80, 24)

	m = pressMoves(t, m)

	if m.eng.Moves() != 1 {
		t.Errorf("Moves = %d, want 1", m.eng.Moves())
	}
}

func TestModelRestart(t *testing.T) {
	m := NewModel(testConfig(), nil, 42, 80, 24)
	m = pressMoves(t, m)
	m.status = "something else"

	next, _ := m.Update(keyRune('r'))
	m = next.(Model)

	if m.eng.Moves() != 0 {
		t.Errorf("Moves after restart = %d, want 0", m.eng.Moves())
	}
	if m.status != statusNewGame {
		t.Errorf("status after restart = %q, want new-game message", m.status)
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(testConfig(), nil, 42, 80, 24)

	next, cmd := m.Update(keyRune('q'))
	m = next.(Model)

	if !m.quitting {
		t.Error("q should set quitting")
	}
	if cmd == nil {
		t.Error("q should return the quit command")
	}
	if m.View() != "" {
		t.Error("quitting model should render an empty view")
	}
}

func TestModelWinOpensValentine(t *testing.T) {
	cfg := testConfig()
	// Any successful move wins instantly: the starting tiles already meet
	// a target of 2.
	cfg.Gameplay.WinTarget = 2

	m := NewModel(cfg, nil, 42, 80, 24)
	m = pressMoves(t, m)

	if m.valentine == nil {
		t.Fatal("winning move should open the valentine modal")
	}

	// The modal owns the keyboard: slide keys do not reach the engine.
	movesBefore := m.eng.Moves()
	next, _ := m.Update(keyRune('a'))
	m = next.(Model)
	if m.eng.Moves() != movesBefore {
		t.Error("slide key should not reach the engine while the modal is open")
	}

	// Enter dismisses the modal and the game resumes.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	if m.valentine != nil {
		t.Error("enter should dismiss the modal")
	}

	// The win never re-triggers.
	m = pressMoves(t, m)
	if m.valentine != nil {
		t.Error("modal must not reopen after the first win")
	}
}

func TestModelWindowResize(t *testing.T) {
	m := NewModel(testConfig(), nil, 42, 0, 0)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(Model)

	if m.width != 100 || m.height != 40 {
		t.Errorf("size = %dx%d, want 100x40", m.width, m.height)
	}
}
