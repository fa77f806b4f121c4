// Package tui provides the Bubble Tea presentation shell for the game:
// key dispatch, board rendering, the valentine win screen, and the optional
// SSH server. All game rules live in the engine package.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vplotn/valentine2048/internal/config"
	"github.com/vplotn/valentine2048/internal/engine"
	"github.com/vplotn/valentine2048/internal/storage"
)

// Status line messages, matching the original wording.
const (
	statusNewGame  = "NEW GAME! USE ARROWS/WASD. R TO RESTART, Q TO QUIT. ❤"
	statusGameOver = "GAME OVER. PRESS R TO RESTART. ❤"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("197")).
			Bold(true).
			Margin(1, 0)

	scoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("211")).
			Margin(0, 0, 1, 0)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("217")).
			Margin(1, 0)
)

// Model is the Bubble Tea model for a single game session.
type Model struct {
	eng           *engine.Engine
	store         *storage.Store
	keys          keyMap
	help          help.Model
	status        string
	valentine     *ValentineModel
	heartInterval time.Duration
	width         int
	height        int
	saved         bool // finished game already recorded
	quitting      bool
}

// NewModel creates a model with a fresh engine. A zero seed falls back to
// the current time.
func NewModel(cfg config.GameConfig, store *storage.Store, seed int64, width, height int) Model {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	eng := engine.New(engine.Config{
		Seed:       seed,
		WinTarget:  cfg.Gameplay.WinTarget,
		Spawn4Prob: cfg.Gameplay.Spawn4Prob,
	})

	return Model{
		eng:           eng,
		store:         store,
		keys:          newKeyMap(),
		help:          help.New(),
		status:        statusNewGame,
		heartInterval: time.Duration(cfg.Valentine.HeartIntervalMS) * time.Millisecond,
		width:         width,
		height:        height,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case heartTickMsg:
		if m.valentine != nil {
			next, cmd := m.valentine.Update(msg)
			m.valentine = &next
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The modal owns the keyboard while it is open; only ctrl+c breaks out.
	if m.valentine != nil {
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		next, cmd := m.valentine.Update(msg)
		if next.Done() {
			m.valentine = nil
		} else {
			m.valentine = &next
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Restart):
		m.eng.Reset()
		m.status = statusNewGame
		m.saved = false
		return m, nil
	}

	if dir, ok := m.moveDirection(msg); ok {
		return m.handleMove(dir)
	}

	return m, nil
}

// moveDirection maps a key message to a slide direction.
func (m Model) moveDirection(msg tea.KeyMsg) (engine.Direction, bool) {
	switch {
	case key.Matches(msg, m.keys.Up):
		return engine.DirUp, true
	case key.Matches(msg, m.keys.Down):
		return engine.DirDown, true
	case key.Matches(msg, m.keys.Left):
		return engine.DirLeft, true
	case key.Matches(msg, m.keys.Right):
		return engine.DirRight, true
	}
	return 0, false
}

// handleMove runs one engine move and reacts to its result.
func (m Model) handleMove(dir engine.Direction) (tea.Model, tea.Cmd) {
	res := m.eng.Move(dir)

	switch {
	case res.GameOver:
		m.status = statusGameOver
		m.saveGame(res.State)
	case res.Moved:
		m.status = ""
	}

	if res.JustWon {
		modal := NewValentineModel(m.heartInterval)
		m.valentine = &modal
		return m, modal.Init()
	}

	return m, nil
}

// saveGame records the finished game once. Saving is best-effort; the game
// continues regardless.
func (m *Model) saveGame(s engine.Session) {
	if m.saved || m.store == nil {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveGame(storage.GameRecord{
		BestTile: s.Score,
		Moves:    m.eng.Moves(),
		Won:      s.Won,
	})
	m.saved = true
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	if m.valentine != nil {
		content = m.valentine.View()
	} else {
		content = lipgloss.JoinVertical(lipgloss.Center,
			titleStyle.Render("2048  VALENTINE EDITION  ❤ ❤ ❤"),
			scoreStyle.Render(fmt.Sprintf("HIGHEST TILE: %d   ❤", m.eng.Score())),
			renderBoard(m.eng.Grid()),
			statusStyle.Render(m.status),
			m.help.View(m.keys),
		)
	}

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(cfg config.GameConfig, store *storage.Store, seed int64, width, height int) error {
	model := NewModel(cfg, store, seed, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
