package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestHeartFramesCycle(t *testing.T) {
	m := NewValentineModel(300 * time.Millisecond)

	for i := 1; i <= len(heartFrames)*2; i++ {
		m, _ = m.Update(heartTickMsg(time.Now()))
		want := i % len(heartFrames)
		if m.frame != want {
			t.Fatalf("after %d ticks: frame = %d, want %d", i, m.frame, want)
		}
	}
}

func TestHeartTickKeepsScheduling(t *testing.T) {
	m := NewValentineModel(300 * time.Millisecond)

	_, cmd := m.Update(heartTickMsg(time.Now()))
	if cmd == nil {
		t.Error("open modal should schedule the next animation frame")
	}
}

func TestValentineButtonNavigation(t *testing.T) {
	m := NewValentineModel(0)

	if m.cursor != 0 {
		t.Fatalf("initial cursor = %d, want 0", m.cursor)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.cursor != 1 {
		t.Errorf("cursor after right = %d, want 1", m.cursor)
	}

	// Cannot move past the last button.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.cursor != 1 {
		t.Errorf("cursor after second right = %d, want 1", m.cursor)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if m.cursor != 0 {
		t.Errorf("cursor after left = %d, want 0", m.cursor)
	}
}

func TestValentineDismiss(t *testing.T) {
	for _, k := range []tea.KeyMsg{
		{Type: tea.KeyEnter},
		{Type: tea.KeyEsc},
		{Type: tea.KeyRunes, Runes: []rune("y")},
	} {
		m := NewValentineModel(0)
		m, _ = m.Update(k)
		if !m.Done() {
			t.Errorf("key %q should dismiss the modal", k.String())
		}
	}
}

func TestValentineView(t *testing.T) {
	m := NewValentineModel(0)
	view := m.View()

	if !strings.Contains(view, "VALENTINE") {
		t.Error("modal view should contain the valentine title")
	}
	if !strings.Contains(view, "Yes") || !strings.Contains(view, "Also Yes") {
		t.Error("modal view should contain both buttons")
	}
}
