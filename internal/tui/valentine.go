package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// heartFrames holds the beating-heart animation. The frames cycle on a
// free-running timer that never touches game state.
var heartFrames = [...]string{
	strings.Join([]string{
		"  **     **  ",
		" ****   **** ",
		"****** ******",
		"*************",
		" *********** ",
		"  *********  ",
		"    *****    ",
		"     ***     ",
		"      *      ",
	}, "\n"),
	strings.Join([]string{
		"   **   **   ",
		"  **** ****  ",
		" *********** ",
		"*************",
		" *********** ",
		"  *********  ",
		"    *****    ",
		"     ***     ",
		"      *      ",
	}, "\n"),
	strings.Join([]string{
		"   *** ***   ",
		"  *********  ",
		"*************",
		"*************",
		" *********** ",
		"  *********  ",
		"    *****    ",
		"     ***     ",
		"      *      ",
	}, "\n"),
	strings.Join([]string{
		"  **     **  ",
		" ****   **** ",
		"****** ******",
		"*************",
		" *********** ",
		"  *********  ",
		"    *****    ",
		"     ***     ",
		"      *      ",
	}, "\n"),
}

// heartTickMsg advances the heart animation by one frame.
type heartTickMsg time.Time

// heartTickCmd schedules the next animation frame.
func heartTickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return heartTickMsg(t)
	})
}

var (
	heartStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("197")).
			Bold(true)

	valentineTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("211")).
				Bold(true).
				Margin(1, 0)

	valentineDialogStyle = lipgloss.NewStyle().
				Border(lipgloss.DoubleBorder()).
				BorderForeground(lipgloss.Color("204")).
				Padding(1, 4).
				Align(lipgloss.Center)

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("240")).
			Padding(0, 3).
			Margin(0, 1)

	activeButtonStyle = buttonStyle.
				Background(lipgloss.Color("197")).
				Underline(true)
)

// valentineButtons are the modal's choices. Both dismiss it; there is no
// wrong answer.
var valentineButtons = [...]string{"Yes", "Also Yes"}

// ValentineModel is the modal celebratory screen shown once per session when
// the win target is reached.
type ValentineModel struct {
	frame    int
	cursor   int
	interval time.Duration
	done     bool
}

// NewValentineModel creates the modal with the given animation interval.
func NewValentineModel(interval time.Duration) ValentineModel {
	if interval <= 0 {
		interval = 300 * time.Millisecond
	}
	return ValentineModel{interval: interval}
}

// Init starts the heart animation.
func (m ValentineModel) Init() tea.Cmd {
	return heartTickCmd(m.interval)
}

// Update handles animation ticks and button navigation.
func (m ValentineModel) Update(msg tea.Msg) (ValentineModel, tea.Cmd) {
	switch msg := msg.(type) {
	case heartTickMsg:
		m.frame = (m.frame + 1) % len(heartFrames)
		if m.done {
			return m, nil
		}
		return m, heartTickCmd(m.interval)

	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h", "shift+tab":
			if m.cursor > 0 {
				m.cursor--
			}
		case "right", "l", "tab":
			if m.cursor < len(valentineButtons)-1 {
				m.cursor++
			}
		case "enter", " ", "esc", "y":
			m.done = true
		}
	}

	return m, nil
}

// Done reports whether the modal was dismissed.
func (m ValentineModel) Done() bool {
	return m.done
}

// View renders the dialog box.
func (m ValentineModel) View() string {
	heart := heartStyle.Render(heartFrames[m.frame])
	title := valentineTitleStyle.Render("WILL YOU BE MY VALENTINE?  ❤")

	buttons := make([]string, 0, len(valentineButtons))
	for i, label := range valentineButtons {
		style := buttonStyle
		if i == m.cursor {
			style = activeButtonStyle
		}
		buttons = append(buttons, style.Render(label))
	}
	buttonRow := lipgloss.JoinHorizontal(lipgloss.Top, buttons...)

	return valentineDialogStyle.Render(
		lipgloss.JoinVertical(lipgloss.Center, heart, title, buttonRow),
	)
}
