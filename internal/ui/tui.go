package ui

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ezchuang/pomodoro4linux/internal/core"
)

// termSurface stands in for the tray and dialog when running in a terminal.
// It is only touched from the bubbletea update loop.
type termSurface struct {
	icon    fyne.Resource
	tooltip string
	title   string
	items   []*MenuItem

	dialogTitle string
	dialogMsg   string
	dialogShown bool
}

func (s *termSurface) SetIcon(icon fyne.Resource)              { s.icon = icon }
func (s *termSurface) SetTooltip(text string)                  { s.tooltip = text }
func (s *termSurface) SetMenu(title string, items []*MenuItem) { s.title, s.items = title, items }

func (s *termSurface) Show(title, message string) {
	s.dialogTitle, s.dialogMsg, s.dialogShown = title, message, true
}

func (s *termSurface) Visible() bool { return s.dialogShown }

type Model struct {
	ui      *UI
	surface *termSurface

	width  int
	height int

	progress progress.Model
}

// NewModel builds a terminal frontend over timer. opts are passed to the
// underlying UI; quitting is handled by the program itself.
func NewModel(timer *core.Timer, opts ...Option) *Model {
	s := &termSurface{}
	m := &Model{
		surface:  s,
		progress: progress.New(progress.WithDefaultGradient()),
	}
	m.ui = New(timer, s, s, opts...)
	return m
}

// RunTerminal runs the model full screen until the user quits.
func RunTerminal(m *Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *Model) UI() *UI { return m.ui }

func (m *Model) Init() tea.Cmd {
	return tickCmd()
}

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.ui.Quit()
			return m, tea.Quit
		case "s":
			m.ui.StartTimer()
		case "p":
			m.ui.PauseTimer()
		case "t":
			m.ui.ShowStatistics()
		case "enter", " ":
			m.surface.dialogShown = false
		}
	case tickMsg:
		m.ui.UpdateTimer()
		return m, tickCmd()

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

func (m *Model) View() string {
	st := m.ui.Timer().Snapshot()

	title := lipgloss.NewStyle().Bold(true).Underline(true).Render(AppName)
	color := lipgloss.Color("#d93b3b")
	if m.ui.Status() == StatusRest {
		color = lipgloss.Color("#4caf50")
	}
	status := lipgloss.NewStyle().Bold(true).Foreground(color).Render(m.surface.tooltip)

	info := fmt.Sprintf("Remaining: %s\nCompleted: %d\nRunning: %v\n",
		core.FormatClock(st.TimeLeft), st.Completed, st.Running)

	bar := m.progress.ViewAs(Progress(st))

	var banner string
	if m.surface.dialogShown {
		banner = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1).
			Render(fmt.Sprintf("%s\n%s\n[enter] dismiss", m.surface.dialogTitle, m.surface.dialogMsg))
	}

	help := lipgloss.NewStyle().Faint(true).Render("[s] start  [p] pause  [t] today  [q] quit")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2).
		Width(max(32, m.width-4)).
		Render(fmt.Sprintf("%s\n\n%s\n%s\n%s\n%s\n\n%s", title, status, info, bar, banner, help))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// Progress is the elapsed share of the current interval, in [0,1].
func Progress(st core.State) float64 {
	total := st.WorkTime
	if st.Phase == core.PhaseRest {
		total = st.RestTime
	}
	if total <= 0 {
		return 0
	}
	done := total - st.TimeLeft
	if done < 0 {
		done = 0
	}
	if done > total {
		done = total
	}
	return float64(done) / float64(total)
}
