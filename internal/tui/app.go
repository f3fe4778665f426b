package tui

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/knightly/knightly/internal/mission"
	"github.com/knightly/knightly/internal/progress"
	"github.com/knightly/knightly/internal/status"
)

// Options tune the dashboard.
type Options struct {
	CelebrationDuration time.Duration
	BarWidth            int
	Logger              *log.Logger
}

// App is the main Bubble Tea model.
type App struct {
	catalogue []mission.Mission
	progress  *progress.Store
	states    *mission.Tracker
	logger    *log.Logger

	widget      MissionWidget
	celebration Celebration
	statusView  StatusToggle
	keys        keyMap
	help        help.Model

	confirmReset bool
	notice       string
	width        int
	height       int
}

// NewApp creates the main application model.
func NewApp(catalogue []mission.Mission, prog *progress.Store, st *status.Tracker, opts Options) (*App, error) {
	if len(catalogue) == 0 {
		return nil, errors.New("no missions found")
	}
	if prog == nil {
		return nil, errors.New("no progress store")
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.BarWidth <= 0 {
		opts.BarWidth = 40
	}

	states := mission.NewTracker()
	current := prog.Apply(catalogue)
	states.Seed(current)

	return &App{
		catalogue:   catalogue,
		progress:    prog,
		states:      states,
		logger:      opts.Logger,
		widget:      NewMissionWidget(current, opts.BarWidth),
		celebration: NewCelebration(opts.CelebrationDuration),
		statusView:  NewStatusToggle(st),
		keys:        defaultKeyMap(),
		help:        help.New(),
	}, nil
}

func (a App) Init() tea.Cmd {
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		var cmd tea.Cmd
		a.widget, cmd = a.widget.Update(msg)
		return a, cmd

	case celebrationDoneMsg:
		var cmd tea.Cmd
		a.celebration, cmd = a.celebration.Update(msg)
		return a, cmd

	case celebrationDismissedMsg:
		a.logger.Debug("celebration dismissed", "mission", msg.missionID)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			a.celebration.Cancel()
			return a, tea.Quit
		}
		if a.confirmReset {
			return a.updateConfirmReset(msg)
		}
		return a.updateKey(msg)
	}

	return a, nil
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.notice = ""
	switch {
	case key.Matches(msg, a.keys.Quit):
		a.celebration.Cancel()
		return a, tea.Quit
	case key.Matches(msg, a.keys.Advance):
		return a.advance(1)
	case key.Matches(msg, a.keys.Rewind):
		return a.advance(-1)
	case key.Matches(msg, a.keys.Status):
		s, err := a.statusView.Toggle()
		if err != nil {
			a.logger.Error("toggling status", "err", err)
			a.notice = "Could not save status: " + err.Error()
			return a, nil
		}
		a.logger.Info("status changed", "status", s)
		return a, nil
	case key.Matches(msg, a.keys.Reset):
		a.confirmReset = true
		return a, nil
	case key.Matches(msg, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
		return a, nil
	}

	var cmd tea.Cmd
	a.widget, cmd = a.widget.Update(msg)
	return a, cmd
}

func (a App) updateConfirmReset(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.confirmReset = false
	switch msg.String() {
	case "y", "Y":
		if err := a.progress.Reset(); err != nil {
			a.logger.Error("resetting progress", "err", err)
			a.notice = "Could not reset progress: " + err.Error()
			return a, tea.ClearScreen
		}
		a.celebration.Cancel()
		current := a.progress.Apply(a.catalogue)
		a.states.Forget()
		a.states.Seed(current)
		a.widget = a.widget.SetMissions(current)
		a.logger.Info("progress reset")
	}
	// Any other key cancels the reset prompt.
	return a, tea.ClearScreen
}

// advance applies an upstream progress update to the active mission and
// starts the celebration when that update completes it.
func (a App) advance(n int) (tea.Model, tea.Cmd) {
	m, ok := a.widget.Active()
	if !ok {
		return a, nil
	}

	p := a.progress.Advance(m, n)
	if err := a.progress.Save(); err != nil {
		a.logger.Error("saving progress", "mission", m.ID, "err", err)
		a.notice = "Could not save progress: " + err.Error()
	}
	a.widget = a.widget.SetMissions(a.progress.Apply(a.catalogue))
	a.logger.Debug("progress updated", "mission", m.ID, "progress", p.String())

	if a.states.Observe(m.ID, p) {
		a.logger.Info("mission complete", "mission", m.ID, "xp", m.XP)
		return a, a.celebration.Show(m)
	}
	return a, nil
}

func (a App) View() string {
	width := a.width
	if width <= 0 {
		width = 80
	}
	height := a.height
	if height <= 0 {
		height = 24
	}

	headerLines := []string{
		titleStyle.Render("Knightly - Missions") + "  " + a.statusView.View(),
	}
	current := a.progress.Apply(a.catalogue)
	if text := overallProgressText(a.progress, a.catalogue); text != "" {
		headerLines = append(headerLines, mutedStyle.MaxWidth(width).Render(text))
	}
	header := strings.Join(headerLines, "\n")

	body := a.widget.View()
	if a.celebration.Active() {
		body = lipgloss.JoinVertical(lipgloss.Left, body, a.celebration.View())
	}

	footer := helpStyle.MaxWidth(width).Render(a.help.View(a.keys))
	if a.notice != "" {
		footer += "\n" + dangerStyle.MaxWidth(width).Render(a.notice)
	}
	if a.confirmReset {
		footer += "\n" + dangerStyle.MaxWidth(width).Render("Reset all progress? [y]es / [n]o")
	}

	lines, cursorLine := missionListLines(current, a.widget.ActiveStep())
	available := height - lipgloss.Height(header) - lipgloss.Height(body) - lipgloss.Height(footer) - 3
	if available < 1 {
		available = 1
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(body)
	b.WriteString("\n\n")
	b.WriteString(renderWindow(lines, cursorLine, available, width))
	b.WriteString("\n")
	b.WriteString(footer)
	return b.String()
}
