package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/knightly/knightly/internal/mission"
)

// MissionWidget shows one mission of an ordered sequence as a progress bar
// with its XP reward, plus a step selector to page through the sequence.
type MissionWidget struct {
	missions []mission.Mission
	active   int
	bar      progress.Model
	keys     keyMap
	width    int
}

// NewMissionWidget creates a widget over missions with the first one active.
func NewMissionWidget(missions []mission.Mission, barWidth int) MissionWidget {
	return MissionWidget{
		missions: missions,
		bar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(barWidth),
			progress.WithoutPercentage(),
		),
		keys: defaultKeyMap(),
	}
}

// SetMissions replaces the displayed values, keeping the active step.
func (w MissionWidget) SetMissions(missions []mission.Mission) MissionWidget {
	w.missions = missions
	if w.active >= len(missions) {
		w.active = 0
	}
	return w
}

// SelectStep makes step i active. Out-of-range steps are rejected.
func (w *MissionWidget) SelectStep(i int) bool {
	if i < 0 || i >= len(w.missions) {
		return false
	}
	w.active = i
	return true
}

// ActiveStep returns the index of the active mission.
func (w MissionWidget) ActiveStep() int {
	return w.active
}

// Active returns the active mission, false when there are none.
func (w MissionWidget) Active() (mission.Mission, bool) {
	if w.active < 0 || w.active >= len(w.missions) {
		return mission.Mission{}, false
	}
	return w.missions[w.active], true
}

func (w MissionWidget) Update(msg tea.Msg) (MissionWidget, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, w.keys.Prev):
			w.SelectStep(w.active - 1)
		case key.Matches(msg, w.keys.Next):
			w.SelectStep(w.active + 1)
		case key.Matches(msg, w.keys.Step):
			w.SelectStep(int(msg.Runes[0]-'1'))
		}
	}
	return w, nil
}

func (w MissionWidget) View() string {
	m, ok := w.Active()
	if !ok {
		return mutedStyle.Render("No missions.")
	}

	p := m.Value()
	pct := p.Percentage()

	title := labelStyle.Render(m.Title)
	if m.Category != "" {
		title += "  " + mutedStyle.Render(m.Category)
	}
	counts := fmt.Sprintf("%s  %3.0f%%", mission.FormatProgress(p.Current, p.Total), pct)
	reward := xpStyle.Render(fmt.Sprintf("+%s XP", humanize.Comma(int64(m.XP))))
	if p.Complete() {
		reward = doneStyle.Render("✓ ") + reward
	}

	lines := []string{
		title,
		w.bar.ViewAs(pct / 100),
		counts + "   " + reward,
		"",
		w.stepsView(),
	}

	card := cardStyle
	if w.width > 4 {
		card = card.Width(w.width - 4)
	}
	return card.Render(strings.Join(lines, "\n"))
}

func (w MissionWidget) stepsView() string {
	var b strings.Builder
	for i, m := range w.missions {
		if i > 0 {
			b.WriteString(" ")
		}
		switch {
		case i == w.active:
			b.WriteString(stepActiveStyle.Render("●"))
		case m.Complete():
			b.WriteString(stepDoneStyle.Render("✓"))
		default:
			b.WriteString(stepIdleStyle.Render("○"))
		}
	}
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  %d/%d", w.active+1, len(w.missions))))
	return b.String()
}
