package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/knightly/knightly/internal/mission"
)

// DefaultCelebrationDuration is how long the overlay stays up.
const DefaultCelebrationDuration = 3 * time.Second

// celebrationDoneMsg fires when an overlay's timer runs out.
type celebrationDoneMsg struct {
	id int
}

// celebrationDismissedMsg tells the parent an overlay went away.
// Exactly one is sent per Show.
type celebrationDismissedMsg struct {
	missionID string
}

// Celebration is the one-shot overlay shown when a mission completes.
type Celebration struct {
	Duration time.Duration

	id      int // bumped on every Show/Cancel so stale timers are ignored
	active  bool
	mission mission.Mission
}

// NewCelebration creates an idle overlay.
func NewCelebration(d time.Duration) Celebration {
	if d <= 0 {
		d = DefaultCelebrationDuration
	}
	return Celebration{Duration: d}
}

// Active reports whether the overlay is showing.
func (c Celebration) Active() bool {
	return c.active
}

// Show displays the overlay for m and schedules its dismissal. An overlay
// that is still up is dismissed first.
func (c *Celebration) Show(m mission.Mission) tea.Cmd {
	var prev tea.Cmd
	if c.active {
		prev = dismissed(c.mission.ID)
	}

	c.id++
	c.active = true
	c.mission = m

	id := c.id
	tick := tea.Tick(c.Duration, func(time.Time) tea.Msg {
		return celebrationDoneMsg{id: id}
	})
	if prev == nil {
		return tick
	}
	return tea.Batch(prev, tick)
}

// Cancel tears the overlay down without signalling dismissal. A pending
// timer becomes a no-op.
func (c *Celebration) Cancel() {
	c.id++
	c.active = false
}

func (c Celebration) Update(msg tea.Msg) (Celebration, tea.Cmd) {
	done, ok := msg.(celebrationDoneMsg)
	if !ok || done.id != c.id || !c.active {
		return c, nil
	}
	c.active = false
	return c, dismissed(c.mission.ID)
}

func (c Celebration) View() string {
	if !c.active {
		return ""
	}
	return successStyle.Render(fmt.Sprintf(
		"Mission complete!\n\n%s\n\n+%s XP",
		c.mission.Title, humanize.Comma(int64(c.mission.XP)),
	))
}

func dismissed(id string) tea.Cmd {
	return func() tea.Msg { return celebrationDismissedMsg{missionID: id} }
}
