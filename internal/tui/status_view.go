package tui

import (
	"github.com/knightly/knightly/internal/status"
)

// StatusToggle renders and flips the player status held by the shared tracker.
type StatusToggle struct {
	tracker *status.Tracker
}

// NewStatusToggle wraps the shared status tracker.
func NewStatusToggle(t *status.Tracker) StatusToggle {
	return StatusToggle{tracker: t}
}

// Toggle flips the status; the tracker persists the change.
func (s StatusToggle) Toggle() (status.Status, error) {
	if s.tracker == nil {
		return status.Online, nil
	}
	return s.tracker.Toggle()
}

func (s StatusToggle) View() string {
	current := status.Online
	if s.tracker != nil {
		current = s.tracker.Current()
	}
	if current == status.Away {
		return statusAwayStyle.Render("● away")
	}
	return statusOnlineStyle.Render("● online")
}
