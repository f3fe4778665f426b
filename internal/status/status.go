package status

import (
	"errors"
	"fmt"
	"strings"
)

// Status is the player's presence shown in the dashboard header.
type Status string

const (
	Online Status = "online"
	Away   Status = "away"
)

// DefaultKey is the store key the status is persisted under.
const DefaultKey = "player-status"

// ErrUnknownStatus is returned when parsing a value that is not a Status.
var ErrUnknownStatus = errors.New("unknown status")

// ParseStatus converts a stored or user-supplied value into a Status.
func ParseStatus(s string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case Online:
		return Online, nil
	case Away:
		return Away, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

// Toggle returns the other status.
func (s Status) Toggle() Status {
	if s == Away {
		return Online
	}
	return Away
}

func (s Status) String() string {
	return string(s)
}
