package status

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
)

// Tracker is the shared status handle. It reads the stored value once on
// creation and writes back only when the value changes.
type Tracker struct {
	mu      sync.RWMutex
	kv      KV
	key     string
	current Status
	logger  *log.Logger
}

// NewTracker loads the status stored under key. A missing or unreadable
// value starts the tracker Online.
func NewTracker(kv KV, key string, logger *log.Logger) (*Tracker, error) {
	if key == "" {
		key = DefaultKey
	}
	if logger == nil {
		logger = log.Default()
	}

	t := &Tracker{kv: kv, key: key, current: Online, logger: logger}

	raw, ok, err := kv.Get(key)
	if err != nil {
		return nil, fmt.Errorf("loading status: %w", err)
	}
	if ok {
		s, err := ParseStatus(raw)
		if err != nil {
			logger.Warn("ignoring stored status", "key", key, "value", raw)
		} else {
			t.current = s
		}
	}
	return t, nil
}

// Current returns the status.
func (t *Tracker) Current() Status {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.current
}

// Set changes the status and persists it if it differs from the current one.
func (t *Tracker) Set(s Status) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.setLocked(s)
}

func (t *Tracker) setLocked(s Status) error {
	if s == t.current {
		return nil
	}
	if err := t.kv.Set(t.key, string(s)); err != nil {
		return fmt.Errorf("saving status: %w", err)
	}
	t.logger.Debug("status changed", "from", t.current, "to", s)
	t.current = s
	return nil
}

// Toggle flips between Online and Away and returns the new status.
func (t *Tracker) Toggle() (Status, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	next := t.current.Toggle()
	if err := t.setLocked(next); err != nil {
		return t.current, err
	}
	return next, nil
}
