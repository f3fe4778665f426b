package progress

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/knightly/knightly/internal/mission"
)

const progressFile = "progress.json"

// Store persists the current count of each mission.
type Store struct {
	dir    string
	Counts map[string]int `json:"counts"` // keyed by mission ID
}

// New creates a progress store rooted at dir, loading any saved counts.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	s := &Store{
		dir:    dir,
		Counts: make(map[string]int),
	}
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load reads progress from disk.
func (s *Store) Load() error {
	path := filepath.Join(s.dir, progressFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading progress: %w", err)
	}

	if err := json.Unmarshal(data, s); err != nil {
		return fmt.Errorf("parsing progress: %w", err)
	}
	if s.Counts == nil {
		s.Counts = make(map[string]int)
	}
	return nil
}

// Save writes progress to disk.
func (s *Store) Save() error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling progress: %w", err)
	}

	path := filepath.Join(s.dir, progressFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing progress: %w", err)
	}
	return nil
}

// Reset clears all progress and persists the empty state.
func (s *Store) Reset() error {
	s.Counts = make(map[string]int)
	return s.Save()
}

// Count returns the recorded count for a mission and whether one exists.
func (s *Store) Count(id string) (int, bool) {
	n, ok := s.Counts[id]
	return n, ok
}

// Advance moves a mission's count by n, starting from the catalogue value
// when nothing has been recorded yet. Counts are not bounded.
func (s *Store) Advance(m mission.Mission, n int) mission.Progress {
	next := s.Value(m).Advance(n)
	s.Counts[m.ID] = next.Current
	return next
}

// Value returns the mission's progress with the recorded count applied.
func (s *Store) Value(m mission.Mission) mission.Progress {
	p := m.Value()
	if n, ok := s.Counts[m.ID]; ok {
		p.Current = n
	}
	return p
}

// Text returns the mission's progress text with the recorded count applied.
func (s *Store) Text(m mission.Mission) string {
	p := s.Value(m)
	return mission.FormatProgress(p.Current, p.Total)
}

// Apply returns copies of the missions carrying the recorded progress.
func (s *Store) Apply(missions []mission.Mission) []mission.Mission {
	out := make([]mission.Mission, len(missions))
	for i, m := range missions {
		m.Progress = s.Text(m)
		out[i] = m
	}
	return out
}

// OverallProgress returns completed count, total missions, and percent completed.
func (s *Store) OverallProgress(missions []mission.Mission) (int, int, float64) {
	completed := 0
	for _, m := range missions {
		if s.Value(m).Complete() {
			completed++
		}
	}
	return completed, len(missions), mission.Percentage(completed, len(missions))
}

// EarnedXP sums the XP of every completed mission.
func (s *Store) EarnedXP(missions []mission.Mission) int {
	xp := 0
	for _, m := range missions {
		if s.Value(m).Complete() {
			xp += m.XP
		}
	}
	return xp
}
