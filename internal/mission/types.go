package mission

// Mission is a trackable unit of progress with an XP reward.
type Mission struct {
	ID       string `json:"id" yaml:"id"`
	Title    string `json:"title" yaml:"title"`
	Category string `json:"category" yaml:"category"`
	// Progress is the "<current>/<total>" text from upstream mission data.
	Progress string `json:"progress" yaml:"progress"`
	XP       int    `json:"xp" yaml:"xp"`
	Order    int    `json:"order" yaml:"order"`
}

// Value parses the mission's progress text.
func (m Mission) Value() Progress {
	return ParseProgress(m.Progress)
}

// Complete reports whether the mission's raw counts are complete.
func (m Mission) Complete() bool {
	return m.Value().Complete()
}

// Find returns the mission with the given ID.
func Find(missions []Mission, id string) (Mission, bool) {
	for _, m := range missions {
		if m.ID == id {
			return m, true
		}
	}
	return Mission{}, false
}

// GetCategories returns the unique categories in catalogue order.
func GetCategories(missions []Mission) []string {
	seen := make(map[string]bool)
	var out []string
	for _, m := range missions {
		if m.Category == "" || seen[m.Category] {
			continue
		}
		seen[m.Category] = true
		out = append(out, m.Category)
	}
	return out
}
