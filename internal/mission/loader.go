package mission

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"
)

//go:embed missions/*.yaml
var defaultFS embed.FS

// ErrDuplicateMission is returned when two missions share an ID.
var ErrDuplicateMission = errors.New("duplicate mission id")

// Default returns the built-in mission catalogue.
func Default() ([]Mission, error) {
	return LoadFromFS(defaultFS, "missions")
}

// LoadFromFile loads missions from a JSON or YAML file on disk.
func LoadFromFile(path string) ([]Mission, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading mission file: %w", err)
	}
	missions, err := decode(path, data)
	if err != nil {
		return nil, fmt.Errorf("parsing mission file: %w", err)
	}
	return finalize(missions)
}

// LoadFromFS loads all mission files from an fs.FS (e.g., embed.FS).
func LoadFromFS(fsys fs.FS, dir string) ([]Mission, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("reading missions dir: %w", err)
	}

	var all []Mission
	for _, entry := range entries {
		if entry.IsDir() || !isMissionFile(entry.Name()) {
			continue
		}
		path := entry.Name()
		if dir != "." {
			path = dir + "/" + path
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("reading file %s: %w", entry.Name(), err)
		}
		missions, err := decode(path, data)
		if err != nil {
			return nil, fmt.Errorf("parsing file %s: %w", entry.Name(), err)
		}
		all = append(all, missions...)
	}

	return finalize(all)
}

func isMissionFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

func decode(path string, data []byte) ([]Mission, error) {
	var missions []Mission
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &missions); err != nil {
			return nil, err
		}
	default:
		if err := json.Unmarshal(data, &missions); err != nil {
			return nil, err
		}
	}
	return missions, nil
}

func finalize(missions []Mission) ([]Mission, error) {
	seen := make(map[string]bool, len(missions))
	for _, m := range missions {
		if seen[m.ID] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateMission, m.ID)
		}
		seen[m.ID] = true
	}

	sort.SliceStable(missions, func(i, j int) bool {
		if missions[i].Order != missions[j].Order {
			return missions[i].Order < missions[j].Order
		}
		return missions[i].ID < missions[j].ID
	})
	return missions, nil
}
