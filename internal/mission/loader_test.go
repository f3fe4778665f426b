package mission

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func TestDefault(t *testing.T) {
	missions, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	if len(missions) == 0 {
		t.Fatal("Default() returned no missions")
	}
	for i := 1; i < len(missions); i++ {
		if missions[i-1].Order > missions[i].Order {
			t.Fatalf("missions not sorted by order: %q before %q", missions[i-1].ID, missions[i].ID)
		}
	}
	for _, m := range missions {
		if m.Value().Total <= 0 {
			t.Errorf("mission %q has no requirement: %q", m.ID, m.Progress)
		}
	}
}

func TestLoadFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"m/a.json":   {Data: []byte(`[{"id":"b","progress":"1/2","order":2},{"id":"a","progress":"0/4","order":2}]`)},
		"m/b.yaml":   {Data: []byte("- id: c\n  progress: \"3/3\"\n  order: 1\n  xp: 40\n")},
		"m/notes.md": {Data: []byte("ignored")},
	}

	missions, err := LoadFromFS(fsys, "m")
	if err != nil {
		t.Fatalf("LoadFromFS() error = %v", err)
	}

	var ids []string
	for _, m := range missions {
		ids = append(ids, m.ID)
	}
	want := []string{"c", "a", "b"}
	if len(ids) != len(want) {
		t.Fatalf("ids = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("ids = %v, want %v", ids, want)
		}
	}
	if missions[0].XP != 40 || !missions[0].Complete() {
		t.Errorf("yaml mission decoded wrong: %+v", missions[0])
	}
}

func TestLoadFromFSDuplicate(t *testing.T) {
	fsys := fstest.MapFS{
		"x.json": {Data: []byte(`[{"id":"a"},{"id":"a"}]`)},
	}
	_, err := LoadFromFS(fsys, ".")
	if !errors.Is(err, ErrDuplicateMission) {
		t.Fatalf("error = %v, want ErrDuplicateMission", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missions.yml")
	if err := os.WriteFile(path, []byte("- id: solo\n  progress: \"2/6\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	missions, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}
	if len(missions) != 1 || missions[0].Value() != (Progress{2, 6}) {
		t.Fatalf("missions = %+v", missions)
	}

	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestFindAndCategories(t *testing.T) {
	missions := []Mission{
		{ID: "a", Category: "Games"},
		{ID: "b", Category: "Puzzles"},
		{ID: "c", Category: "Games"},
	}
	if m, ok := Find(missions, "b"); !ok || m.ID != "b" {
		t.Errorf("Find(b) = %+v, %v", m, ok)
	}
	if _, ok := Find(missions, "z"); ok {
		t.Error("Find(z) found a mission")
	}
	cats := GetCategories(missions)
	if len(cats) != 2 || cats[0] != "Games" || cats[1] != "Puzzles" {
		t.Errorf("GetCategories() = %v", cats)
	}
}
