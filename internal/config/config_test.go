package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("KANBA_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Database.Path == "" {
		t.Error("default database path is empty")
	}
	want := []string{"Todo", "Doing", "Done"}
	if len(cfg.Board.SeedLanes) != len(want) {
		t.Fatalf("SeedLanes = %v, want %v", cfg.Board.SeedLanes, want)
	}
	for i, name := range want {
		if cfg.Board.SeedLanes[i] != name {
			t.Errorf("SeedLanes[%d] = %q, want %q", i, cfg.Board.SeedLanes[i], name)
		}
	}
	if cfg.Board.LaneWidth != 28 {
		t.Errorf("LaneWidth = %d, want 28", cfg.Board.LaneWidth)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `[database]
path = "/tmp/custom.db"

[board]
seed_lanes = ["Backlog", "Active"]
lane_width = 40
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("KANBA_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Database.Path != "/tmp/custom.db" {
		t.Errorf("Path = %q", cfg.Database.Path)
	}
	if len(cfg.Board.SeedLanes) != 2 || cfg.Board.SeedLanes[0] != "Backlog" {
		t.Errorf("SeedLanes = %v", cfg.Board.SeedLanes)
	}
	if cfg.Board.LaneWidth != 40 {
		t.Errorf("LaneWidth = %d", cfg.Board.LaneWidth)
	}
}

func TestLaneWidthFloor(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[board]\nlane_width = 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("KANBA_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Board.LaneWidth != 12 {
		t.Errorf("LaneWidth = %d, want floor of 12", cfg.Board.LaneWidth)
	}
}
