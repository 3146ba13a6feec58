package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultHasFourRandomSeats(t *testing.T) {
	cfg := Default()
	for i, seat := range cfg.Seats {
		if seat.Kind != "random" {
			t.Fatalf("seat %d: expected default kind random, got %q", i, seat.Kind)
		}
	}
	if cfg.StartingScore != 25000 {
		t.Fatalf("expected default starting score 25000, got %d", cfg.StartingScore)
	}
}

func TestLoadOverridesDefaultsFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "riichi.yaml")
	contents := `
seats:
  - kind: terminal
  - kind: random
  - kind: random
  - kind: scripted
startingScore: 30000
lastRoundWind: east
seed: 7
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Seats[0].Kind != "terminal" || cfg.Seats[3].Kind != "scripted" {
		t.Fatalf("seat overrides not applied: %+v", cfg.Seats)
	}
	if cfg.StartingScore != 30000 {
		t.Fatalf("expected starting score 30000, got %d", cfg.StartingScore)
	}
	if cfg.LastRoundWind != "east" {
		t.Fatalf("expected lastRoundWind east, got %q", cfg.LastRoundWind)
	}
	if cfg.Seed != 7 {
		t.Fatalf("expected seed 7, got %d", cfg.Seed)
	}
	// Left at its default since the fixture never sets it.
	if !cfg.UseRedFives {
		t.Fatalf("expected useRedFives to keep its default of true")
	}
}

func TestLoadReportsMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err == nil {
		t.Fatalf("expected an error loading a nonexistent config file")
	}
}
