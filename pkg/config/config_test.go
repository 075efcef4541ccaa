package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/woolforge/woolgen/pkg/errors"
	"github.com/woolforge/woolgen/pkg/layout"
	"github.com/woolforge/woolgen/pkg/woolgen"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "woolgen.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadPartialOverride(t *testing.T) {
	path := writeConfig(t, `
seed = 99
team_width = 400
symmetry_mode = "rotation"

[wool_entry_distance]
min = 10
max = 20

[islands]
max_per_team = 3
`)
	opts, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if opts.Seed != 99 {
		t.Errorf("seed = %d, want 99", opts.Seed)
	}
	if opts.TeamWidth != 400 {
		t.Errorf("team_width = %v, want 400", opts.TeamWidth)
	}
	if opts.SymmetryMode != layout.SymmetryRotation {
		t.Errorf("symmetry_mode = %s", opts.SymmetryMode)
	}
	if opts.WoolEntryDistance.Min != 10 || opts.WoolEntryDistance.Max != 20 {
		t.Errorf("wool_entry_distance = %+v", opts.WoolEntryDistance)
	}
	if opts.Islands.MaxPerTeam != 3 {
		t.Errorf("islands.max_per_team = %d, want 3", opts.Islands.MaxPerTeam)
	}

	// Keys absent from the file keep their defaults.
	def := woolgen.DefaultOptions()
	if opts.TeamHeight != def.TeamHeight {
		t.Errorf("team_height = %v, want default %v", opts.TeamHeight, def.TeamHeight)
	}
	if opts.SpawnEntryDistance != def.SpawnEntryDistance {
		t.Errorf("spawn_entry_distance = %+v, want default", opts.SpawnEntryDistance)
	}
	if !opts.Islands.Enabled {
		t.Error("islands.enabled lost its default")
	}
	if !opts.Routes.WoolFlanks || !opts.Routes.RushRoute {
		t.Errorf("routes = %+v, want defaults", opts.Routes)
	}
}

func TestLoadEmptyFileYieldsDefaults(t *testing.T) {
	path := writeConfig(t, "")
	opts, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if opts != woolgen.DefaultOptions() {
		t.Errorf("empty config produced %+v, want defaults", opts)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %v, want FILE_NOT_FOUND", errors.GetCode(err))
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfig(t, "seed = [not toml")
	_, err := Load(path)
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error code = %v, want INVALID_FORMAT", errors.GetCode(err))
	}
}

func TestLoadFeedsGenerate(t *testing.T) {
	path := writeConfig(t, `
seed = 7
num_teams = 4
team_width = 200
team_height = 200
`)
	opts, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	m, err := woolgen.Generate(opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Teams) != 5 {
		t.Errorf("got %d team entries, want 5", len(m.Teams))
	}
}
