// Package config loads generation options from TOML files.
//
// Absent keys keep their defaults, so a config file only needs to name the
// options it changes:
//
//	seed = 42
//	team_width = 300
//	team_height = 200
//
//	[islands]
//	enabled = false
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/woolforge/woolgen/pkg/errors"
	"github.com/woolforge/woolgen/pkg/layout"
	"github.com/woolforge/woolgen/pkg/woolgen"
)

// File is the on-disk TOML shape of [woolgen.Options].
type File struct {
	Seed             int64   `toml:"seed"`
	TeamWidth        float64 `toml:"team_width"`
	TeamHeight       float64 `toml:"team_height"`
	TeamGap          float64 `toml:"team_gap"`
	LaneWidth        float64 `toml:"lane_width"`
	NumTeams         int     `toml:"num_teams"`
	WoolsPerTeam     int     `toml:"wools_per_team"`
	GridMode         string  `toml:"grid_mode"`
	SymmetryMode     string  `toml:"symmetry_mode"`
	SymmetricalTeams bool    `toml:"symmetrical_teams"`

	SpawnEntryDistance     Distance `toml:"spawn_entry_distance"`
	WoolEntryDistance      Distance `toml:"wool_entry_distance"`
	FrontlineEntryDistance Distance `toml:"frontline_entry_distance"`

	Islands Islands `toml:"islands"`
	Routes  Routes  `toml:"routes"`
}

// Distance is a [min, max] pair constraint.
type Distance struct {
	Min float64 `toml:"min"`
	Max float64 `toml:"max"`
}

// Islands mirrors [layout.IslandOptions].
type Islands struct {
	Enabled      bool `toml:"enabled"`
	MaxPerTeam   int  `toml:"max_per_team"`
	FourthColumn bool `toml:"fourth_column"`
	CenterGap    bool `toml:"center_gap"`
	EmptyZones   bool `toml:"empty_zones"`
}

// Routes mirrors [layout.RouteOptions].
type Routes struct {
	WoolFlanks bool `toml:"wool_flanks"`
	RushRoute  bool `toml:"rush_route"`
}

// Load reads a TOML config file and returns the resulting options, layered
// over [woolgen.DefaultOptions]. The returned options are not yet validated;
// callers validate via woolgen.Generate.
func Load(path string) (woolgen.Options, error) {
	f := fromOptions(woolgen.DefaultOptions())
	data, err := os.ReadFile(path)
	if err != nil {
		return woolgen.Options{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "read config %s", path)
	}
	if err := toml.Unmarshal(data, &f); err != nil {
		return woolgen.Options{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse config %s", path)
	}
	return f.Options(), nil
}

// fromOptions converts options into the file shape, used to seed defaults
// before decoding.
func fromOptions(o woolgen.Options) File {
	return File{
		Seed:             o.Seed,
		TeamWidth:        o.TeamWidth,
		TeamHeight:       o.TeamHeight,
		TeamGap:          o.TeamGap,
		LaneWidth:        o.LaneWidth,
		NumTeams:         o.NumTeams,
		WoolsPerTeam:     o.WoolsPerTeam,
		GridMode:         string(o.GridMode),
		SymmetryMode:     string(o.SymmetryMode),
		SymmetricalTeams: o.SymmetricalTeams,
		SpawnEntryDistance: Distance{
			Min: o.SpawnEntryDistance.Min, Max: o.SpawnEntryDistance.Max,
		},
		WoolEntryDistance: Distance{
			Min: o.WoolEntryDistance.Min, Max: o.WoolEntryDistance.Max,
		},
		FrontlineEntryDistance: Distance{
			Min: o.FrontlineEntryDistance.Min, Max: o.FrontlineEntryDistance.Max,
		},
		Islands: Islands{
			Enabled:      o.Islands.Enabled,
			MaxPerTeam:   o.Islands.MaxPerTeam,
			FourthColumn: o.Islands.FourthColumn,
			CenterGap:    o.Islands.CenterGap,
			EmptyZones:   o.Islands.EmptyZones,
		},
		Routes: Routes{
			WoolFlanks: o.Routes.WoolFlanks,
			RushRoute:  o.Routes.RushRoute,
		},
	}
}

// Options converts the file shape into generator options.
func (f File) Options() woolgen.Options {
	return woolgen.Options{
		Seed:             f.Seed,
		TeamWidth:        f.TeamWidth,
		TeamHeight:       f.TeamHeight,
		TeamGap:          f.TeamGap,
		LaneWidth:        f.LaneWidth,
		NumTeams:         f.NumTeams,
		WoolsPerTeam:     f.WoolsPerTeam,
		GridMode:         layout.GridMode(f.GridMode),
		SymmetryMode:     layout.SymmetryMode(f.SymmetryMode),
		SymmetricalTeams: f.SymmetricalTeams,
		SpawnEntryDistance: layout.PairConstraint{
			Min: f.SpawnEntryDistance.Min, Max: f.SpawnEntryDistance.Max,
		},
		WoolEntryDistance: layout.PairConstraint{
			Min: f.WoolEntryDistance.Min, Max: f.WoolEntryDistance.Max,
		},
		FrontlineEntryDistance: layout.PairConstraint{
			Min: f.FrontlineEntryDistance.Min, Max: f.FrontlineEntryDistance.Max,
		},
		Islands: layout.IslandOptions{
			Enabled:      f.Islands.Enabled,
			MaxPerTeam:   f.Islands.MaxPerTeam,
			FourthColumn: f.Islands.FourthColumn,
			CenterGap:    f.Islands.CenterGap,
			EmptyZones:   f.Islands.EmptyZones,
		},
		Routes: layout.RouteOptions{
			WoolFlanks: f.Routes.WoolFlanks,
			RushRoute:  f.Routes.RushRoute,
		},
	}
}
