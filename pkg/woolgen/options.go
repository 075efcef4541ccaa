package woolgen

import (
	"github.com/charmbracelet/log"

	"github.com/woolforge/woolgen/pkg/errors"
	"github.com/woolforge/woolgen/pkg/layout"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Config Files
// =============================================================================

const (
	// MinTeamWidth is the absolute minimum territory width. Narrower
	// territories are rejected before any randomness is consumed.
	MinTeamWidth = 80.0

	// DefaultTeamWidth is the default territory width per team.
	DefaultTeamWidth = 300.0

	// DefaultTeamHeight is the default territory height per team.
	DefaultTeamHeight = 200.0

	// DefaultTeamGap is the default distance between opposing territories.
	DefaultTeamGap = 40.0

	// DefaultLaneWidth is the default corridor width. It doubles as the
	// placement inset so points leave room for their lanes.
	DefaultLaneWidth = 8.0

	// DefaultSeed is the default random seed.
	DefaultSeed = 1
)

// DefaultPairDistance is the default objective-entry distance constraint.
var DefaultPairDistance = layout.PairConstraint{Min: 12, Max: 28}

// Options configures one generation run. The zero value is not usable; use
// DefaultOptions or fill required fields and call ValidateAndSetDefaults.
type Options struct {
	// Territory dimensions (all positive, TeamWidth >= MinTeamWidth).
	TeamWidth  float64
	TeamHeight float64
	TeamGap    float64
	LaneWidth  float64

	// Seed drives all randomness. Identical seed and options reproduce the
	// exact layout.
	Seed int64

	// GridMode selects shared or per-row column cuts.
	GridMode layout.GridMode

	// SymmetryMode selects the opposing-team transform on 2-team maps.
	SymmetryMode layout.SymmetryMode

	// SymmetricalTeams requests an internal mirror axis within each
	// territory. Forces GridMode to standard.
	SymmetricalTeams bool

	// Objective-entry distance constraints.
	SpawnEntryDistance     layout.PairConstraint
	WoolEntryDistance      layout.PairConstraint
	FrontlineEntryDistance layout.PairConstraint

	// Islands configures the optional island pass.
	Islands layout.IslandOptions

	// Routes toggles the route enhancement passes.
	Routes layout.RouteOptions

	// NumTeams is 2 or 4.
	NumTeams int

	// WoolsPerTeam is 1 or 2. Only configurable on 4-team maps; 2-team maps
	// always place 2.
	WoolsPerTeam int

	// Logger receives debug-level stage logging. Nil disables logging.
	Logger *log.Logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// DefaultOptions returns a ready-to-generate 2-team configuration.
func DefaultOptions() Options {
	return Options{
		TeamWidth:              DefaultTeamWidth,
		TeamHeight:             DefaultTeamHeight,
		TeamGap:                DefaultTeamGap,
		LaneWidth:              DefaultLaneWidth,
		Seed:                   DefaultSeed,
		GridMode:               layout.GridStandard,
		SymmetryMode:           layout.SymmetryMirror,
		SpawnEntryDistance:     DefaultPairDistance,
		WoolEntryDistance:      DefaultPairDistance,
		FrontlineEntryDistance: DefaultPairDistance,
		Routes: layout.RouteOptions{
			WoolFlanks: true,
			RushRoute:  true,
		},
		Islands: layout.IslandOptions{
			Enabled:      true,
			MaxPerTeam:   6,
			FourthColumn: true,
			CenterGap:    true,
			EmptyZones:   true,
		},
		NumTeams:     2,
		WoolsPerTeam: 2,
	}
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once. The infeasible-territory check runs here, before the
// random stream is created.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if o.NumTeams == 0 {
		o.NumTeams = 2
	}
	if o.NumTeams != 2 && o.NumTeams != 4 {
		return errors.New(errors.ErrCodeInvalidConfig, "numTeams must be 2 or 4, got %d", o.NumTeams)
	}

	if o.TeamWidth <= 0 || o.TeamHeight <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig,
			"team dimensions must be positive, got %.1f x %.1f", o.TeamWidth, o.TeamHeight)
	}
	if o.TeamGap < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "teamGap must not be negative, got %.1f", o.TeamGap)
	}
	if o.LaneWidth <= 0 {
		o.LaneWidth = DefaultLaneWidth
	}
	if o.TeamWidth < MinTeamWidth {
		return errors.New(errors.ErrCodeInfeasibleTerritory,
			"teamWidth %.1f is below the minimum of %.1f", o.TeamWidth, MinTeamWidth)
	}
	if o.NumTeams == 4 && o.TeamWidth != o.TeamHeight {
		return errors.New(errors.ErrCodeInvalidConfig,
			"4-team maps need square territories, got %.1f x %.1f", o.TeamWidth, o.TeamHeight)
	}

	if o.GridMode == "" {
		o.GridMode = layout.GridStandard
	}
	if o.GridMode != layout.GridStandard && o.GridMode != layout.GridRowIndependent {
		return errors.New(errors.ErrCodeInvalidConfig, "unknown grid mode %q", o.GridMode)
	}
	// Independent columns would break the internal mirror axis.
	if o.SymmetricalTeams {
		o.GridMode = layout.GridStandard
	}

	if o.SymmetryMode == "" {
		o.SymmetryMode = layout.SymmetryMirror
	}
	if o.SymmetryMode != layout.SymmetryMirror && o.SymmetryMode != layout.SymmetryRotation {
		return errors.New(errors.ErrCodeInvalidConfig, "unknown symmetry mode %q", o.SymmetryMode)
	}

	if o.NumTeams == 2 {
		o.WoolsPerTeam = 2
	} else {
		if o.WoolsPerTeam == 0 {
			o.WoolsPerTeam = 2
		}
		if o.WoolsPerTeam != 1 && o.WoolsPerTeam != 2 {
			return errors.New(errors.ErrCodeInvalidConfig, "woolsPerTeam must be 1 or 2, got %d", o.WoolsPerTeam)
		}
	}

	for _, c := range []struct {
		name string
		v    layout.PairConstraint
	}{
		{"spawnEntryDistance", o.SpawnEntryDistance},
		{"woolEntryDistance", o.WoolEntryDistance},
		{"frontlineEntryDistance", o.FrontlineEntryDistance},
	} {
		if c.v.Min < 0 || c.v.Max < c.v.Min {
			return errors.New(errors.ErrCodeInvalidConfig,
				"%s must satisfy 0 <= min <= max, got [%.1f, %.1f]", c.name, c.v.Min, c.v.Max)
		}
	}

	if o.Islands.Enabled && o.Islands.MaxPerTeam < 0 {
		return errors.New(errors.ErrCodeInvalidConfig,
			"islandGeneration.maxIslandsPerTeam must not be negative, got %d", o.Islands.MaxPerTeam)
	}

	o.validated = true
	return nil
}
