package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/woolforge/woolgen/pkg/export"
	"github.com/woolforge/woolgen/pkg/layout"
	"github.com/woolforge/woolgen/pkg/woolgen"
)

// generateCommand creates the generate command for producing map layouts.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		configPath string
		output     string
	)

	// Flag targets. Values are copied onto the options after config loading
	// so that explicitly set flags win over the config file.
	var (
		seed         int64
		teamWidth    float64
		teamHeight   float64
		teamGap      float64
		laneWidth    float64
		numTeams     int
		wools        int
		gridMode     string
		symmetryMode string
		symmetrical  bool
		noRoutes     bool
		noIslands    bool
		maxIslands   int
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a map layout and export it as JSON",
		Long: `Generate a capture-the-wool map layout.

The same seed and options always produce the same layout. Options come from
defaults, then an optional TOML config file (--config), then any explicitly
set flags.

Use 'render' to turn the exported JSON into a DOT or SVG picture, and
'inspect' to summarize it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(configPath)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("seed") {
				opts.Seed = seed
			}
			if flags.Changed("team-width") {
				opts.TeamWidth = teamWidth
			}
			if flags.Changed("team-height") {
				opts.TeamHeight = teamHeight
			}
			if flags.Changed("team-gap") {
				opts.TeamGap = teamGap
			}
			if flags.Changed("lane-width") {
				opts.LaneWidth = laneWidth
			}
			if flags.Changed("teams") {
				opts.NumTeams = numTeams
			}
			if flags.Changed("wools") {
				opts.WoolsPerTeam = wools
			}
			if flags.Changed("grid-mode") {
				opts.GridMode = layout.GridMode(gridMode)
			}
			if flags.Changed("symmetry") {
				opts.SymmetryMode = layout.SymmetryMode(symmetryMode)
			}
			if flags.Changed("symmetrical-teams") {
				opts.SymmetricalTeams = symmetrical
			}
			if noRoutes {
				opts.Routes = layout.RouteOptions{}
			}
			if noIslands {
				opts.Islands = layout.IslandOptions{}
			}
			if flags.Changed("max-islands") {
				opts.Islands.MaxPerTeam = maxIslands
			}

			return c.runGenerate(opts, output)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file")
	cmd.Flags().StringVarP(&output, "output", "o", "map.json", "output file")

	cmd.Flags().Int64Var(&seed, "seed", woolgen.DefaultSeed, "random seed")
	cmd.Flags().Float64Var(&teamWidth, "team-width", woolgen.DefaultTeamWidth, "territory width per team")
	cmd.Flags().Float64Var(&teamHeight, "team-height", woolgen.DefaultTeamHeight, "territory height per team")
	cmd.Flags().Float64Var(&teamGap, "team-gap", woolgen.DefaultTeamGap, "gap between opposing territories")
	cmd.Flags().Float64Var(&laneWidth, "lane-width", woolgen.DefaultLaneWidth, "corridor width")
	cmd.Flags().IntVar(&numTeams, "teams", 2, "number of teams: 2 or 4")
	cmd.Flags().IntVar(&wools, "wools", 2, "wools per team (4-team maps only)")
	cmd.Flags().StringVar(&gridMode, "grid-mode", string(layout.GridStandard), "grid mode: standard, row-independent")
	cmd.Flags().StringVar(&symmetryMode, "symmetry", string(layout.SymmetryMirror), "opposing-team symmetry: mirror, rotation")
	cmd.Flags().BoolVar(&symmetrical, "symmetrical-teams", false, "mirror each territory about its own horizontal axis")
	cmd.Flags().BoolVar(&noRoutes, "no-routes", false, "skip route enhancements (flanks, rush route)")
	cmd.Flags().BoolVar(&noIslands, "no-islands", false, "skip island generation")
	cmd.Flags().IntVar(&maxIslands, "max-islands", 6, "island budget per team")

	return cmd
}

// runGenerate generates a layout and writes the snapshot.
func (c *CLI) runGenerate(opts woolgen.Options, output string) error {
	opts.Logger = c.Logger

	prog := newProgress(c.Logger)
	m, err := woolgen.Generate(opts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Generated layout (seed %d)", opts.Seed))

	if err := export.WriteSnapshotFile(m, output); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	printSuccess("Map layout generated")
	printStats(len(m.AllNodes()), len(m.AllEdges()))
	printFile(output)
	printNextStep("Render it", fmt.Sprintf("woolgen render %s -o map.svg", output))
	return nil
}
