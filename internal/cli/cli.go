// Package cli implements the woolgen command-line interface.
//
// This package provides commands for generating capture-the-wool map
// layouts, inspecting and rendering exported layout files, and browsing
// seeds interactively. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - generate: Generate a map layout and export it as JSON
//   - inspect: Summarize an exported layout file
//   - render: Render an exported layout to DOT or SVG
//   - browse: Interactively browse seeds and pick a layout
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/woolforge/woolgen/pkg/buildinfo"
	"github.com/woolforge/woolgen/pkg/config"
	"github.com/woolforge/woolgen/pkg/woolgen"
)

// =============================================================================
// Constants
// =============================================================================

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "woolgen",
		Short:        "Woolgen generates symmetric capture-the-wool map layouts",
		Long:         `Woolgen is a CLI tool for generating deterministic, team-symmetric capture-the-wool map layouts: strategic points, navigation graphs, and optional route and island enhancements, all reproducible from a seed.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Options Helpers
// =============================================================================

// loadOptions builds generator options from an optional config file. With no
// file it starts from the defaults; flags are applied on top by the caller.
func loadOptions(configPath string) (woolgen.Options, error) {
	if configPath == "" {
		return woolgen.DefaultOptions(), nil
	}
	return config.Load(configPath)
}
