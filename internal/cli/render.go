package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/woolforge/woolgen/pkg/export"
)

// Supported render formats.
const (
	formatSVG = "svg"
	formatDOT = "dot"
)

// renderCommand creates the render command for drawing layout files.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output string
		format string
	)

	cmd := &cobra.Command{
		Use:   "render [map.json]",
		Short: "Render an exported map layout to DOT or SVG",
		Long: `Render an exported map layout.

The navigation graph is drawn with node positions pinned to their map
coordinates, so the picture matches the generated geometry. Bridgeable
crossings are dashed and rush routes drawn bold.

Formats:
  svg  rendered picture via Graphviz (default)
  dot  Graphviz DOT source`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatSVG && format != formatDOT {
				return fmt.Errorf("unknown format %q (want svg or dot)", format)
			}
			if output == "" {
				output = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + "." + format
			}
			return c.runRender(args[0], output, format)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: input name with new extension)")
	cmd.Flags().StringVarP(&format, "format", "f", formatSVG, "output format: svg, dot")

	return cmd
}

// runRender loads a snapshot and writes the requested rendering.
func (c *CLI) runRender(input, output, format string) error {
	s, err := export.ReadSnapshotFile(input)
	if err != nil {
		return fmt.Errorf("load layout %s: %w", input, err)
	}
	m, err := s.Layout()
	if err != nil {
		return fmt.Errorf("invalid layout %s: %w", input, err)
	}

	dot := export.ToDOT(m)

	var data []byte
	switch format {
	case formatDOT:
		data = []byte(dot)
	case formatSVG:
		spin := newSpinner("Rendering with Graphviz...")
		spin.Start()
		data, err = export.RenderSVG(dot)
		spin.Stop()
		if err != nil {
			return fmt.Errorf("render SVG: %w", err)
		}
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	printSuccess("Rendered %s layout", format)
	printStats(len(m.AllNodes()), len(m.AllEdges()))
	printFile(output)
	return nil
}
