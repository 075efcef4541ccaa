package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/woolforge/woolgen/pkg/export"
	"github.com/woolforge/woolgen/pkg/layout"
	"github.com/woolforge/woolgen/pkg/woolgen"
)

// browseCommand creates the browse command for interactive seed exploration.
func (c *CLI) browseCommand() *cobra.Command {
	var (
		configPath string
		output     string
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Interactively browse seeds and pick a layout",
		Long: `Browse seeds interactively.

Steps through seeds with the arrow keys, regenerating the layout for each
one and showing its census. Press enter to export the current seed's layout
and quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(configPath)
			if err != nil {
				return err
			}
			return c.runBrowse(opts, output)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file")
	cmd.Flags().StringVarP(&output, "output", "o", "map.json", "output file for the selected seed")

	return cmd
}

// runBrowse runs the seed browser and exports the selection, if any.
func (c *CLI) runBrowse(opts woolgen.Options, output string) error {
	model, err := newSeedBrowserModel(opts)
	if err != nil {
		return err
	}

	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return fmt.Errorf("run browser: %w", err)
	}

	m, ok := final.(seedBrowserModel)
	if !ok || !m.selected {
		printInfo("No seed selected")
		return nil
	}

	if err := export.WriteSnapshotFile(m.current, output); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	printSuccess("Exported seed %d", m.opts.Seed)
	printFile(output)
	return nil
}

// =============================================================================
// seedBrowserModel - Interactive seed stepping
// =============================================================================

// seedBrowserModel is the bubbletea model for the seed browser. Every seed
// change regenerates the layout; generation is fast enough to do inline.
type seedBrowserModel struct {
	opts     woolgen.Options
	current  *layout.MapLayout
	genErr   error
	selected bool
}

func newSeedBrowserModel(opts woolgen.Options) (seedBrowserModel, error) {
	m := seedBrowserModel{opts: opts}
	m.regenerate()
	if m.genErr != nil {
		// An error on the initial seed means the options themselves are
		// bad; stepping seeds will not fix that.
		return m, m.genErr
	}
	return m, nil
}

func (m *seedBrowserModel) regenerate() {
	m.current, m.genErr = woolgen.Generate(m.opts)
}

func (m seedBrowserModel) Init() tea.Cmd {
	return nil
}

func (m seedBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right", "l", "up", "k":
			m.opts.Seed++
			m.regenerate()
		case "left", "h", "down", "j":
			if m.opts.Seed > 1 {
				m.opts.Seed--
				m.regenerate()
			}
		case "pgup":
			m.opts.Seed += 10
			m.regenerate()
		case "pgdown":
			if m.opts.Seed > 10 {
				m.opts.Seed -= 10
			} else {
				m.opts.Seed = 1
			}
			m.regenerate()
		case "enter":
			if m.genErr == nil {
				m.selected = true
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m seedBrowserModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Seed Browser"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("←/→ step seed  pgup/pgdn ±10  ⏎ export  q quit"))
	b.WriteString("\n\n")

	b.WriteString(StyleHighlight.Render(fmt.Sprintf("seed %d", m.opts.Seed)))
	b.WriteString("\n\n")

	if m.genErr != nil {
		b.WriteString(StyleWarning.Render(m.genErr.Error()))
		b.WriteString("\n")
		return b.String()
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Team", "Nodes", "Edges", "Frontlines", "Islands").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	for _, team := range []layout.Team{
		layout.TeamRed, layout.TeamBlue, layout.TeamGreen, layout.TeamYellow, layout.TeamMid,
	} {
		tl, ok := m.current.Teams[team]
		if !ok {
			continue
		}
		t.Row(
			string(team),
			fmt.Sprintf("%d", len(tl.Nodes)),
			fmt.Sprintf("%d", len(tl.Edges)),
			fmt.Sprintf("%d", len(tl.NodesOfType(layout.FrontLine))),
			fmt.Sprintf("%d", len(tl.NodesOfType(layout.Island))),
		)
	}
	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %d nodes · %d edges",
		len(m.current.AllNodes()), len(m.current.AllEdges()))))
	b.WriteString("\n")

	return b.String()
}
