package export

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/woolforge/woolgen/pkg/layout"
)

// Node fill colors per strategic point type.
var typeColors = map[layout.NodeType]string{
	layout.Spawn:          "palegreen",
	layout.SpawnEntry:     "darkseagreen1",
	layout.Wool:           "gold",
	layout.WoolEntry:      "lightyellow",
	layout.FrontLine:      "lightcoral",
	layout.FrontLineEntry: "mistyrose",
	layout.Hub:            "lightblue",
	layout.CenterHub:      "plum",
	layout.Island:         "wheat",
	layout.Helper:         "whitesmoke",
}

// ToDOT converts a map layout's navigation graph to Graphviz DOT format.
// Node positions are pinned to their map coordinates (neato -n layout), so
// the rendering matches the generated geometry. Bridgeable edges are dashed,
// rush routes bold.
func ToDOT(m *layout.MapLayout) string {
	var buf bytes.Buffer
	buf.WriteString("graph wool {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fontsize=8, fixedsize=true, width=0.5];\n")
	buf.WriteString("\n")

	for _, n := range m.AllNodes() {
		fill := typeColors[n.Type]
		if fill == "" {
			fill = "white"
		}
		// Graphviz y grows upward; flip so the render matches map space.
		fmt.Fprintf(&buf, "  %q [pos=\"%.1f,%.1f!\", fillcolor=%s, label=%q];\n",
			n.ID, n.Pos.X, m.Height-n.Pos.Y, fill, dotLabel(n))
	}

	buf.WriteString("\n")
	for _, e := range m.AllEdges() {
		var attrs []string
		if e.Kind == layout.Bridgeable {
			attrs = append(attrs, "style=dashed")
		}
		if e.RushRoute {
			attrs = append(attrs, "penwidth=2.5", "color=red")
		}
		if e.CrossTeam {
			attrs = append(attrs, "color=purple")
		}
		if len(attrs) > 0 {
			fmt.Fprintf(&buf, "  %q -- %q [%s];\n", e.From, e.To, strings.Join(attrs, ", "))
		} else {
			fmt.Fprintf(&buf, "  %q -- %q;\n", e.From, e.To)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func dotLabel(n layout.Node) string {
	return n.Type.Abbrev() + strings.TrimPrefix(n.ID, string(n.Team)+"-"+n.Type.Abbrev())
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
