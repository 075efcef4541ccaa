// Package export serializes generated map layouts.
//
// The generator itself performs no serialization; this package is the
// external collaborator that turns a [layout.MapLayout] into an exported
// snapshot (flattened JSON) or a Graphviz DOT / SVG rendering of the
// navigation graph.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/woolforge/woolgen/pkg/geo"
	"github.com/woolforge/woolgen/pkg/layout"
)

// Snapshot is the flattened JSON document shape of a map layout.
type Snapshot struct {
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	TeamGap   float64 `json:"teamGap"`
	LaneWidth float64 `json:"laneWidth"`

	// Grids holds each real team's 3x3 zone grid. The shared mid "team"
	// owns no territory and has no grid entry.
	Grids map[string][3][3]layout.Zone `json:"grids"`

	Nodes []SnapshotNode `json:"nodes"`
	Edges []SnapshotEdge `json:"edges"`
}

// SnapshotNode is one flattened strategic point.
type SnapshotNode struct {
	ID   string  `json:"id"`
	Type string  `json:"type"`
	Team string  `json:"team"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// SnapshotEdge is one flattened connection.
type SnapshotEdge struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Type      string `json:"type"`
	Purpose   string `json:"purpose,omitempty"`
	Rush      bool   `json:"rush,omitempty"`
	CrossTeam bool   `json:"crossTeam,omitempty"`
}

// FromLayout flattens a map layout into its snapshot form. Nodes and edges
// keep the layout's team-then-insertion order, so snapshots of the same seed
// diff cleanly.
func FromLayout(m *layout.MapLayout) Snapshot {
	s := Snapshot{
		Width:     m.Width,
		Height:    m.Height,
		TeamGap:   m.TeamGap,
		LaneWidth: m.LaneWidth,
		Grids:     make(map[string][3][3]layout.Zone),
	}
	for team, tl := range m.Teams {
		if team != layout.TeamMid {
			s.Grids[string(team)] = tl.Grid
		}
	}
	for _, n := range m.AllNodes() {
		s.Nodes = append(s.Nodes, SnapshotNode{
			ID:   n.ID,
			Type: string(n.Type),
			Team: string(n.Team),
			X:    n.Pos.X,
			Y:    n.Pos.Y,
		})
	}
	for _, e := range m.AllEdges() {
		s.Edges = append(s.Edges, SnapshotEdge{
			From:      e.From,
			To:        e.To,
			Type:      string(e.Kind),
			Purpose:   e.Purpose,
			Rush:      e.RushRoute,
			CrossTeam: e.CrossTeam,
		})
	}
	return s
}

// Layout reconstructs a map layout from the snapshot. Edges are attributed
// to the team of their From node; edge polylines are rebuilt from the node
// positions.
func (s Snapshot) Layout() (*layout.MapLayout, error) {
	m := &layout.MapLayout{
		Width:     s.Width,
		Height:    s.Height,
		TeamGap:   s.TeamGap,
		LaneWidth: s.LaneWidth,
		Teams:     make(map[layout.Team]*layout.TeamLayout),
	}

	teamOf := make(map[string]layout.Team, len(s.Nodes))
	posOf := make(map[string]geo.Point, len(s.Nodes))
	get := func(team layout.Team) *layout.TeamLayout {
		tl, ok := m.Teams[team]
		if !ok {
			tl = &layout.TeamLayout{}
			if g, ok := s.Grids[string(team)]; ok {
				tl.Grid = g
			}
			m.Teams[team] = tl
		}
		return tl
	}

	for _, n := range s.Nodes {
		team := layout.Team(n.Team)
		node := layout.Node{
			ID:   n.ID,
			Type: layout.NodeType(n.Type),
			Pos:  geo.Point{X: n.X, Y: n.Y},
			Team: team,
		}
		tl := get(team)
		tl.Nodes = append(tl.Nodes, node)
		teamOf[n.ID] = team
		posOf[n.ID] = node.Pos
	}

	for _, e := range s.Edges {
		team, ok := teamOf[e.From]
		if !ok {
			return nil, fmt.Errorf("edge %s -> %s: unknown from node", e.From, e.To)
		}
		if _, ok := teamOf[e.To]; !ok {
			return nil, fmt.Errorf("edge %s -> %s: unknown to node", e.From, e.To)
		}
		tl := get(team)
		tl.Edges = append(tl.Edges, layout.Edge{
			From:      e.From,
			To:        e.To,
			Line:      [2]geo.Point{posOf[e.From], posOf[e.To]},
			Kind:      layout.EdgeKind(e.Type),
			RushRoute: e.Rush,
			CrossTeam: e.CrossTeam,
			Purpose:   e.Purpose,
		})
	}

	return m, m.Validate()
}

// MarshalSnapshot converts a map layout to indented JSON bytes.
func MarshalSnapshot(m *layout.MapLayout) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteSnapshot(m, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteSnapshot writes a map layout as JSON to an io.Writer.
func WriteSnapshot(m *layout.MapLayout, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromLayout(m)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteSnapshotFile writes a map layout to a JSON file.
// The file is created with 0644 permissions.
func WriteSnapshotFile(m *layout.MapLayout, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteSnapshot(m, f)
}

// ReadSnapshot decodes a snapshot from an io.Reader.
func ReadSnapshot(r io.Reader) (Snapshot, error) {
	var s Snapshot
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return Snapshot{}, fmt.Errorf("decode: %w", err)
	}
	return s, nil
}

// ReadSnapshotFile reads a snapshot JSON file.
func ReadSnapshotFile(path string) (Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadSnapshot(f)
}
