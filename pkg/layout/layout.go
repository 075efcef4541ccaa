// Package layout defines the map layout data model and the generation passes
// that build it: territory partitioning, strategic point placement, navigation
// graph construction, route enhancement, symmetry derivation, and island
// chains.
//
// Every pass is a value-returning function that takes the random stream as an
// explicit parameter. The passes consume randomness in a fixed documented
// order; with the same stream state and inputs they produce identical output,
// which makes each pass independently testable and the whole pipeline
// reproducible from a seed.
package layout

import (
	"errors"
	"fmt"

	"github.com/woolforge/woolgen/pkg/geo"
)

var (
	// ErrDuplicateNodeID is returned by [MapLayout.Validate] when two nodes
	// share an id. Node ids must be unique across the whole layout.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownEdgeEndpoint is returned by [MapLayout.Validate] when an edge
	// references a node id that does not exist in the layout.
	ErrUnknownEdgeEndpoint = errors.New("unknown edge endpoint")
)

// Team identifies one side of the map. TeamMid owns nodes shared by all
// teams, such as the center hubs on four-team maps.
type Team string

// Teams in generation order. TeamRed is always the reference team whose
// territory is generated from randomness; the others are derived from it.
const (
	TeamRed    Team = "red"
	TeamBlue   Team = "blue"
	TeamGreen  Team = "green"
	TeamYellow Team = "yellow"
	TeamMid    Team = "mid"
)

// NodeType classifies a strategic point.
type NodeType string

const (
	Spawn          NodeType = "spawn"
	SpawnEntry     NodeType = "spawn-entry"
	Wool           NodeType = "wool"
	WoolEntry      NodeType = "wool-entry"
	FrontLine      NodeType = "frontline"
	FrontLineEntry NodeType = "frontline-entry"
	Hub            NodeType = "hub"
	CenterHub      NodeType = "center-hub"
	Island         NodeType = "island"
	Helper         NodeType = "helper"
)

// Abbrev returns the short type tag used inside node ids.
func (t NodeType) Abbrev() string {
	switch t {
	case Spawn:
		return "sp"
	case SpawnEntry:
		return "se"
	case Wool:
		return "wl"
	case WoolEntry:
		return "we"
	case FrontLine:
		return "fl"
	case FrontLineEntry:
		return "fe"
	case Hub:
		return "hb"
	case CenterHub:
		return "ch"
	case Island:
		return "is"
	case Helper:
		return "hp"
	}
	return string(t)
}

// Counters carries the per-(team, type) id sequence numbers for one
// generation run. It is passed explicitly into every placement call so id
// allocation has no package-level state.
type Counters map[string]int

// NewCounters creates an empty counter table.
func NewCounters() Counters { return Counters{} }

// NextID allocates the next id for a (team, type) pair. Ids have the shape
// {team}-{abbrev}-{seq} with seq strictly increasing per pair, so they are
// unique within a layout and stable for diffing across regenerations of the
// same seed.
func (c Counters) NextID(team Team, typ NodeType) string {
	key := string(team) + "|" + string(typ)
	c[key]++
	return fmt.Sprintf("%s-%s-%d", team, typ.Abbrev(), c[key])
}

// Node is a placed strategic point.
type Node struct {
	ID   string
	Type NodeType
	Pos  geo.Point
	Team Team
}

// EdgeKind distinguishes normal connections from harder tactical gaps.
type EdgeKind string

const (
	// Walkable edges are ordinary traversable connections.
	Walkable EdgeKind = "walkable"
	// Bridgeable edges mark gaps a team must bridge or jump to cross.
	Bridgeable EdgeKind = "bridgeable"
)

// Edge connects two nodes. Edges are authored directed but represent an
// undirected traversable connection. Line is the straight segment between the
// endpoint positions at creation time; it is not recomputed if nodes move.
type Edge struct {
	From      string
	To        string
	Line      [2]geo.Point
	Kind      EdgeKind
	RushRoute bool
	CrossTeam bool
	Purpose   string
}

// Zone is one cell of the 3x3 territory grid.
type Zone struct {
	geo.Rect
	Row int `json:"row"`
	Col int `json:"col"`
}

// Grid rows are Top/Mid/Bottom and columns Rear/Mid/Front, indexed
// [row][col]. The front column faces the opposing territory.
type Grid [3][3]Zone

// TeamLayout is the complete per-team subgraph.
type TeamLayout struct {
	Grid  Grid
	Nodes []Node
	Edges []Edge
}

// Node returns the team's node with the given id, or nil.
func (t *TeamLayout) Node(id string) *Node {
	for i := range t.Nodes {
		if t.Nodes[i].ID == id {
			return &t.Nodes[i]
		}
	}
	return nil
}

// NodesOfType returns the team's nodes of the given type in insertion order.
// Insertion order is part of the generation contract: nearest-neighbor
// searches break ties by it.
func (t *TeamLayout) NodesOfType(typ NodeType) []Node {
	var out []Node
	for _, n := range t.Nodes {
		if n.Type == typ {
			out = append(out, n)
		}
	}
	return out
}

// MapLayout is the generation result. It is never mutated after the run
// completes.
type MapLayout struct {
	Width     float64
	Height    float64
	TeamGap   float64
	LaneWidth float64
	Teams     map[Team]*TeamLayout
}

// AllNodes returns every node in the layout, grouped by team in a fixed team
// order (red, blue, green, yellow, mid).
func (m *MapLayout) AllNodes() []Node {
	var out []Node
	for _, team := range teamOrder {
		if tl, ok := m.Teams[team]; ok {
			out = append(out, tl.Nodes...)
		}
	}
	return out
}

// AllEdges returns every edge in the layout in the same team order as
// [MapLayout.AllNodes].
func (m *MapLayout) AllEdges() []Edge {
	var out []Edge
	for _, team := range teamOrder {
		if tl, ok := m.Teams[team]; ok {
			out = append(out, tl.Edges...)
		}
	}
	return out
}

var teamOrder = []Team{TeamRed, TeamBlue, TeamGreen, TeamYellow, TeamMid}

// Validate checks the layout's structural invariants: node ids are unique
// across the whole layout and every edge endpoint refers to an existing node.
// Edges may reference nodes owned by another team (center hubs), so endpoint
// resolution is layout-wide.
func (m *MapLayout) Validate() error {
	ids := make(map[string]bool)
	for _, n := range m.AllNodes() {
		if ids[n.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateNodeID, n.ID)
		}
		ids[n.ID] = true
	}
	for _, e := range m.AllEdges() {
		if !ids[e.From] {
			return fmt.Errorf("%w: %s -> %s (from)", ErrUnknownEdgeEndpoint, e.From, e.To)
		}
		if !ids[e.To] {
			return fmt.Errorf("%w: %s -> %s (to)", ErrUnknownEdgeEndpoint, e.From, e.To)
		}
	}
	return nil
}
