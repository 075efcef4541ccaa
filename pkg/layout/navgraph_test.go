package layout

import (
	"testing"

	"github.com/woolforge/woolgen/pkg/geo"
	"github.com/woolforge/woolgen/pkg/rng"
)

// fixedNodes builds a small hand-placed team for exact edge assertions.
func fixedNodes() []Node {
	c := NewCounters()
	mk := func(typ NodeType, x, y float64) Node {
		return Node{ID: c.NextID(TeamRed, typ), Type: typ, Pos: geo.Point{X: x, Y: y}, Team: TeamRed}
	}
	return []Node{
		mk(Wool, 5, 10),
		mk(WoolEntry, 15, 10),
		mk(Spawn, 10, 50),
		mk(SpawnEntry, 20, 50),
		mk(Hub, 50, 10),
		mk(Hub, 50, 50),
		mk(Hub, 50, 90),
		mk(FrontLine, 95, 50),
		mk(FrontLineEntry, 85, 50),
	}
}

func findEdge(edges []Edge, from, to string) *Edge {
	for i := range edges {
		if edges[i].From == from && edges[i].To == to {
			return &edges[i]
		}
	}
	return nil
}

func TestBuildEdges(t *testing.T) {
	edges := BuildEdges(fixedNodes(), rng.New(1))

	want := [][2]string{
		{"red-sp-1", "red-se-1"},  // spawn exit
		{"red-se-1", "red-hb-2"},  // main street to the middle hub
		{"red-hb-1", "red-we-1"},  // wool entry's nearest hub
		{"red-we-1", "red-wl-1"},  // entry to wool
		{"red-hb-2", "red-fe-1"},  // frontline entry's nearest hub
		{"red-hb-1", "red-hb-2"},  // hub spine
		{"red-hb-2", "red-hb-3"},  // hub spine
		{"red-fe-1", "red-fl-1"},  // entry to frontline
	}
	if len(edges) != len(want) {
		t.Fatalf("got %d edges, want %d: %+v", len(edges), len(want), edges)
	}
	for _, w := range want {
		if findEdge(edges, w[0], w[1]) == nil {
			t.Errorf("missing edge %s -> %s", w[0], w[1])
		}
	}
}

func TestBuildEdgesMainStreetIsMiddleHub(t *testing.T) {
	// The middle hub by y, not by insertion order, anchors the main street.
	nodes := fixedNodes()
	// Rearrange hub positions so the y-middle hub is the last-inserted one.
	nodes[5].Pos = geo.Point{X: 50, Y: 90} // red-hb-2
	nodes[6].Pos = geo.Point{X: 50, Y: 50} // red-hb-3
	edges := BuildEdges(nodes, rng.New(1))
	if findEdge(edges, "red-se-1", "red-hb-3") == nil {
		t.Error("main street does not target the y-middle hub")
	}
}

func TestBuildEdgesBridgeable(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		edges := BuildEdges(fixedNodes(), rng.New(seed))
		bridgeable := 0
		for _, e := range edges {
			if e.Kind == Bridgeable {
				bridgeable++
				if findEdge(edges, e.From, e.To).Purpose != PurposeFrontAccess {
					t.Errorf("seed %d: bridgeable edge %s -> %s is not a front access edge", seed, e.From, e.To)
				}
			}
		}
		// Only one hub->frontline-entry edge exists in the fixture, so
		// exactly one becomes bridgeable.
		if bridgeable != 1 {
			t.Errorf("seed %d: %d bridgeable edges, want 1", seed, bridgeable)
		}
	}
}

func TestBuildEdgesGeometry(t *testing.T) {
	edges := BuildEdges(fixedNodes(), rng.New(1))
	e := findEdge(edges, "red-sp-1", "red-se-1")
	if e == nil {
		t.Fatal("spawn exit edge missing")
	}
	if e.Line[0] != (geo.Point{X: 10, Y: 50}) || e.Line[1] != (geo.Point{X: 20, Y: 50}) {
		t.Errorf("edge polyline = %+v", e.Line)
	}
}

func TestNearestFirstWinsTieBreak(t *testing.T) {
	p := geo.Point{X: 0, Y: 0}
	candidates := []Node{
		{ID: "a", Pos: geo.Point{X: 10, Y: 0}},
		{ID: "b", Pos: geo.Point{X: -10, Y: 0}}, // same distance, later index
		{ID: "c", Pos: geo.Point{X: 0, Y: 20}},
	}
	if got := nearestNode(p, candidates); got.ID != "a" {
		t.Errorf("tie went to %s, want first-inserted a", got.ID)
	}
	if got := nearestIndex(p, nil); got != -1 {
		t.Errorf("empty candidates returned %d, want -1", got)
	}
}
