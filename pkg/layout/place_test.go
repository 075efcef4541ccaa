package layout

import (
	"math"
	"strings"
	"testing"

	"github.com/woolforge/woolgen/pkg/geo"
	"github.com/woolforge/woolgen/pkg/rng"
)

func testZone(x, y, w, h float64) Zone {
	return Zone{Rect: geo.Rect{X: x, Y: y, Width: w, Height: h}}
}

func TestPlacePairDistance(t *testing.T) {
	zone := testZone(0, 0, 200, 100)
	c := PairConstraint{Min: 10, Max: 20}
	for seed := int64(1); seed <= 100; seed++ {
		obj, entry := PlacePair(zone, c, 5, rng.New(seed))
		dx := math.Abs(entry.X - obj.X)
		if dx < c.Min-1e-9 || dx > c.Max+1e-9 {
			t.Errorf("seed %d: horizontal distance %.3f outside [%.1f, %.1f]", seed, dx, c.Min, c.Max)
		}
		inner := zone.Inset(5)
		if !inner.Contains(obj) || !inner.Contains(entry) {
			t.Errorf("seed %d: points escaped the padded zone: %+v %+v", seed, obj, entry)
		}
	}
}

func TestPlacePairNarrowZoneFallback(t *testing.T) {
	zone := testZone(0, 0, 30, 100)
	c := PairConstraint{Min: 25, Max: 40}
	obj, entry := PlacePair(zone, c, 5, rng.New(1))
	inner := zone.Inset(5)
	if obj.X != inner.X {
		t.Errorf("objective x = %.3f, want left edge %.3f", obj.X, inner.X)
	}
	if entry.X != inner.Right() {
		t.Errorf("entry x = %.3f, want right edge %.3f", entry.X, inner.Right())
	}
}

func TestPlaceInZone(t *testing.T) {
	zone := testZone(10, 20, 100, 50)
	pts := PlaceInZone(zone, 5, 4, rng.New(3))
	if len(pts) != 5 {
		t.Fatalf("got %d points, want 5", len(pts))
	}
	inner := zone.Inset(4)
	for i, p := range pts {
		if !inner.Contains(p) {
			t.Errorf("point %d %+v outside padded zone", i, p)
		}
	}
}

func placeTestGrid(t *testing.T, seed int64, symmetrical bool) Grid {
	t.Helper()
	g, err := BuildGrid(300, 200, GridStandard, symmetrical, rng.New(seed))
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func countTypes(nodes []Node) map[NodeType]int {
	counts := make(map[NodeType]int)
	for _, n := range nodes {
		counts[n.Type]++
	}
	return counts
}

func placeOpts(symmetrical bool) PlaceOptions {
	return PlaceOptions{
		SpawnEntry:  PairConstraint{Min: 10, Max: 20},
		WoolEntry:   PairConstraint{Min: 10, Max: 20},
		FrontEntry:  PairConstraint{Min: 10, Max: 20},
		Padding:     5,
		Symmetrical: symmetrical,
		Wools:       2,
	}
}

func TestPlaceTeamNodesAsymmetricCensus(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		r := rng.New(seed)
		grid := placeTestGrid(t, seed, false)
		nodes := PlaceTeamNodes(grid, TeamRed, placeOpts(false), NewCounters(), r)
		counts := countTypes(nodes)

		if counts[Wool] != 2 || counts[WoolEntry] != 2 {
			t.Errorf("seed %d: wools %d/%d, want 2/2", seed, counts[Wool], counts[WoolEntry])
		}
		if counts[Spawn] != 1 || counts[SpawnEntry] != 1 {
			t.Errorf("seed %d: spawns %d/%d, want 1/1", seed, counts[Spawn], counts[SpawnEntry])
		}
		if counts[Hub] != 3 {
			t.Errorf("seed %d: hubs = %d, want 3", seed, counts[Hub])
		}
		if counts[FrontLine] < 2 || counts[FrontLine] > 3 {
			t.Errorf("seed %d: frontlines = %d, want 2-3", seed, counts[FrontLine])
		}
		if counts[FrontLine] != counts[FrontLineEntry] {
			t.Errorf("seed %d: frontline pairs unbalanced: %d vs %d", seed, counts[FrontLine], counts[FrontLineEntry])
		}
	}
}

func TestPlaceTeamNodesIDs(t *testing.T) {
	r := rng.New(42)
	grid := placeTestGrid(t, 42, false)
	nodes := PlaceTeamNodes(grid, TeamRed, placeOpts(false), NewCounters(), r)

	seen := make(map[string]bool)
	for _, n := range nodes {
		if seen[n.ID] {
			t.Errorf("duplicate id %s", n.ID)
		}
		seen[n.ID] = true
		if !strings.HasPrefix(n.ID, "red-") {
			t.Errorf("id %s missing team prefix", n.ID)
		}
		if n.Team != TeamRed {
			t.Errorf("node %s has team %s", n.ID, n.Team)
		}
	}

	// Sequence numbers are per-(team, type) and start at 1.
	if nodes[0].ID != "red-wl-1" {
		t.Errorf("first node id = %s, want red-wl-1", nodes[0].ID)
	}
}

func TestPlaceTeamNodesWoolZones(t *testing.T) {
	r := rng.New(7)
	grid := placeTestGrid(t, 7, false)
	nodes := PlaceTeamNodes(grid, TeamRed, placeOpts(false), NewCounters(), r)

	for _, n := range nodes {
		switch n.Type {
		case Wool, WoolEntry:
			top, bottom := grid[0][0], grid[2][0]
			if !top.Contains(n.Pos) && !bottom.Contains(n.Pos) {
				t.Errorf("%s at %+v outside the rear corner zones", n.ID, n.Pos)
			}
		case Spawn, SpawnEntry:
			if !grid[1][0].Contains(n.Pos) {
				t.Errorf("%s at %+v outside the rear-middle zone", n.ID, n.Pos)
			}
		case Hub:
			inMid := false
			for row := 0; row < 3; row++ {
				if grid[row][1].Contains(n.Pos) {
					inMid = true
				}
			}
			if !inMid {
				t.Errorf("%s at %+v outside the middle column", n.ID, n.Pos)
			}
		}
	}
}

func TestPlaceTeamNodesSymmetrical(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		r := rng.New(seed)
		grid := placeTestGrid(t, seed, true)
		nodes := PlaceTeamNodes(grid, TeamRed, placeOpts(true), NewCounters(), r)

		tl := TeamLayout{Nodes: nodes}
		spawns := tl.NodesOfType(Spawn)
		entries := tl.NodesOfType(SpawnEntry)
		if len(spawns) != 1 || len(entries) != 1 {
			t.Fatalf("seed %d: spawn census %d/%d", seed, len(spawns), len(entries))
		}
		axis := spawns[0].Pos.Y
		if entries[0].Pos.Y != axis {
			t.Errorf("seed %d: spawn entry not on the axis", seed)
		}

		// Wool pairs mirror across the axis.
		wools := tl.NodesOfType(Wool)
		if len(wools) != 2 {
			t.Fatalf("seed %d: %d wools, want 2", seed, len(wools))
		}
		if math.Abs((wools[0].Pos.Y+wools[1].Pos.Y)/2-axis) > 1e-9 {
			t.Errorf("seed %d: wools not mirrored about the axis", seed)
		}

		// One of the three hubs sits exactly on the axis.
		hubs := tl.NodesOfType(Hub)
		if len(hubs) != 3 {
			t.Fatalf("seed %d: %d hubs, want 3", seed, len(hubs))
		}
		onAxis := 0
		for _, h := range hubs {
			if h.Pos.Y == axis {
				onAxis++
			}
		}
		if onAxis != 1 {
			t.Errorf("seed %d: %d hubs on the axis, want 1", seed, onAxis)
		}

		// Frontline pairs mirror too.
		fronts := tl.NodesOfType(FrontLine)
		if len(fronts) != 2 {
			t.Fatalf("seed %d: %d frontlines, want 2", seed, len(fronts))
		}
		if math.Abs((fronts[0].Pos.Y+fronts[1].Pos.Y)/2-axis) > 1e-9 {
			t.Errorf("seed %d: frontlines not mirrored about the axis", seed)
		}
	}
}

func TestCounters(t *testing.T) {
	c := NewCounters()
	ids := []string{
		c.NextID(TeamRed, Wool),
		c.NextID(TeamRed, Wool),
		c.NextID(TeamRed, Hub),
		c.NextID(TeamBlue, Wool),
	}
	want := []string{"red-wl-1", "red-wl-2", "red-hb-1", "blue-wl-1"}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("id %d = %s, want %s", i, ids[i], want[i])
		}
	}
}
