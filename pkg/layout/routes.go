package layout

import (
	"github.com/woolforge/woolgen/pkg/geo"
	"github.com/woolforge/woolgen/pkg/rng"
)

// RouteOptions toggles the two route enhancement passes.
type RouteOptions struct {
	WoolFlanks bool // splice flanking diamonds around wool entries
	RushRoute  bool // add a direct spawn-entry to wool-entry edge
}

// flankOffset is the vertical distance of the bypass helper from the wool
// entry it skips.
const flankOffset = 25.0

// EnhanceRoutes applies the enabled route enhancement passes to one team's
// node and edge set and returns the rewritten collections. The input slices
// are not mutated. bounds is the team territory, used to clamp helper nodes
// to the team's vertical extent.
func EnhanceRoutes(nodes []Node, edges []Edge, opts RouteOptions, bounds geo.Rect, counters Counters, r *rng.Stream) ([]Node, []Edge) {
	outNodes := append([]Node(nil), nodes...)
	outEdges := append([]Edge(nil), edges...)

	// Approach helpers keyed by wool entry id, for the rush route's
	// helper-interposition rule.
	approach := make(map[string]Node)

	if opts.WoolFlanks {
		outNodes, outEdges, approach = addWoolFlanks(outNodes, outEdges, bounds, counters, r)
	}
	if opts.RushRoute {
		outEdges = addRushRoute(outNodes, outEdges, approach)
	}
	return outNodes, outEdges
}

// addWoolFlanks rewrites each wool entry's hub approach into a diamond
// detour. The hub edge and wool edge are removed and replaced by
// hub -> h1 -> entry -> h2 -> wool plus a h1 -> h3 -> h2 bypass that skips
// the entry chokepoint. h3 sits a fixed vertical offset from the entry,
// clamped to the team's vertical bounds.
func addWoolFlanks(nodes []Node, edges []Edge, bounds geo.Rect, counters Counters, r *rng.Stream) ([]Node, []Edge, map[string]Node) {
	approach := make(map[string]Node)
	byID := make(map[string]Node, len(nodes))
	for _, n := range nodes {
		byID[n.ID] = n
	}

	for _, entry := range ofType(nodes, WoolEntry) {
		hubIdx, woolIdx := -1, -1
		for i, e := range edges {
			if e.To == entry.ID && byID[e.From].Type == Hub {
				hubIdx = i
			}
			if e.From == entry.ID && byID[e.To].Type == Wool {
				woolIdx = i
			}
		}
		if hubIdx == -1 || woolIdx == -1 {
			continue
		}
		hub := byID[edges[hubIdx].From]
		wool := byID[edges[woolIdx].To]
		edges = removeEdges(edges, hubIdx, woolIdx)

		mk := func(p geo.Point) Node {
			n := Node{ID: counters.NextID(entry.Team, Helper), Type: Helper, Pos: p, Team: entry.Team}
			nodes = append(nodes, n)
			byID[n.ID] = n
			return n
		}
		h1 := mk(midpoint(hub.Pos, entry.Pos))
		h2 := mk(midpoint(entry.Pos, wool.Pos))
		off := flankOffset
		if r.Float() < 0.5 {
			off = -flankOffset
		}
		h3 := mk(geo.Point{
			X: entry.Pos.X,
			Y: geo.Clamp(entry.Pos.Y+off, bounds.Y, bounds.Bottom()),
		})

		edges = append(edges,
			NewEdge(hub, h1, PurposeFlank),
			NewEdge(h1, entry, PurposeFlank),
			NewEdge(entry, h2, PurposeFlank),
			NewEdge(h2, wool, PurposeFlank),
			NewEdge(h1, h3, PurposeFlank),
			NewEdge(h3, h2, PurposeFlank),
		)
		approach[entry.ID] = h1
	}

	return nodes, edges, approach
}

// addRushRoute adds one direct edge from the spawn entry toward the nearest
// wool entry. When that entry has a flank approach helper whose y lies
// strictly between the two endpoints, the rush route feeds into the helper
// instead so it joins the diversion rather than crossing it.
func addRushRoute(nodes []Node, edges []Edge, approach map[string]Node) []Edge {
	spawnEntry := firstOfType(nodes, SpawnEntry)
	if spawnEntry == nil {
		return edges
	}
	entry := nearestNode(spawnEntry.Pos, ofType(nodes, WoolEntry))
	if entry == nil {
		return edges
	}

	target := *entry
	if h, ok := approach[entry.ID]; ok && strictlyBetween(h.Pos.Y, spawnEntry.Pos.Y, entry.Pos.Y) {
		target = h
	}

	rush := NewEdge(*spawnEntry, target, PurposeRush)
	rush.RushRoute = true
	return append(edges, rush)
}

func midpoint(a, b geo.Point) geo.Point {
	return geo.Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

func strictlyBetween(v, a, b float64) bool {
	if a > b {
		a, b = b, a
	}
	return v > a && v < b
}

// removeEdges drops the edges at indices i and j.
func removeEdges(edges []Edge, i, j int) []Edge {
	out := edges[:0]
	for k, e := range edges {
		if k != i && k != j {
			out = append(out, e)
		}
	}
	return out
}
