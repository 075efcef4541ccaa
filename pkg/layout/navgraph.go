package layout

import (
	"sort"

	"github.com/woolforge/woolgen/pkg/geo"
	"github.com/woolforge/woolgen/pkg/rng"
)

// Edge purposes recorded during graph construction. Purely descriptive; the
// exporter surfaces them so downstream tools can style routes.
const (
	PurposeSpawnExit   = "spawn-exit"
	PurposeMainStreet  = "main-street"
	PurposeWoolAccess  = "wool-access"
	PurposeFrontAccess = "front-access"
	PurposeLane        = "lane"
	PurposeFlank       = "flank"
	PurposeRush        = "rush"
	PurposeIslandHop   = "island-hop"
	PurposeIslandLink  = "island-link"
	PurposeCenterLink  = "center-link"
)

// NewEdge creates a walkable edge between two nodes, capturing the straight
// segment between their positions at creation time.
func NewEdge(from, to Node, purpose string) Edge {
	return Edge{
		From:    from.ID,
		To:      to.ID,
		Line:    [2]geo.Point{from.Pos, to.Pos},
		Kind:    Walkable,
		Purpose: purpose,
	}
}

// BuildEdges connects one team's placed nodes into the navigation graph.
// Construction follows a fixed sequence:
//
//  1. Spawn to SpawnEntry.
//  2. SpawnEntry to the middle hub (hubs sorted by y) - the single forced
//     main street out of spawn.
//  3. Per wool: nearest wool entry, that entry's nearest hub; hub-entry and
//     entry-wool edges.
//  4. Per frontline entry: edge from its nearest hub.
//  5. Adjacent hubs (sorted by y) connected pairwise for lane switching.
//  6. Per frontline entry: edge to its nearest frontline.
//  7. 1-2 of the hub-to-frontline-entry edges re-tagged bridgeable.
//
// All nearest selections are first-wins over node insertion order.
func BuildEdges(nodes []Node, r *rng.Stream) []Edge {
	var edges []Edge

	spawn := firstOfType(nodes, Spawn)
	spawnEntry := firstOfType(nodes, SpawnEntry)
	hubs := ofType(nodes, Hub)
	wools := ofType(nodes, Wool)
	woolEntries := ofType(nodes, WoolEntry)
	fronts := ofType(nodes, FrontLine)
	frontEntries := ofType(nodes, FrontLineEntry)

	if spawn != nil && spawnEntry != nil {
		edges = append(edges, NewEdge(*spawn, *spawnEntry, PurposeSpawnExit))
	}

	// The middle hub of the y-sorted spine is the only hub reachable from
	// spawn entry directly.
	spine := make([]Node, len(hubs))
	copy(spine, hubs)
	sort.SliceStable(spine, func(i, j int) bool { return spine[i].Pos.Y < spine[j].Pos.Y })
	if spawnEntry != nil && len(spine) > 0 {
		edges = append(edges, NewEdge(*spawnEntry, spine[len(spine)/2], PurposeMainStreet))
	}

	for _, w := range wools {
		entry := nearestNode(w.Pos, woolEntries)
		if entry == nil {
			continue
		}
		if hub := nearestNode(entry.Pos, hubs); hub != nil {
			edges = append(edges, NewEdge(*hub, *entry, PurposeWoolAccess))
		}
		edges = append(edges, NewEdge(*entry, w, PurposeWoolAccess))
	}

	// Hub-to-frontline-entry edges; remembered for the bridgeable re-tag.
	var frontAccess []int
	for _, fe := range frontEntries {
		if hub := nearestNode(fe.Pos, hubs); hub != nil {
			frontAccess = append(frontAccess, len(edges))
			edges = append(edges, NewEdge(*hub, fe, PurposeFrontAccess))
		}
	}

	for i := 0; i+1 < len(spine); i++ {
		edges = append(edges, NewEdge(spine[i], spine[i+1], PurposeLane))
	}

	for _, fe := range frontEntries {
		if fl := nearestNode(fe.Pos, fronts); fl != nil {
			edges = append(edges, NewEdge(fe, *fl, PurposeFrontAccess))
		}
	}

	// Tactical gaps: a random 1-2 of the hub->frontline-entry edges become
	// bridgeable.
	if len(frontAccess) > 0 {
		n := r.IntBetween(1, 2)
		if n > len(frontAccess) {
			n = len(frontAccess)
		}
		rng.Shuffle(r, frontAccess)
		for _, idx := range frontAccess[:n] {
			edges[idx].Kind = Bridgeable
		}
	}

	return edges
}

func ofType(nodes []Node, typ NodeType) []Node {
	var out []Node
	for _, n := range nodes {
		if n.Type == typ {
			out = append(out, n)
		}
	}
	return out
}

func firstOfType(nodes []Node, typ NodeType) *Node {
	for i := range nodes {
		if nodes[i].Type == typ {
			return &nodes[i]
		}
	}
	return nil
}
