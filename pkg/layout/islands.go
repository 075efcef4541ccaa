package layout

import (
	"github.com/woolforge/woolgen/pkg/geo"
	"github.com/woolforge/woolgen/pkg/rng"
)

// IslandOptions configures the optional island pass.
type IslandOptions struct {
	Enabled      bool
	MaxPerTeam   int  // island node budget per team
	FourthColumn bool // spawn in a strip just past the territory edge (2-team only)
	CenterGap    bool // spawn inside the team's half of the inter-team gap
	EmptyZones   bool // spawn in front-column zones that got no frontline
}

// islandStep bounds the random walk between consecutive chain nodes.
const islandStep = 20.0

// islandEnv is the geometry handed to the island strategies.
type islandEnv struct {
	territory geo.Rect
	teamGap   float64
	laneWidth float64
	twoTeams  bool
}

// AddIslands runs the enabled island spawn strategies against one team's
// layout and returns the extended node and edge collections. Each strategy is
// attempted at most once, in an order shuffled from the stream, until the
// island budget is exhausted or no strategy remains. The input slices are not
// mutated.
func AddIslands(grid Grid, nodes []Node, edges []Edge, opts IslandOptions, territory geo.Rect, teamGap, laneWidth float64, twoTeams bool, counters Counters, r *rng.Stream) ([]Node, []Edge) {
	if !opts.Enabled || opts.MaxPerTeam <= 0 {
		return nodes, edges
	}

	env := islandEnv{territory: territory, teamGap: teamGap, laneWidth: laneWidth, twoTeams: twoTeams}

	type strategy func(Grid, []Node, []Edge, islandEnv, int, Counters, *rng.Stream) ([]Node, []Edge)
	var strategies []strategy
	if opts.EmptyZones {
		strategies = append(strategies, spawnInEmptyZones)
	}
	if opts.FourthColumn && twoTeams {
		strategies = append(strategies, spawnInFourthColumn)
	}
	if opts.CenterGap {
		strategies = append(strategies, spawnInCenterGap)
	}
	if len(strategies) == 0 {
		return nodes, edges
	}
	rng.Shuffle(r, strategies)

	outNodes := append([]Node(nil), nodes...)
	outEdges := append([]Edge(nil), edges...)
	for _, strat := range strategies {
		remaining := opts.MaxPerTeam - len(ofType(outNodes, Island))
		if remaining <= 0 {
			break
		}
		outNodes, outEdges = strat(grid, outNodes, outEdges, env, remaining, counters, r)
	}
	return outNodes, outEdges
}

// spawnInEmptyZones starts a chain inside a front-column zone that received
// no frontline node during placement.
func spawnInEmptyZones(grid Grid, nodes []Node, edges []Edge, env islandEnv, budget int, counters Counters, r *rng.Stream) ([]Node, []Edge) {
	var empty []Zone
	for row := 0; row < 3; row++ {
		zone := grid[row][2]
		occupied := false
		for _, n := range ofType(nodes, FrontLine) {
			if zone.Contains(n.Pos) {
				occupied = true
				break
			}
		}
		if !occupied {
			empty = append(empty, zone)
		}
	}
	if len(empty) == 0 {
		return nodes, edges
	}

	zone := empty[r.IntBetween(0, len(empty)-1)]
	start := geo.Point{
		X: zone.X + r.Float()*zone.Width,
		Y: zone.Y + r.Float()*zone.Height,
	}
	return growIslandChain(zone.Rect, start, nodes, edges, budget, counters, r)
}

// spawnInFourthColumn starts a chain in the thin strip just past the team's
// territory edge, near a randomly chosen frontline or frontline-entry node.
func spawnInFourthColumn(grid Grid, nodes []Node, edges []Edge, env islandEnv, budget int, counters Counters, r *rng.Stream) ([]Node, []Edge) {
	strip := geo.Rect{
		X:      env.territory.Right(),
		Y:      env.territory.Y,
		Width:  env.laneWidth,
		Height: env.territory.Height,
	}

	var anchors []Node
	for _, n := range nodes {
		if n.Type == FrontLine || n.Type == FrontLineEntry {
			anchors = append(anchors, n)
		}
	}
	if len(anchors) == 0 {
		return nodes, edges
	}
	anchor := anchors[r.IntBetween(0, len(anchors)-1)]

	start := strip.ClampPoint(geo.Point{
		X: strip.X + r.Float()*strip.Width,
		Y: anchor.Pos.Y,
	})
	return growIslandChain(strip, start, nodes, edges, budget, counters, r)
}

// spawnInCenterGap starts a chain inside the team's half of the inter-team
// gap, near the frontline node closest to a random probe point in the strip.
func spawnInCenterGap(grid Grid, nodes []Node, edges []Edge, env islandEnv, budget int, counters Counters, r *rng.Stream) ([]Node, []Edge) {
	strip := geo.Rect{
		X:      env.territory.Right(),
		Y:      env.territory.Y,
		Width:  env.teamGap / 2,
		Height: env.territory.Height,
	}

	probe := geo.Point{
		X: strip.X + r.Float()*strip.Width,
		Y: strip.Y + r.Float()*strip.Height,
	}
	front := nearestNode(probe, ofType(nodes, FrontLine))
	if front == nil {
		return nodes, edges
	}

	start := strip.ClampPoint(geo.Point{
		X: strip.X + r.Float()*strip.Width,
		Y: front.Pos.Y,
	})
	return growIslandChain(strip, start, nodes, edges, budget, counters, r)
}

// growIslandChain lays out 2-3 island nodes (capped by the remaining budget)
// as a constrained random walk inside region: each point lands within
// islandStep of the previous one, clamped to the region. The chain is
// connected in sequence by walkable edges, with one bridgeable edge from its
// first node back to the nearest pre-existing node.
func growIslandChain(region geo.Rect, start geo.Point, nodes []Node, edges []Edge, budget int, counters Counters, r *rng.Stream) ([]Node, []Edge) {
	length := r.IntBetween(2, 3)
	if length > budget {
		length = budget
	}
	if length == 0 {
		return nodes, edges
	}

	team := TeamRed
	if len(nodes) > 0 {
		team = nodes[0].Team
	}
	existing := append([]Node(nil), nodes...)

	chain := make([]Node, 0, length)
	pos := region.ClampPoint(start)
	for i := 0; i < length; i++ {
		if i > 0 {
			pos = region.ClampPoint(geo.Point{
				X: pos.X + (r.Float()*2-1)*islandStep,
				Y: pos.Y + (r.Float()*2-1)*islandStep,
			})
		}
		n := Node{ID: counters.NextID(team, Island), Type: Island, Pos: pos, Team: team}
		chain = append(chain, n)
		nodes = append(nodes, n)
	}

	if bridge := nearestNode(chain[0].Pos, existing); bridge != nil {
		e := NewEdge(*bridge, chain[0], PurposeIslandLink)
		e.Kind = Bridgeable
		edges = append(edges, e)
	}
	for i := 0; i+1 < len(chain); i++ {
		edges = append(edges, NewEdge(chain[i], chain[i+1], PurposeIslandHop))
	}
	return nodes, edges
}
