package woolgen

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/woolforge/woolgen/pkg/geo"
	"github.com/woolforge/woolgen/pkg/layout"
	"github.com/woolforge/woolgen/pkg/rng"
)

// Generate runs the full generation pipeline and returns the complete map
// layout. It is a pure function of the options: the same options and seed
// always produce an identical layout, and the returned value is never
// mutated afterwards.
//
// One reference team is generated from randomness (partition, placement,
// graph, routes, islands); the remaining team(s) are derived from it by the
// configured symmetry transform without consuming further randomness.
func Generate(opts Options) (*layout.MapLayout, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if opts.NumTeams == 4 {
		return generateQuads(opts, logger)
	}
	return generateHalves(opts, logger)
}

// generateHalves builds a 2-team map: the red territory on the left, blue
// derived by mirror or rotation on the right.
func generateHalves(opts Options, logger *log.Logger) (*layout.MapLayout, error) {
	totalWidth := 2*opts.TeamWidth + opts.TeamGap
	totalHeight := opts.TeamHeight
	territory := geo.Rect{Width: opts.TeamWidth, Height: opts.TeamHeight}

	r := rng.New(opts.Seed)
	counters := layout.NewCounters()

	red, err := buildReferenceTeam(opts, territory, true, counters, r, logger)
	if err != nil {
		return nil, err
	}

	logger.Debug("deriving opposing team", "mode", opts.SymmetryMode)
	blue := layout.DeriveOpposing(red, layout.TeamRed, layout.TeamBlue, opts.SymmetryMode, totalWidth, totalHeight)

	m := &layout.MapLayout{
		Width:     totalWidth,
		Height:    totalHeight,
		TeamGap:   opts.TeamGap,
		LaneWidth: opts.LaneWidth,
		Teams: map[layout.Team]*layout.TeamLayout{
			layout.TeamRed:  red,
			layout.TeamBlue: blue,
		},
	}
	return m, m.Validate()
}

// generateQuads builds a 4-team map: the red quadrant top-left, the other
// three derived by quarter-turn rotations about the map center. The center
// hubs are shared nodes owned by no team; each team's frontline gets one
// cross-team edge into them.
func generateQuads(opts Options, logger *log.Logger) (*layout.MapLayout, error) {
	totalWidth := 2*opts.TeamWidth + opts.TeamGap
	totalHeight := 2*opts.TeamHeight + opts.TeamGap
	center := geo.Point{X: totalWidth / 2, Y: totalHeight / 2}
	territory := geo.Rect{Width: opts.TeamWidth, Height: opts.TeamHeight}

	r := rng.New(opts.Seed)
	counters := layout.NewCounters()

	red, err := buildReferenceTeam(opts, territory, false, counters, r, logger)
	if err != nil {
		return nil, err
	}

	// Shared center hubs: one random point near the center plus its three
	// quarter-turn images, so the set is rotation-invariant.
	base := geo.Point{
		X: center.X + (r.Float()*2-1)*opts.LaneWidth,
		Y: center.Y + (r.Float()*2-1)*opts.LaneWidth,
	}
	mid := &layout.TeamLayout{}
	for step := 0; step < 4; step++ {
		mid.Nodes = append(mid.Nodes, layout.Node{
			ID:   counters.NextID(layout.TeamMid, layout.CenterHub),
			Type: layout.CenterHub,
			Pos:  base.RotateQuarter(center, step),
			Team: layout.TeamMid,
		})
	}

	teams := map[layout.Team]*layout.TeamLayout{
		layout.TeamRed:    red,
		layout.TeamBlue:   layout.DeriveQuadrant(red, layout.TeamRed, layout.TeamBlue, center, 1),
		layout.TeamGreen:  layout.DeriveQuadrant(red, layout.TeamRed, layout.TeamGreen, center, 2),
		layout.TeamYellow: layout.DeriveQuadrant(red, layout.TeamRed, layout.TeamYellow, center, 3),
		layout.TeamMid:    mid,
	}

	// Every team meets the others through the center: nearest frontline to
	// nearest center hub, one edge per team.
	for _, team := range []layout.Team{layout.TeamRed, layout.TeamBlue, layout.TeamGreen, layout.TeamYellow} {
		tl := teams[team]
		fronts := tl.NodesOfType(layout.FrontLine)
		if len(fronts) == 0 {
			continue
		}
		frontIdx := 0
		bestDist := fronts[0].Pos.Dist(center)
		for i := 1; i < len(fronts); i++ {
			if d := fronts[i].Pos.Dist(center); d < bestDist {
				frontIdx, bestDist = i, d
			}
		}
		front := fronts[frontIdx]

		hub := mid.Nodes[0]
		for _, h := range mid.Nodes[1:] {
			if front.Pos.Dist(h.Pos) < front.Pos.Dist(hub.Pos) {
				hub = h
			}
		}

		e := layout.NewEdge(front, hub, layout.PurposeCenterLink)
		e.CrossTeam = true
		tl.Edges = append(tl.Edges, e)
	}

	m := &layout.MapLayout{
		Width:     totalWidth,
		Height:    totalHeight,
		TeamGap:   opts.TeamGap,
		LaneWidth: opts.LaneWidth,
		Teams:     teams,
	}
	return m, m.Validate()
}

// buildReferenceTeam runs partition, placement, graph construction, route
// enhancement, and islands for the reference team.
func buildReferenceTeam(opts Options, territory geo.Rect, twoTeams bool, counters layout.Counters, r *rng.Stream, logger *log.Logger) (*layout.TeamLayout, error) {
	grid, err := layout.BuildGrid(opts.TeamWidth, opts.TeamHeight, opts.GridMode, opts.SymmetricalTeams, r)
	if err != nil {
		return nil, err
	}
	logger.Debug("partitioned territory", "mode", opts.GridMode, "symmetrical", opts.SymmetricalTeams)

	nodes := layout.PlaceTeamNodes(grid, layout.TeamRed, layout.PlaceOptions{
		SpawnEntry:  opts.SpawnEntryDistance,
		WoolEntry:   opts.WoolEntryDistance,
		FrontEntry:  opts.FrontlineEntryDistance,
		Padding:     opts.LaneWidth,
		Symmetrical: opts.SymmetricalTeams,
		Wools:       opts.WoolsPerTeam,
	}, counters, r)
	logger.Debug("placed strategic points", "nodes", len(nodes))

	edges := layout.BuildEdges(nodes, r)
	logger.Debug("built navigation graph", "edges", len(edges))

	if opts.Routes.WoolFlanks || opts.Routes.RushRoute {
		nodes, edges = layout.EnhanceRoutes(nodes, edges, opts.Routes, territory, counters, r)
		logger.Debug("enhanced routes", "nodes", len(nodes), "edges", len(edges))
	}

	if opts.Islands.Enabled {
		nodes, edges = layout.AddIslands(grid, nodes, edges, opts.Islands,
			territory, opts.TeamGap, opts.LaneWidth, twoTeams, counters, r)
		logger.Debug("added islands", "nodes", len(nodes))
	}

	return &layout.TeamLayout{Grid: grid, Nodes: nodes, Edges: edges}, nil
}
