package layout

import (
	"github.com/woolforge/woolgen/pkg/geo"
	"github.com/woolforge/woolgen/pkg/rng"
)

// PairConstraint bounds the straight-line distance between an objective point
// and its paired entry point.
type PairConstraint struct {
	Min float64
	Max float64
}

// PlaceOptions configures team point placement.
type PlaceOptions struct {
	SpawnEntry  PairConstraint
	WoolEntry   PairConstraint
	FrontEntry  PairConstraint
	Padding     float64 // inset from zone edges for every placed point
	Symmetrical bool    // mirror-axis layout instead of the asymmetric one
	Wools       int     // wool pairs to place, 1 or 2; zero defaults to 2
}

// PlacePair places an objective point at a random position within the zone
// (inset by padding), then its paired entry point at a random horizontal
// offset whose magnitude lies within the constraint, clamped to remain inside
// the zone. The offset direction is drawn from the stream; if the preferred
// side has no room the other side is used.
//
// If the zone is too narrow for the minimum distance, or neither side can
// hold an in-range offset, both points fall back to the zone's opposite
// horizontal edges. Y coordinates are independently random for both points.
func PlacePair(zone Zone, c PairConstraint, padding float64, r *rng.Stream) (obj, entry geo.Point) {
	inner := zone.Inset(padding)
	if inner.Width < c.Min {
		return edgeFallback(inner, r)
	}

	obj = geo.Point{
		X: inner.X + r.Float()*inner.Width,
		Y: inner.Y + r.Float()*inner.Height,
	}

	// In-range entry x intervals on each side of the objective, clamped to
	// the zone interior.
	rightLo, rightHi := obj.X+c.Min, min(obj.X+c.Max, inner.Right())
	leftLo, leftHi := max(obj.X-c.Max, inner.X), obj.X-c.Min
	rightOK := rightLo <= rightHi
	leftOK := leftLo <= leftHi

	preferLeft := r.Float() < 0.5
	var lo, hi float64
	switch {
	case preferLeft && leftOK:
		lo, hi = leftLo, leftHi
	case rightOK:
		lo, hi = rightLo, rightHi
	case leftOK:
		lo, hi = leftLo, leftHi
	default:
		return edgeFallback(inner, r)
	}

	entry = geo.Point{
		X: lo + r.Float()*(hi-lo),
		Y: inner.Y + r.Float()*inner.Height,
	}
	return obj, entry
}

// edgeFallback is the deterministic placement for zones that cannot satisfy a
// distance constraint: objective on the left edge, entry on the right.
func edgeFallback(inner geo.Rect, r *rng.Stream) (obj, entry geo.Point) {
	obj = geo.Point{X: inner.X, Y: inner.Y + r.Float()*inner.Height}
	entry = geo.Point{X: inner.Right(), Y: inner.Y + r.Float()*inner.Height}
	return obj, entry
}

// PlaceInZone places count uniformly random points inside the zone inset by
// padding.
func PlaceInZone(zone Zone, count int, padding float64, r *rng.Stream) []geo.Point {
	inner := zone.Inset(padding)
	pts := make([]geo.Point, count)
	for i := range pts {
		pts[i] = geo.Point{
			X: inner.X + r.Float()*inner.Width,
			Y: inner.Y + r.Float()*inner.Height,
		}
	}
	return pts
}

// PlaceTeamNodes assembles one team's full point set on the given grid.
// Randomness is consumed in a fixed order (wools, spawn, hubs, frontlines for
// the asymmetric layout; axis, spawn, wools, hubs, frontlines for the
// symmetrical one); changing that order changes every layout.
func PlaceTeamNodes(grid Grid, team Team, opts PlaceOptions, counters Counters, r *rng.Stream) []Node {
	if opts.Symmetrical {
		return placeSymmetrical(grid, team, opts, counters, r)
	}
	return placeAsymmetric(grid, team, opts, counters, r)
}

func placeAsymmetric(grid Grid, team Team, opts PlaceOptions, counters Counters, r *rng.Stream) []Node {
	var nodes []Node
	add := func(typ NodeType, p geo.Point) {
		nodes = append(nodes, Node{ID: counters.NextID(team, typ), Type: typ, Pos: p, Team: team})
	}

	// Wool pairs in the rear corner zones, visited in shuffled order.
	woolZones := []Zone{grid[0][0], grid[2][0]}
	rng.Shuffle(r, woolZones)
	for _, z := range woolZones[:clampWools(opts.Wools)] {
		obj, entry := PlacePair(z, opts.WoolEntry, opts.Padding, r)
		add(Wool, obj)
		add(WoolEntry, entry)
	}

	// Spawn pair in the rear-middle zone.
	obj, entry := PlacePair(grid[1][0], opts.SpawnEntry, opts.Padding, r)
	add(Spawn, obj)
	add(SpawnEntry, entry)

	// One hub per middle-column zone.
	for row := 0; row < 3; row++ {
		pts := PlaceInZone(grid[row][1], 1, opts.Padding, r)
		add(Hub, pts[0])
	}

	// 2-3 frontline pairs in a random subset of the front-column zones.
	count := r.IntBetween(2, 3)
	rows := []int{0, 1, 2}
	rng.Shuffle(r, rows)
	for _, row := range rows[:count] {
		front, frontEntry := frontlinePair(grid[row][2], opts, r)
		add(FrontLine, front)
		add(FrontLineEntry, frontEntry)
	}

	return nodes
}

func placeSymmetrical(grid Grid, team Team, opts PlaceOptions, counters Counters, r *rng.Stream) []Node {
	var nodes []Node
	add := func(typ NodeType, p geo.Point) {
		nodes = append(nodes, Node{ID: counters.NextID(team, typ), Type: typ, Pos: p, Team: team})
	}

	// The mirror axis lies somewhere inside the spawn zone.
	spawnZone := grid[1][0]
	axisY := spawnZone.Y + r.Float()*spawnZone.Height

	// Spawn pair, snapped onto the axis.
	obj, entry := PlacePair(spawnZone, opts.SpawnEntry, opts.Padding, r)
	obj.Y, entry.Y = axisY, axisY
	add(Spawn, obj)
	add(SpawnEntry, entry)

	// One wool pair in the top-rear zone, reflected across the axis for the
	// bottom pair. The reflection consumes no randomness.
	wObj, wEntry := PlacePair(grid[0][0], opts.WoolEntry, opts.Padding, r)
	add(Wool, wObj)
	add(WoolEntry, wEntry)
	add(Wool, wObj.MirrorY(axisY))
	add(WoolEntry, wEntry.MirrorY(axisY))

	// Top hub mirrored to the bottom, plus one hub forced onto the axis.
	top := PlaceInZone(grid[0][1], 1, opts.Padding, r)[0]
	add(Hub, top)
	add(Hub, top.MirrorY(axisY))
	midInner := grid[1][1].Inset(opts.Padding)
	add(Hub, geo.Point{X: midInner.X + r.Float()*midInner.Width, Y: axisY})

	// One frontline pair top-front, mirrored to the bottom-front zone.
	front, frontEntry := frontlinePair(grid[0][2], opts, r)
	add(FrontLine, front)
	add(FrontLineEntry, frontEntry)
	add(FrontLine, front.MirrorY(axisY))
	add(FrontLineEntry, frontEntry.MirrorY(axisY))

	return nodes
}

// frontlinePair places a frontline pair. The generic helper's roles are
// deliberately swapped here: its "objective" return becomes the
// FrontLineEntry (closer to spawn) and its "entry" return the FrontLine
// (closer to center). The swap is part of the layout contract.
func frontlinePair(zone Zone, opts PlaceOptions, r *rng.Stream) (front, entry geo.Point) {
	obj, ent := PlacePair(zone, opts.FrontEntry, opts.Padding, r)
	return ent, obj
}

func clampWools(n int) int {
	if n < 1 {
		return 2
	}
	if n > 2 {
		return 2
	}
	return n
}
