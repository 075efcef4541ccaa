package layout

import (
	"strings"

	"github.com/woolforge/woolgen/pkg/geo"
)

// SymmetryMode selects the transform used to derive the opposing territory
// on two-team maps.
type SymmetryMode string

const (
	// SymmetryMirror reflects across the map's vertical axis.
	SymmetryMirror SymmetryMode = "mirror"
	// SymmetryRotation rotates half a turn about the map center.
	SymmetryRotation SymmetryMode = "rotation"
)

// DeriveOpposing produces the opposing team's full layout from the reference
// team under the given symmetry mode. The source layout is never mutated;
// nodes, edges (including polylines), and grid zones are transformed copies
// with ids remapped to the new team. No randomness is consumed.
func DeriveOpposing(src *TeamLayout, from, to Team, mode SymmetryMode, totalWidth, totalHeight float64) *TeamLayout {
	if mode == SymmetryRotation {
		return deriveTeam(src, from, to,
			func(p geo.Point) geo.Point { return p.Rotate180(totalWidth, totalHeight) },
			func(z geo.Rect) geo.Rect { return z.Rotate180(totalWidth, totalHeight) },
		)
	}
	return deriveTeam(src, from, to,
		func(p geo.Point) geo.Point { return p.MirrorX(totalWidth) },
		func(z geo.Rect) geo.Rect { return z.MirrorX(totalWidth) },
	)
}

// DeriveQuadrant produces one rotated quadrant of a four-team map: the
// reference team turned by steps*90 degrees about the map center, ids
// remapped to the new team. No randomness is consumed.
func DeriveQuadrant(src *TeamLayout, from, to Team, center geo.Point, steps int) *TeamLayout {
	return deriveTeam(src, from, to,
		func(p geo.Point) geo.Point { return p.RotateQuarter(center, steps) },
		func(z geo.Rect) geo.Rect { return z.RotateQuarter(center, steps) },
	)
}

func deriveTeam(src *TeamLayout, from, to Team, pt func(geo.Point) geo.Point, rect func(geo.Rect) geo.Rect) *TeamLayout {
	dst := &TeamLayout{
		Nodes: make([]Node, len(src.Nodes)),
		Edges: make([]Edge, len(src.Edges)),
	}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			z := src.Grid[row][col]
			dst.Grid[row][col] = Zone{Rect: rect(z.Rect), Row: row, Col: col}
		}
	}
	for i, n := range src.Nodes {
		dst.Nodes[i] = Node{
			ID:   remapID(n.ID, from, to),
			Type: n.Type,
			Pos:  pt(n.Pos),
			Team: to,
		}
	}
	for i, e := range src.Edges {
		dst.Edges[i] = Edge{
			From:      remapID(e.From, from, to),
			To:        remapID(e.To, from, to),
			Line:      [2]geo.Point{pt(e.Line[0]), pt(e.Line[1])},
			Kind:      e.Kind,
			RushRoute: e.RushRoute,
			CrossTeam: e.CrossTeam,
			Purpose:   e.Purpose,
		}
	}
	return dst
}

// remapID swaps the team prefix of a node id. Ids owned by other teams (the
// shared center hubs) pass through unchanged.
func remapID(id string, from, to Team) string {
	prefix := string(from) + "-"
	if !strings.HasPrefix(id, prefix) {
		return id
	}
	return string(to) + "-" + id[len(prefix):]
}
