package layout

import "github.com/woolforge/woolgen/pkg/geo"

// nearestIndex returns the index of the candidate closest to p by Euclidean
// distance, or -1 for an empty slice. Ties keep the lowest index: a candidate
// only wins with a strictly smaller distance. Callers rely on slice insertion
// order as the tie-break contract, so this must stay first-wins.
func nearestIndex(p geo.Point, candidates []Node) int {
	best := -1
	var bestDist float64
	for i := range candidates {
		d := p.Dist(candidates[i].Pos)
		if best == -1 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// nearestNode returns the candidate closest to p, or nil for an empty slice.
func nearestNode(p geo.Point, candidates []Node) *Node {
	i := nearestIndex(p, candidates)
	if i == -1 {
		return nil
	}
	return &candidates[i]
}
