// Package geo provides the small amount of planar geometry the generator
// needs: points, axis-aligned rectangles, and the reflection/rotation
// transforms used to derive opposing team territories.
package geo

import "math"

// Point is a position on the map plane. Y grows downward.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Dist returns the Euclidean distance to q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// MirrorX reflects the point across the vertical axis of a map of the given
// total width.
func (p Point) MirrorX(totalWidth float64) Point {
	return Point{X: totalWidth - p.X, Y: p.Y}
}

// MirrorY reflects the point across the horizontal line y = axisY.
func (p Point) MirrorY(axisY float64) Point {
	return Point{X: p.X, Y: 2*axisY - p.Y}
}

// Rotate180 rotates the point half a turn about the center of a
// totalWidth x totalHeight map.
func (p Point) Rotate180(totalWidth, totalHeight float64) Point {
	return Point{X: totalWidth - p.X, Y: totalHeight - p.Y}
}

// RotateQuarter rotates the point by steps*90 degrees about center.
// One step maps (dx, dy) to (-dy, dx).
func (p Point) RotateQuarter(center Point, steps int) Point {
	dx, dy := p.X-center.X, p.Y-center.Y
	for i := 0; i < ((steps % 4) + 4) % 4; i++ {
		dx, dy = -dy, dx
	}
	return Point{X: center.X + dx, Y: center.Y + dy}
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the rectangle's midpoint.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains reports whether p lies inside the rectangle (edges inclusive).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Inset shrinks the rectangle by pad on every side. If the rectangle is too
// small to inset, it collapses to its center.
func (r Rect) Inset(pad float64) Rect {
	if r.Width <= 2*pad || r.Height <= 2*pad {
		c := r.Center()
		return Rect{X: c.X, Y: c.Y}
	}
	return Rect{X: r.X + pad, Y: r.Y + pad, Width: r.Width - 2*pad, Height: r.Height - 2*pad}
}

// ClampPoint moves p to the nearest position inside the rectangle.
func (r Rect) ClampPoint(p Point) Point {
	return Point{
		X: Clamp(p.X, r.X, r.Right()),
		Y: Clamp(p.Y, r.Y, r.Bottom()),
	}
}

// MirrorX reflects the rectangle across the vertical axis of a map of the
// given total width, keeping the result origin-normalized.
func (r Rect) MirrorX(totalWidth float64) Rect {
	return Rect{X: totalWidth - r.Right(), Y: r.Y, Width: r.Width, Height: r.Height}
}

// Rotate180 rotates the rectangle half a turn about the map center.
func (r Rect) Rotate180(totalWidth, totalHeight float64) Rect {
	return Rect{
		X:      totalWidth - r.Right(),
		Y:      totalHeight - r.Bottom(),
		Width:  r.Width,
		Height: r.Height,
	}
}

// RotateQuarter rotates the rectangle by steps*90 degrees about center.
// Quarter-turn rotations of an axis-aligned rectangle are axis-aligned, so
// the result is re-normalized from the rotated corners.
func (r Rect) RotateQuarter(center Point, steps int) Rect {
	a := Point{X: r.X, Y: r.Y}.RotateQuarter(center, steps)
	b := Point{X: r.Right(), Y: r.Bottom()}.RotateQuarter(center, steps)
	return Rect{
		X:      math.Min(a.X, b.X),
		Y:      math.Min(a.Y, b.Y),
		Width:  math.Abs(a.X - b.X),
		Height: math.Abs(a.Y - b.Y),
	}
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
