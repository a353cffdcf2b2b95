// Package geom holds the 2D primitives the link simulation is built on:
// points, axis-aligned rectangles, rays and the segment clipping test.
package geom

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidRect is returned when a rectangle is built with a non-positive side.
var ErrInvalidRect = errors.New("geom: rectangle width and height must be positive")

// Point is a position in world units. Y grows downwards, like screen space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p + o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns p - o.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Len returns the Euclidean length of p as a vector.
func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// Rect is an axis-aligned rectangle. X, Y is the top-left corner.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// NewRect builds a rectangle, rejecting non-positive (or NaN) sides.
func NewRect(x, y, w, h float64) (Rect, error) {
	if !(w > 0) || !(h > 0) {
		return Rect{}, fmt.Errorf("%w: got %gx%g", ErrInvalidRect, w, h)
	}
	return Rect{X: x, Y: y, W: w, H: h}, nil
}

// SquareAround returns the square of side 2*half centred on c.
func SquareAround(c Point, half float64) (Rect, error) {
	return NewRect(c.X-half, c.Y-half, 2*half, 2*half)
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the centre point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains reports whether p lies inside r using half-open bounds:
// the left and top edges are inside, the right and bottom edges are not.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Covers reports whether p lies inside r or on any of its edges.
func (r Rect) Covers(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// ClampWithin returns r moved the minimum amount needed to sit fully inside
// bounds. A rectangle larger than bounds is pinned to the bounds' top-left.
func (r Rect) ClampWithin(bounds Rect) Rect {
	r.X = math.Max(bounds.X, math.Min(bounds.Right()-r.W, r.X))
	r.Y = math.Max(bounds.Y, math.Min(bounds.Bottom()-r.H, r.Y))
	return r
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// WrapDegrees maps any finite angle into [0, 360).
func WrapDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// -tiny + 360 rounds to 360.
	if deg >= 360 {
		deg -= 360
	}
	return deg
}

// MirrorAngle is the outgoing beam direction of a mirror rotated to scan
// degrees when the incoming beam travels at incoming degrees.
func MirrorAngle(scan, incoming float64) float64 {
	return WrapDegrees(2*scan - incoming)
}

// AngleTo returns the direction from -> to in degrees, in (-180, 180].
// Coincident points give 0.
func AngleTo(from, to Point) float64 {
	d := to.Sub(from)
	return Degrees(math.Atan2(d.Y, d.X))
}

// RayEndpoint returns origin + length*(cos θ, sin θ) with θ in degrees.
func RayEndpoint(origin Point, angleDeg, length float64) Point {
	rad := Radians(angleDeg)
	return Point{
		X: origin.X + math.Cos(rad)*length,
		Y: origin.Y + math.Sin(rad)*length,
	}
}

// BoundedRayToward returns target when it is within maxLength of origin and
// otherwise the point maxLength away from origin in target's direction.
// origin == target yields origin.
func BoundedRayToward(origin, target Point, maxLength float64) Point {
	dir := target.Sub(origin)
	dist := dir.Len()
	if dist == 0 || dist <= maxLength {
		return target
	}
	return origin.Add(dir.Scale(maxLength / dist))
}

// SegmentRectIntersection returns the first point of the segment p0->p1, in
// travel order from p0, that lies on or inside r. When p0 is already inside
// r that point is p0 itself. ok is false when the segment never touches r.
//
// Liang–Barsky clipping against the closed rectangle; zero-length segments
// and segments parallel to an edge are handled by the p == 0 branch.
func SegmentRectIntersection(p0, p1 Point, r Rect) (hit Point, ok bool) {
	d := p1.Sub(p0)
	t0, t1 := 0.0, 1.0
	entry := -1

	edges := [4][2]float64{
		{-d.X, p0.X - r.X},
		{d.X, r.Right() - p0.X},
		{-d.Y, p0.Y - r.Y},
		{d.Y, r.Bottom() - p0.Y},
	}
	for i, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return Point{}, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return Point{}, false
			}
			if t > t0 {
				t0 = t
				entry = i
			}
		} else {
			if t < t0 {
				return Point{}, false
			}
			if t < t1 {
				t1 = t
			}
		}
	}

	if entry < 0 {
		return p0, true
	}
	hit = p0.Add(d.Scale(t0))
	// Put the entry coordinate exactly on the edge it crossed.
	hit.X = Clamp(hit.X, r.X, r.Right())
	hit.Y = Clamp(hit.Y, r.Y, r.Bottom())
	switch entry {
	case 0:
		hit.X = r.X
	case 1:
		hit.X = r.Right()
	case 2:
		hit.Y = r.Y
	case 3:
		hit.Y = r.Bottom()
	}
	return hit, true
}
