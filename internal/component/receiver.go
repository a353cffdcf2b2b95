package component

import (
	"fmt"

	"go-lifi-sim/internal/config"
	"go-lifi-sim/pkg/geom"
)

// Receiver is a passive rectangular target. It has no lock state of its own;
// the only mutation is a clamped translation driven by user input.
type Receiver struct {
	Name   string
	rect   geom.Rect
	bounds geom.Rect
}

// NewReceiver creates a receiver whose rectangle is kept inside bounds. The
// starting position is clamped the same way a move would be.
func NewReceiver(name string, rect, bounds geom.Rect) (*Receiver, error) {
	if _, err := geom.NewRect(rect.X, rect.Y, rect.W, rect.H); err != nil {
		return nil, fmt.Errorf("receiver %q: %w", name, err)
	}
	if rect.W > bounds.W || rect.H > bounds.H {
		return nil, fmt.Errorf("receiver %q: %gx%g does not fit in %gx%g bounds", name, rect.W, rect.H, bounds.W, bounds.H)
	}
	return &Receiver{Name: name, rect: rect.ClampWithin(bounds), bounds: bounds}, nil
}

// Rect returns the receiver's current rectangle.
func (r *Receiver) Rect() geom.Rect {
	return r.rect
}

// Center returns the centre of the receiver's rectangle.
func (r *Receiver) Center() geom.Point {
	return r.rect.Center()
}

// ContainsPoint is a half-open containment test.
func (r *Receiver) ContainsPoint(p geom.Point) bool {
	return r.rect.Contains(p)
}

// Covers reports whether p is inside the receiver or on its outline. Beam
// impact points land on the outline, including the right and bottom edges.
func (r *Receiver) Covers(p geom.Point) bool {
	return r.rect.Covers(p)
}

// IntersectionWith returns where the segment p0->p1 first meets the receiver.
func (r *Receiver) IntersectionWith(p0, p1 geom.Point) (geom.Point, bool) {
	return geom.SegmentRectIntersection(p0, p1, r.rect)
}

// Translate moves the receiver by (dx, dy), clamped to the bounds.
func (r *Receiver) Translate(dx, dy float64) {
	r.rect = r.rect.Translate(dx, dy).ClampWithin(r.bounds)
}

// DisplayRect is the payload display box drawn beside the receiver.
func (r *Receiver) DisplayRect() geom.Rect {
	return geom.Rect{
		X: r.rect.X + r.rect.W + config.DisplayOffsetX,
		Y: r.rect.Y + config.DisplayOffsetY,
		W: config.DisplayWidth,
		H: config.DisplayHeight,
	}
}
