package system

import "go-lifi-sim/pkg/geom"

// Target is the read-only view of a receiver that tick logic is allowed to
// use. Systems never move a receiver.
type Target interface {
	ContainsPoint(p geom.Point) bool
	Covers(p geom.Point) bool
	IntersectionWith(p0, p1 geom.Point) (geom.Point, bool)
	Center() geom.Point
}
