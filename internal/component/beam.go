package component

import "go-lifi-sim/pkg/geom"

// Beam is one drawable optical path segment.
type Beam struct {
	From, To    geom.Point
	Established bool
}

// DirectLink is the result of the line-of-sight check from the emitter to the
// second receiver.
type DirectLink struct {
	End         geom.Point
	Established bool
}
