package scene

import (
	"github.com/calebcase/fixray/fixed"
	"github.com/calebcase/fixray/vector"
)

// Far is the largest distance an element reports as a hit.
var Far = fixed.From(16384)

// Element is a surface that can be hit by a ray.
type Element interface {
	// Intersect returns the distance along ray to the nearest hit in front
	// of its origin.
	Intersect(ray Ray) (d fixed.Number, ok bool)

	// Color returns the albedo at a point on the surface.
	Color(hit vector.Vec3) fixed.Number

	// SurfaceNormal returns the unit normal at a point on the surface,
	// facing the side rays arrive from.
	SurfaceNormal(hit vector.Vec3) vector.Vec3
}

// Intersection is the nearest hit found by Trace.
type Intersection struct {
	Distance fixed.Number
	Element  Element
}
