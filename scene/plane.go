package scene

import (
	"github.com/calebcase/fixray/fixed"
	"github.com/calebcase/fixray/vector"
)

// Plane is a one-sided plane through Origin. Normal points away from the
// visible side: a ray hits the plane only when it travels along Normal.
//
// A checkerboard plane alternates between Albedo and black in unit squares
// of the X/Z grid.
type Plane struct {
	Origin       vector.Vec3
	Normal       vector.Vec3
	Albedo       fixed.Number
	Checkerboard bool
}

var _ Element = (*Plane)(nil)

// Intersect implements Element. Hits beyond Far are ignored.
func (p *Plane) Intersect(ray Ray) (d fixed.Number, ok bool) {
	denom := p.Normal.Dot(ray.Direction)
	if !denom.IsPositive() {
		return d, false
	}

	toOrigin := p.Origin
	toOrigin.Sub(ray.Origin)

	num := toOrigin.Dot(p.Normal)
	if num.IsNegative() {
		return d, false
	}

	// num/denom > Far, without risking an overflowing quotient.
	limit := denom
	limit.Mul(Far)
	if num.Cmp(limit) > 0 {
		return d, false
	}

	d = num
	d.Div(denom)

	return d, true
}

// Color implements Element.
func (p *Plane) Color(hit vector.Vec3) fixed.Number {
	if !p.Checkerboard {
		return p.Albedo
	}

	x := hit.X.Floor().Int16()
	z := hit.Z.Floor().Int16()

	if (x^z)&1 == 0 {
		return p.Albedo
	}

	return fixed.Number{}
}

// SurfaceNormal implements Element.
func (p *Plane) SurfaceNormal(vector.Vec3) vector.Vec3 {
	n := p.Normal
	n.Neg()

	return n
}
