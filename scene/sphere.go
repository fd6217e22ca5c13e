package scene

import (
	"github.com/calebcase/fixray/fixed"
	"github.com/calebcase/fixray/vector"
)

// Sphere is a solid sphere with a uniform color.
type Sphere struct {
	Center vector.Vec3
	Radius fixed.Number
	Albedo fixed.Number
}

var _ Element = (*Sphere)(nil)

// Intersect implements Element.
//
// The center is projected onto the ray; the squared distance from the center
// to the ray is compared with the squared radius before the square root is
// taken. A ray starting inside the sphere hits the far side.
func (s *Sphere) Intersect(ray Ray) (d fixed.Number, ok bool) {
	toCenter := s.Center
	toCenter.Sub(ray.Origin)

	tca := toCenter.Dot(ray.Direction)

	tcaSq := tca
	tcaSq.Mul(tca)

	rSq := s.Radius
	rSq.Mul(s.Radius)

	oppositeSq := toCenter.LenSq()
	oppositeSq.Sub(tcaSq)

	if oppositeSq.Cmp(rSq) > 0 {
		return d, false
	}

	thc := rSq
	thc.Sub(oppositeSq)
	thc.Sqrt()

	t0 := tca
	t0.Sub(thc)

	t1 := tca
	t1.Add(thc)

	switch {
	case !t0.IsNegative():
		return t0, true
	case !t1.IsNegative():
		return t1, true
	}

	return d, false
}

// Color implements Element.
func (s *Sphere) Color(vector.Vec3) fixed.Number {
	return s.Albedo
}

// SurfaceNormal implements Element.
func (s *Sphere) SurfaceNormal(hit vector.Vec3) vector.Vec3 {
	n := hit
	n.Sub(s.Center)
	n.Normalize()

	return n
}
