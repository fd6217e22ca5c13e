package scene

import (
	"github.com/zeebo/errs"

	"github.com/calebcase/fixray/fixed"
	"github.com/calebcase/fixray/vector"
)

// Error is the class of scene errors.
var Error = errs.Class("scene")

// Scene is everything needed to render an image.
type Scene struct {
	Width  int16
	Height int16

	// FOV is the horizontal field of view in degrees.
	FOV fixed.Number

	Elements []Element
	Lights   []Directional
}

// Validate reports whether s can be rendered.
func (s *Scene) Validate() (err error) {
	switch {
	case s.Width <= 0 || s.Height <= 0:
		return Error.New("invalid size: %dx%d", s.Width, s.Height)
	case !s.FOV.IsPositive() || s.FOV.Cmp(fixed.From(180)) >= 0:
		return Error.New("invalid field of view: %v", s.FOV)
	}

	return nil
}

// Trace returns the nearest element hit by ray. When two elements report the
// same distance the first one wins.
func (s *Scene) Trace(ray Ray) (hit Intersection, ok bool) {
	for _, e := range s.Elements {
		d, found := e.Intersect(ray)
		if !found {
			continue
		}

		if !ok || d.Less(hit.Distance) {
			hit = Intersection{
				Distance: d,
				Element:  e,
			}
			ok = true
		}
	}

	return hit, ok
}

// PrimeRay returns the ray from the camera through the center of pixel
// (x, y).
func (s *Scene) PrimeRay(x, y int16) Ray {
	return s.Camera().PrimeRay(x, y)
}

// Camera returns the projection of s, which can be reused for every pixel.
func (s *Scene) Camera() Camera {
	two := fixed.From(2)

	// tan(fov/2), with fov converted to radians.
	fov := s.FOV
	fov.Mul(fixed.Pi())
	fov.Div(fixed.From(180))
	fov.Div(two)
	fov.Tan()

	aspect := fixed.From(s.Width)
	aspect.Div(fixed.From(s.Height))

	return Camera{
		width:  fixed.From(s.Width),
		height: fixed.From(s.Height),
		fov:    fov,
		aspect: aspect,
	}
}

// Camera maps pixels to prime rays.
type Camera struct {
	width, height fixed.Number
	fov, aspect   fixed.Number
}

// PrimeRay returns the ray from the origin through the center of pixel
// (x, y). Pixel (0, 0) is the top left corner.
func (c Camera) PrimeRay(x, y int16) Ray {
	one := fixed.From(1)
	two := fixed.From(2)
	half := fixed.FromFraction(1, 2)

	sx := fixed.From(x)
	sx.Add(half)
	sx.Div(c.width)
	sx.Mul(two)
	sx.Sub(one)
	sx.Mul(c.aspect)
	sx.Mul(c.fov)

	sy := fixed.From(y)
	sy.Add(half)
	sy.Div(c.height)
	sy.Mul(two)
	sy.Neg()
	sy.Add(one)
	sy.Mul(c.fov)

	dir := vector.Vec3{
		X: sx,
		Y: sy,
		Z: fixed.From(-1),
	}
	dir.Normalize()

	return Ray{
		Direction: dir,
	}
}
