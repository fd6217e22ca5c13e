// Package vector provides a three component vector of fixed point numbers.
package vector

import (
	"fmt"

	"github.com/calebcase/fixray/fixed"
)

// Vec3 is a vector in scene space. Like fixed.Number it is a value; methods
// that change it modify the receiver only.
type Vec3 struct {
	X, Y, Z fixed.Number
}

// New returns the vector (x, y, z) with integer components.
func New(x, y, z int16) Vec3 {
	return Vec3{
		X: fixed.From(x),
		Y: fixed.From(y),
		Z: fixed.From(z),
	}
}

// Add sets v to v+o.
func (v *Vec3) Add(o Vec3) {
	v.X.Add(o.X)
	v.Y.Add(o.Y)
	v.Z.Add(o.Z)
}

// Sub sets v to v-o.
func (v *Vec3) Sub(o Vec3) {
	v.X.Sub(o.X)
	v.Y.Sub(o.Y)
	v.Z.Sub(o.Z)
}

// Scale sets v to v*s.
func (v *Vec3) Scale(s fixed.Number) {
	v.X.Mul(s)
	v.Y.Mul(s)
	v.Z.Mul(s)
}

// Neg sets v to -v.
func (v *Vec3) Neg() {
	v.X.Neg()
	v.Y.Neg()
	v.Z.Neg()
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) fixed.Number {
	xx := v.X
	xx.Mul(o.X)

	yy := v.Y
	yy.Mul(o.Y)

	zz := v.Z
	zz.Mul(o.Z)

	xx.Add(yy)
	xx.Add(zz)

	return xx
}

// LenSq returns the squared length of v.
func (v Vec3) LenSq() fixed.Number {
	return v.Dot(v)
}

// Cross sets v to the cross product v×o.
func (v *Vec3) Cross(o Vec3) {
	x1 := v.Y
	x1.Mul(o.Z)
	x2 := v.Z
	x2.Mul(o.Y)
	x1.Sub(x2)

	y1 := v.Z
	y1.Mul(o.X)
	y2 := v.X
	y2.Mul(o.Z)
	y1.Sub(y2)

	z1 := v.X
	z1.Mul(o.Y)
	z2 := v.Y
	z2.Mul(o.X)
	z1.Sub(z2)

	v.X, v.Y, v.Z = x1, y1, z1
}

// Normalize scales v to unit length. It panics with integer.ErrDivideByZero
// if v is the zero vector.
func (v *Vec3) Normalize() {
	l := v.LenSq()
	l.Sqrt()

	v.X.Div(l)
	v.Y.Div(l)
	v.Z.Div(l)
}

// String implements fmt.Stringer.
func (v Vec3) String() string {
	return fmt.Sprintf("Vec3(%v, %v, %v)", v.X, v.Y, v.Z)
}
