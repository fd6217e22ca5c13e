package scene

import (
	"github.com/calebcase/fixray/fixed"
	"github.com/calebcase/fixray/vector"
)

// Directional is a light infinitely far away. Direction is the normalized
// direction the light travels in.
type Directional struct {
	Direction vector.Vec3
	Intensity fixed.Number
}

// NewDirectional returns a light traveling along direction, which is
// normalized.
func NewDirectional(direction vector.Vec3, intensity fixed.Number) Directional {
	direction.Normalize()

	return Directional{
		Direction: direction,
		Intensity: intensity,
	}
}

// ToLight returns the unit vector pointing back at the light.
func (l Directional) ToLight() vector.Vec3 {
	v := l.Direction
	v.Neg()

	return v
}
