package scene

import (
	"fmt"

	"github.com/calebcase/fixray/fixed"
	"github.com/calebcase/fixray/vector"
)

// Ray is a half line. Direction is expected to be normalized.
type Ray struct {
	Origin    vector.Vec3
	Direction vector.Vec3
}

// At returns the point at distance d along r.
func (r Ray) At(d fixed.Number) vector.Vec3 {
	p := r.Direction
	p.Scale(d)
	p.Add(r.Origin)

	return p
}

// String implements fmt.Stringer.
func (r Ray) String() string {
	return fmt.Sprintf("Ray(%v -> %v)", r.Origin, r.Direction)
}
