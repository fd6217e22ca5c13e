package scene

import (
	"github.com/calebcase/fixray/fixed"
	"github.com/calebcase/fixray/vector"
)

// Default returns the reference scene: three spheres in front of a back wall
// above a checkerboard floor, lit by three directional lights.
func Default() *Scene {
	n := fixed.MustParse

	return &Scene{
		Width:  512,
		Height: 256,
		FOV:    fixed.From(90),
		Elements: []Element{
			&Sphere{
				Center: vector.Vec3{X: n("-6"), Y: n("-1/2"), Z: n("-5")},
				Radius: n("3/2"),
				Albedo: n("8/10"),
			},
			&Sphere{
				Center: vector.New(-1, -1, -5),
				Radius: n("1"),
				Albedo: n("6/10"),
			},
			&Sphere{
				Center: vector.New(2, 0, -3),
				Radius: n("2"),
				Albedo: n("1"),
			},
			&Plane{
				Origin: vector.New(0, 0, -25),
				Normal: vector.New(0, 0, -1),
				Albedo: n("1"),
			},
			&Plane{
				Origin:       vector.New(0, -2, 0),
				Normal:       vector.New(0, -1, 0),
				Albedo:       n("1"),
				Checkerboard: true,
			},
		},
		Lights: []Directional{
			NewDirectional(vector.New(0, -1, -1), n("5/100")),
			NewDirectional(vector.New(-1, -1, 0), n("50/100")),
			NewDirectional(vector.Vec3{X: n("1/2"), Y: n("-1"), Z: n("0")}, n("1")),
		},
	}
}
