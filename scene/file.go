package scene

import (
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/zeebo/errs"

	"github.com/calebcase/fixray/fixed"
	"github.com/calebcase/fixray/integer"
	"github.com/calebcase/fixray/vector"
)

// File is the TOML form of a scene. Numbers are written as integers or as
// strings accepted by fixed.Parse ("3", "-1/2", "0.8"):
//
//	width = 512
//	height = 256
//	fov = 90
//
//	[[sphere]]
//	center = [-6, "-1/2", -5]
//	radius = "3/2"
//	albedo = "0.8"
//
//	[[plane]]
//	origin = [0, -2, 0]
//	normal = [0, -1, 0]
//	albedo = 1
//	checkerboard = true
//
//	[[light]]
//	direction = [0, -1, -1]
//	intensity = "5/100"
//
// Plane normals and light directions are normalized when the scene is built;
// a zero vector is an error.
type File struct {
	Width   int16        `toml:"width"`
	Height  int16        `toml:"height"`
	FOV     fixed.Number `toml:"fov"`
	Spheres []SphereFile `toml:"sphere"`
	Planes  []PlaneFile  `toml:"plane"`
	Lights  []LightFile  `toml:"light"`
}

// Point is a vector in a scene file.
type Point [3]fixed.Number

// SphereFile describes a Sphere.
type SphereFile struct {
	Center Point        `toml:"center"`
	Radius fixed.Number `toml:"radius"`
	Albedo fixed.Number `toml:"albedo"`
}

// PlaneFile describes a Plane.
type PlaneFile struct {
	Origin       Point        `toml:"origin"`
	Normal       Point        `toml:"normal"`
	Albedo       fixed.Number `toml:"albedo"`
	Checkerboard bool         `toml:"checkerboard"`
}

// LightFile describes a Directional light.
type LightFile struct {
	Direction Point        `toml:"direction"`
	Intensity fixed.Number `toml:"intensity"`
}

func (p Point) vec() vector.Vec3 {
	return vector.Vec3{X: p[0], Y: p[1], Z: p[2]}
}

func point(v vector.Vec3) Point {
	return Point{v.X, v.Y, v.Z}
}

// Load reads the scene file at path.
func Load(path string) (s *Scene, err error) {
	defer Error.WrapP(&err)

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		err = errs.Combine(err, f.Close())
	}()

	return Decode(f)
}

// Decode reads a scene file from r. Unknown keys are an error.
func Decode(r io.Reader) (s *Scene, err error) {
	defer Error.WrapP(&err)

	var file File

	md, err := toml.NewDecoder(r).Decode(&file)
	if err != nil {
		return nil, err
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, Error.New("unknown keys: %v", undecoded)
	}

	return file.Scene()
}

// Scene builds the scene described by f.
func (f *File) Scene() (s *Scene, err error) {
	defer integer.Recover(&err)

	s = &Scene{
		Width:  f.Width,
		Height: f.Height,
		FOV:    f.FOV,
	}

	for _, sf := range f.Spheres {
		s.Elements = append(s.Elements, &Sphere{
			Center: sf.Center.vec(),
			Radius: sf.Radius,
			Albedo: sf.Albedo,
		})
	}

	for _, pf := range f.Planes {
		normal := pf.Normal.vec()
		normal.Normalize()

		s.Elements = append(s.Elements, &Plane{
			Origin:       pf.Origin.vec(),
			Normal:       normal,
			Albedo:       pf.Albedo,
			Checkerboard: pf.Checkerboard,
		})
	}

	for _, lf := range f.Lights {
		s.Lights = append(s.Lights, NewDirectional(lf.Direction.vec(), lf.Intensity))
	}

	err = s.Validate()
	if err != nil {
		return nil, err
	}

	return s, nil
}

// Describe returns the file form of s.
func Describe(s *Scene) (f *File, err error) {
	f = &File{
		Width:  s.Width,
		Height: s.Height,
		FOV:    s.FOV,
	}

	for _, e := range s.Elements {
		switch e := e.(type) {
		case *Sphere:
			f.Spheres = append(f.Spheres, SphereFile{
				Center: point(e.Center),
				Radius: e.Radius,
				Albedo: e.Albedo,
			})
		case *Plane:
			f.Planes = append(f.Planes, PlaneFile{
				Origin:       point(e.Origin),
				Normal:       point(e.Normal),
				Albedo:       e.Albedo,
				Checkerboard: e.Checkerboard,
			})
		default:
			return nil, Error.New("unsupported element: %T", e)
		}
	}

	for _, l := range s.Lights {
		f.Lights = append(f.Lights, LightFile{
			Direction: point(l.Direction),
			Intensity: l.Intensity,
		})
	}

	return f, nil
}

// Encode writes s to w as a scene file.
func Encode(w io.Writer, s *Scene) (err error) {
	defer Error.WrapP(&err)

	f, err := Describe(s)
	if err != nil {
		return err
	}

	return toml.NewEncoder(w).Encode(f)
}
