package render

import (
	"context"
	"runtime"
	"time"

	"github.com/tliron/commonlog"
	"github.com/zeebo/errs"
	"golang.org/x/sync/errgroup"

	"github.com/calebcase/fixray/fixed"
	"github.com/calebcase/fixray/integer"
	"github.com/calebcase/fixray/scene"
)

// Error is the class of render errors.
var Error = errs.Class("render")

var log = commonlog.GetLogger("fixray.render")

// Options controls Render.
type Options struct {
	// Workers is the number of rows shaded at once. Zero means GOMAXPROCS.
	Workers int
}

// Render shades every pixel of s.
//
// Rows are shaded concurrently. Arithmetic failures while shading are
// returned as errors; the first one stops the render.
func Render(ctx context.Context, s *scene.Scene, opts Options) (f *Frame, err error) {
	defer Error.WrapP(&err)
	defer integer.Recover(&err)

	err = s.Validate()
	if err != nil {
		return nil, err
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	start := time.Now()
	log.Infof("rendering %dx%d with %d workers", s.Width, s.Height, workers)

	camera := s.Camera()
	f = NewFrame(s.Width, s.Height)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for y := int16(0); y < s.Height; y++ {
		if gctx.Err() != nil {
			break
		}

		y := y // per-iteration copy (Go >= 1.22 loop semantics on older toolchains)
		row := f.Row(y)

		g.Go(func() (err error) {
			defer integer.Recover(&err)

			err = gctx.Err()
			if err != nil {
				return err
			}

			for x := range row {
				row[x] = Shade(s, camera.PrimeRay(int16(x), y))
			}

			log.Debugf("row %d shaded", y)

			return nil
		})
	}

	err = g.Wait()
	if err != nil {
		return nil, err
	}

	err = ctx.Err()
	if err != nil {
		return nil, err
	}

	log.Infof("rendered %dx%d in %s", s.Width, s.Height, time.Since(start))

	return f, nil
}

// ShadowBias is how far along the light direction a shadow ray starts from
// the hit point, so the surface does not shadow itself.
var ShadowBias = fixed.FromFraction(1, 20)

// Shade returns the light reflected toward the origin of ray: the Lambert
// term of every directional light that reaches the hit point, scaled by the
// albedo over pi. A ray that hits nothing is black.
func Shade(s *scene.Scene, ray scene.Ray) (c fixed.Number) {
	hit, ok := s.Trace(ray)
	if !ok {
		return c
	}

	point := ray.At(hit.Distance)
	normal := hit.Element.SurfaceNormal(point)
	albedo := hit.Element.Color(point)

	for _, l := range s.Lights {
		toLight := l.ToLight()

		origin := toLight
		origin.Scale(ShadowBias)
		origin.Add(point)

		_, shadowed := s.Trace(scene.Ray{
			Origin:    origin,
			Direction: toLight,
		})
		if shadowed {
			continue
		}

		power := normal.Dot(toLight)
		if !power.IsPositive() {
			continue
		}

		added := l.Intensity
		added.Mul(power)
		added.Div(fixed.Pi())
		added.Mul(albedo)

		c.Add(added)
	}

	return c
}
