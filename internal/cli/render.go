package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/calebcase/fixray/internal/config"
	"github.com/calebcase/fixray/render"
	"github.com/calebcase/fixray/view"
)

var log = commonlog.GetLogger("fixray.cli")

func newRenderCommand(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a scene",
		Long: `Render a scene to a PNG. Without --scene the built in scene is rendered:
three spheres in front of a wall above a checkerboard floor.

The linear frame can be saved with --frame and developed again later with
"fixray develop".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := config.New()

			err := v.BindPFlags(cmd.Flags())
			if err != nil {
				return err
			}

			c, err := config.Load(v, g.config)
			if err != nil {
				return err
			}

			s, err := c.Scene()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			f, err := render.Render(ctx, s, render.Options{Workers: c.Workers})
			if err != nil {
				return err
			}

			if c.Frame != "" {
				err = create(c.Frame, func(out *os.File) error {
					return render.WriteFrame(out, f)
				})
				if err != nil {
					return err
				}

				log.Noticef("wrote %s", c.Frame)
			}

			return develop(ctx, c, f)
		},
	}

	flags := cmd.Flags()
	flags.String("scene", "", "scene file (toml)")
	flags.Int16("width", 0, "override the scene width")
	flags.Int16("height", 0, "override the scene height")
	flags.StringP("output", "o", "render.png", "PNG to write (empty to skip)")
	flags.String("frame", "", "also write the linear frame stream here")
	flags.Bool("dither", true, "dither to black and white")
	flags.Int("workers", 0, "rows shaded at once (0 for GOMAXPROCS)")
	flags.Bool("view", false, "show the result in a window")
	flags.Int("scale", 2, "window scale")

	return cmd
}

// develop writes and shows f as configured.
func develop(ctx context.Context, c *config.Config, f *render.Frame) (err error) {
	if c.Output == "" && !c.View {
		return nil
	}

	img, err := render.Develop(f, render.DevelopOptions{Dither: c.Dither})
	if err != nil {
		return err
	}

	if c.Output != "" {
		err = create(c.Output, func(out *os.File) error {
			return render.WritePNG(out, img)
		})
		if err != nil {
			return err
		}

		log.Noticef("wrote %s", c.Output)
	}

	if c.View && ctx.Err() == nil {
		return view.Show("fixray", img, c.Scale)
	}

	return nil
}
