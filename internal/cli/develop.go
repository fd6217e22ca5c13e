package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/calebcase/fixray/internal/config"
	"github.com/calebcase/fixray/render"
)

func newDevelopCommand(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "develop",
		Short: "Develop a saved frame into a PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			v := config.New()

			err = v.BindPFlags(cmd.Flags())
			if err != nil {
				return err
			}

			c, err := config.Load(v, g.config)
			if err != nil {
				return err
			}

			if c.Frame == "" {
				return config.Error.New("no frame to develop")
			}

			in, err := os.Open(c.Frame)
			if err != nil {
				return err
			}
			defer func() {
				_ = in.Close()
			}()

			f, err := render.ReadFrame(in)
			if err != nil {
				return err
			}

			log.Infof("read %dx%d frame from %s", f.Width, f.Height, c.Frame)

			return develop(cmd.Context(), c, f)
		},
	}

	flags := cmd.Flags()
	flags.String("frame", "", "frame stream to develop")
	flags.StringP("output", "o", "render.png", "PNG to write (empty to skip)")
	flags.Bool("dither", true, "dither to black and white")
	flags.Bool("view", false, "show the result in a window")
	flags.Int("scale", 2, "window scale")

	return cmd
}
