package cli

import (
	"github.com/spf13/cobra"

	"github.com/calebcase/fixray/internal/config"
	"github.com/calebcase/fixray/scene"
)

func newSceneCommand(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scene",
		Short: "Print a scene file",
		Long: `Print the configured scene as a scene file. Without --scene this is the
built in scene, which makes a starting point for new scenes.`,
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

			return scene.Encode(cmd.OutOrStdout(), s)
		},
	}

	flags := cmd.Flags()
	flags.String("scene", "", "scene file (toml)")
	flags.Int16("width", 0, "override the scene width")
	flags.Int16("height", 0, "override the scene height")

	return cmd
}
