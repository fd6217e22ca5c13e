// Package cli implements the fixray command line.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

// Version is the fixray release.
var Version = "0.1.0-dev"

type globals struct {
	config  string
	verbose int
	quiet   bool
}

// NewRootCommand returns the fixray command with all subcommands attached.
func NewRootCommand() *cobra.Command {
	g := &globals{}

	root := &cobra.Command{
		Use:   "fixray",
		Short: "fixray - a ray tracer on 16-bit fixed point arithmetic",
		Long: `fixray renders scenes of spheres and planes using only 16-bit integer
operations: numbers are Q16.16 fixed point values built from 8-bit limbs, and
every multiply, divide and square root runs on 4-bit digits.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			verbosity := g.verbose
			if g.quiet {
				verbosity = -1
			}

			commonlog.Configure(verbosity, nil)
		},
	}

	root.PersistentFlags().StringVar(&g.config, "config", "", "configuration file path (toml, yaml or json)")
	root.PersistentFlags().CountVarP(&g.verbose, "verbose", "v", "more logging (repeat for debug)")
	root.PersistentFlags().BoolVarP(&g.quiet, "quiet", "q", false, "only log errors")

	root.AddCommand(
		newRenderCommand(g),
		newDevelopCommand(g),
		newSceneCommand(g),
		newVersionCommand(),
	)

	return root
}

// Execute runs the command line and exits on error.
func Execute() {
	err := NewRootCommand().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
