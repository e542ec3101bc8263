package cli

import (
	"os"

	"github.com/spf13/cobra"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// globalFlags holds the persistent flags shared by every subcommand.
type globalFlags struct {
	debug  bool
	config string
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	cmd := &cobra.Command{
		Use:          "pngsecret",
		Short:        "pngsecret — hide messages in PNG chunks",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "enable verbose logging to .pngsecret/logs/pngsecret.log")
	cmd.PersistentFlags().StringVar(&g.config, "config", "", "Path to .pngsecret.yaml (optional; searched upward if omitted)")

	cmd.AddCommand(
		encodeCmd(g),
		decodeCmd(g),
		removeCmd(g),
		printCmd(g),
		createCmd(g),
		browseCmd(g),
		initCmd(),
		versionCmd(),
	)
	return cmd
}
