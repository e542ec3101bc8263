package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pashafst/png-secret/internal/infra/fsworkspace"
	"github.com/pashafst/png-secret/internal/usecase"
	"github.com/spf13/cobra"
)

func initCmd() *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a starter .pngsecret.yaml into a directory",
		Args:  cobra.RangeArgs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			abs, err := filepath.Abs(root)
			if err != nil {
				return fmt.Errorf("invalid directory: %w", err)
			}
			if info, err := os.Stat(abs); err != nil || !info.IsDir() {
				return fmt.Errorf("%s is not a directory", abs)
			}

			uc := usecase.NewInitProject(fsworkspace.NewInitializer())
			if err := uc.Execute(abs, force); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Initialized %s\n", filepath.Join(abs, fsworkspace.ConfigFileName))
			return nil
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")
	return c
}
