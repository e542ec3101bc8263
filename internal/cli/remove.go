package cli

import (
	"fmt"

	"github.com/pashafst/png-secret/internal/usecase"
	"github.com/spf13/cobra"
)

func removeCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <file> <chunk-type>",
		Short: "Remove the first chunk of a type and rewrite the file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(g)
			if err != nil {
				return err
			}
			defer a.close()

			removed, err := usecase.NewRemove(a.store, usecase.WithLogger(a.log)).Execute(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed chunk %s (%d bytes)\n", removed.Type(), removed.Length())
			return nil
		},
	}
}
