package cli

import (
	"fmt"

	"github.com/pashafst/png-secret/internal/usecase"
	"github.com/spf13/cobra"
)

func createCmd(g *globalFlags) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "create <file>",
		Short: "Write an empty container (signature only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(g)
			if err != nil {
				return err
			}
			defer a.close()

			uc := usecase.NewCreate(a.store, a.store, usecase.WithLogger(a.log))
			if err := uc.Execute(cmd.Context(), args[0], force); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", args[0])
			return nil
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	return c
}
