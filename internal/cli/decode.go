package cli

import (
	"fmt"

	"github.com/pashafst/png-secret/internal/usecase"
	"github.com/spf13/cobra"
)

func decodeCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <file> <chunk-type>",
		Short: "Print the message stored in the first chunk of a type",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(g)
			if err != nil {
				return err
			}
			defer a.close()

			ch, err := usecase.NewDecode(a.store, usecase.WithLogger(a.log)).Execute(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ch.DataString())
			return nil
		},
	}
}
