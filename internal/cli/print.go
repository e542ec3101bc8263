package cli

import (
	"strings"

	"github.com/pashafst/png-secret/internal/usecase"
	"github.com/spf13/cobra"
)

func printCmd(g *globalFlags) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "print <file>",
		Short: "Print every chunk of a PNG file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(g)
			if err != nil {
				return err
			}
			defer a.close()

			f := strings.ToLower(strings.TrimSpace(format))
			if f == "" {
				f = a.cfg.Output.Format
			}

			c, err := usecase.NewInspect(a.store, usecase.WithLogger(a.log)).Execute(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return printContainer(cmd.OutOrStdout(), args[0], c, f)
		},
	}

	c.Flags().StringVar(&format, "format", "", "Output format: pretty|json|raw (default from config, else pretty)")
	return c
}
