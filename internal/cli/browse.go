package cli

import (
	"github.com/pashafst/png-secret/internal/ui/tui"
	"github.com/pashafst/png-secret/internal/usecase"
	"github.com/spf13/cobra"
)

func browseCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "browse <file>",
		Short: "Browse the chunks of a PNG file interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(g)
			if err != nil {
				return err
			}
			defer a.close()

			c, err := usecase.NewInspect(a.store, usecase.WithLogger(a.log)).Execute(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return tui.Run(tui.Deps{
				Path:      args[0],
				Container: c,
				Logger:    a.log,
				Debug:     g.debug,
			})
		},
	}
}
