package cli

import (
	"fmt"

	"github.com/pashafst/png-secret/internal/usecase"
	"github.com/spf13/cobra"
)

func encodeCmd(g *globalFlags) *cobra.Command {
	c := &cobra.Command{
		Use:   "encode <file> <chunk-type> <message> [output]",
		Short: "Hide a message in a new chunk appended to a PNG file",
		Long: "Appends a chunk of the given 4-letter type holding the message.\n" +
			"The result is written to output if given, otherwise back to file.",
		Args: cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(g)
			if err != nil {
				return err
			}
			defer a.close()

			in := usecase.EncodeInput{
				Path:      args[0],
				ChunkType: args[1],
				Message:   args[2],
			}
			if len(args) == 4 {
				in.Output = args[3]
			}

			ch, err := usecase.NewEncode(a.store, usecase.WithLogger(a.log)).Execute(cmd.Context(), in)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %q for type %s (%d bytes, crc %08x)\n",
				in.Message, ch.Type(), ch.Length(), ch.CRC())
			return nil
		},
	}
	return c
}
