package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/sassy/internal/app"
)

func (c *CLI) newCompileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compile [files...]",
		Short: "Compile the given stylesheets once",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			debug, _ := cmd.Flags().GetBool("debug")

			return c.app.Compile(cmd.Context(), args, app.CompileOptions{Debug: debug})
		},
	}
}
