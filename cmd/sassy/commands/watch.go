package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/sassy/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Compile stylesheets whenever they are saved",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			metricsAddr, _ := cmd.Flags().GetString("metrics-addr")

			return c.app.Watch(cmd.Context(), app.WatchOptions{
				Debug:       debug,
				MetricsAddr: metricsAddr,
			})
		},
	}
	cmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090)")
	return cmd
}
