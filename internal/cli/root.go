// Package cli implements the appgate-conf command tree.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hostbridge/appgate/internal/logging"
)

// NewRootCmd builds the full command tree.
func NewRootCmd() *cobra.Command {
	var logLevel string
	var logFormat string

	cmd := &cobra.Command{
		Use:           "appgate-conf",
		Short:         "Inspect and resolve appgate module configuration",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			slog.SetDefault(logging.NewLogger(logging.ParseLevel(logLevel), logFormat))
		},
	}
	pf := cmd.PersistentFlags()
	pf.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.StringVar(&logFormat, "log-format", "text", "log format (text, json)")

	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newResolveCmd())
	cmd.AddCommand(newDirectivesCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}
