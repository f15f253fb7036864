package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hostbridge/appgate/internal/webdebug"
)

type serveOptions struct {
	listen     string
	watch      bool
	debounceMs int
}

func newServeCmd() *cobra.Command {
	var opts serveOptions

	cmd := &cobra.Command{
		Use:   "serve <scenario.yaml>",
		Short: "Serve the resolved configuration over HTTP for inspection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return webdebug.Run(webdebug.Options{
				ScenarioPath: args[0],
				Listen:       opts.listen,
				AutoReload:   opts.watch,
				DebounceMs:   opts.debounceMs,
				Logger:       slog.Default(),
			})
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&opts.listen, "listen", "", "http listen address (default 127.0.0.1:3311)")
	fs.BoolVar(&opts.watch, "watch", false, "re-resolve when the scenario file changes")
	fs.IntVar(&opts.debounceMs, "debounce-ms", 300, "auto-reload debounce window")
	return cmd
}
