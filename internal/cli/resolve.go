package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hostbridge/appgate/internal/confhost"
	"github.com/hostbridge/appgate/internal/render"
	"github.com/hostbridge/appgate/internal/scenario"
)

type resolveOptions struct {
	format  string
	noColor bool
}

func newResolveCmd() *cobra.Command {
	var opts resolveOptions

	cmd := &cobra.Command{
		Use:   "resolve <scenario.yaml>",
		Short: "Resolve a scenario and print the effective configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolveWithOptions(cmd, args[0], opts)
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&opts.format, "format", "f", "text", "output format (text, json)")
	fs.BoolVar(&opts.noColor, "no-color", false, "disable styled output")
	return cmd
}

func runResolveWithOptions(cmd *cobra.Command, path string, opts resolveOptions) error {
	sc, err := scenario.Load(path)
	if err != nil {
		return err
	}
	res, err := confhost.Apply(sc, slog.Default())
	if err != nil {
		return err
	}

	switch opts.format {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case "text":
		styled := !opts.noColor && render.IsTerminal(os.Stdout)
		_, err := fmt.Fprint(cmd.OutOrStdout(), render.Result(res, styled))
		return err
	default:
		return fmt.Errorf("unknown format %q (expect: text|json)", opts.format)
	}
}
