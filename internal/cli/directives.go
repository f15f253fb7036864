package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hostbridge/appgate/internal/render"
	"github.com/hostbridge/appgate/pkg/gateconf"
)

func newDirectivesCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "directives",
		Short: "List every recognized directive",
		RunE: func(cmd *cobra.Command, args []string) error {
			styled := !noColor && render.IsTerminal(os.Stdout)
			_, err := fmt.Fprint(cmd.OutOrStdout(),
				render.DirectivesTable(gateconf.Directives(), styled))
			return err
		},
	}
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable styled output")
	return cmd
}
