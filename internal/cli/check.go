package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hostbridge/appgate/internal/confhost"
	"github.com/hostbridge/appgate/internal/scenario"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <scenario.yaml>",
		Short: "Validate a configuration scenario",
		Long: "Loads a scenario, dispatches every directive through the registry and runs " +
			"the full cascade. The first validation failure is printed and the command " +
			"exits non-zero, mirroring how the host server aborts startup.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := scenario.Load(args[0])
			if err != nil {
				return err
			}
			res, err := confhost.Apply(sc, slog.Default())
			if err != nil {
				return err
			}
			locations := 0
			for i := range res.Servers {
				locations += countLocations(&res.Servers[i].Root)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "configuration OK: %d servers, %d locations\n",
				len(res.Servers), locations)
			return nil
		},
	}
}

func countLocations(d *confhost.DirReport) int {
	n := 1
	for i := range d.Children {
		n += countLocations(&d.Children[i])
	}
	return n
}
