package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	// Set via ldflags at build time
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if a.jsonOut {
				return writeJSON(out, map[string]string{
					"version":    Version,
					"commit":     Commit,
					"build_date": BuildDate,
					"go_version": runtime.Version(),
					"os":         runtime.GOOS,
					"arch":       runtime.GOARCH,
				})
			}

			fmt.Fprintf(out, "gplay %s\n", Version)
			if a.verbose {
				fmt.Fprintf(out, "  commit:     %s\n", Commit)
				fmt.Fprintf(out, "  built:      %s\n", BuildDate)
				fmt.Fprintf(out, "  go version: %s\n", runtime.Version())
				fmt.Fprintf(out, "  platform:   %s/%s\n", runtime.GOOS, runtime.GOARCH)
			}
			return nil
		},
	}
}
