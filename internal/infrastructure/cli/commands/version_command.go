package commands

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/pyrun/internal/version"
)

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show pyrun version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			writeVersion(cmd.OutOrStdout(), short)
			return nil
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "Print only the version number")
	return cmd
}

// writeVersion prints "pyrun version X (commit, date)" plus the Go toolchain.
func writeVersion(out io.Writer, short bool) {
	if short {
		fmt.Fprintln(out, version.Version)
		return
	}

	var build []string
	for _, part := range []string{version.Commit, version.BuildDate} {
		if part != "" {
			build = append(build, part)
		}
	}
	line := "pyrun version " + version.Version
	if len(build) > 0 {
		line += " (" + strings.Join(build, ", ") + ")"
	}
	fmt.Fprintln(out, line)
	fmt.Fprintf(out, "%s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
