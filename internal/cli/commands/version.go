package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// BuildInfo identifies the running binary.
type BuildInfo struct {
	Version   string `json:"version" yaml:"version"`
	GitCommit string `json:"commit,omitempty" yaml:"commit,omitempty"`
	BuildDate string `json:"date,omitempty" yaml:"date,omitempty"`
}

// NewVersionCommand creates the version command.
func NewVersionCommand(info BuildInfo) *cobra.Command {
	var short bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display layerlint version, commit and build date.`,
		Example: `  layerlint version
  layerlint version --short`,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			if short {
				_, _ = fmt.Fprintln(out, info.Version)
				return
			}
			_, _ = fmt.Fprintf(out, "layerlint v%s\n", info.Version)
			_, _ = fmt.Fprintln(out, "Layered lint configuration composer and import sorter")
			if known(info.GitCommit) || known(info.BuildDate) {
				_, _ = fmt.Fprintf(out, "commit %s, built %s\n", orUnknown(info.GitCommit), orUnknown(info.BuildDate))
			}
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "Print only the version number")
	return cmd
}

func known(s string) bool {
	return s != "" && s != "unknown"
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
