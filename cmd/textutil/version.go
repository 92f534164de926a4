package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"mercator-hq/textutil/pkg/cli"
	"mercator-hq/textutil/pkg/telemetry/health"
)

// Build metadata, set with -ldflags "-X main.Version=...".
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var versionJSON bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long: `Print the version, Git commit, build date and Go toolchain.

The --json output matches the body of GET /version.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := health.VersionInfo{
			Version:   Version,
			Commit:    GitCommit,
			BuildTime: BuildDate,
			GoVersion: runtime.Version(),
		}

		out := cmd.OutOrStdout()
		if versionJSON {
			return cli.NewFormatter(cli.FormatJSON).FormatTo(out, info)
		}

		fmt.Fprintln(out, cli.Title("textutil "+info.Version))
		cli.KeyValue(out, "commit", info.Commit)
		cli.KeyValue(out, "built", info.BuildTime)
		cli.KeyValue(out, "go", info.GoVersion)
		cli.KeyValue(out, "platform", runtime.GOOS+"/"+runtime.GOARCH)
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "print version information as JSON")
	rootCmd.AddCommand(versionCmd)
}
