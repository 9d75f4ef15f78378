package logscrub

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagJSON       bool
	flagThreads    int
	flagNoColor    bool
	flagVerbose    int
	flagDryRun     bool
	flagNoCache    bool
	flagSelfUpdate bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the logscrub CLI.
var rootCmd = &cobra.Command{
	Use:           "logscrub",
	Short:         "Anonymise sensitive tokens in log trees",
	Long:          "Logscrub copies a directory tree, replacing every substring matched by your regex rules with a placeholder, so logs can be shared without leaking sensitive values.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the logscrub CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON")
	rootCmd.PersistentFlags().IntVar(&flagThreads, "threads", 0, "worker count (0 = GOMAXPROCS)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().CountVarP(&flagVerbose, "verbose", "v", "increase logging verbosity (use -vv for debug)")
	rootCmd.PersistentFlags().BoolVar(&flagDryRun, "dry-run", false, "show what would be processed without writing files")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "disable incremental run cache")
	rootCmd.PersistentFlags().BoolVar(&flagSelfUpdate, "self-update", false, "update logscrub to the latest release")
}
