// Package cli implements the voluta command line interface.
package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	flagVerbose bool
	flagColor   ColorMode
)

var rootCmd = &cobra.Command{
	Use:   "voluta",
	Short: "Multi-pattern text search over files, trees, and streams",
	Long: `Voluta searches byte corpora for many fixed patterns in a single
automaton pass. It scans files, directory trees, standard input, and
growing log files, with identical results across its scan strategies.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().Var(&flagColor, "color", "when to color output: auto, always, never")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(tailCmd)
	rootCmd.AddCommand(versionCmd)
}

// exitCode is recorded by command runs; Execute folds it with cobra errors.
var exitCode int

// Execute runs the CLI and returns the process exit code:
// 0 = match found, 1 = no match, 2 = error.
func Execute() int {
	args := os.Args[1:]
	// Config file flags slot in right after the subcommand, so flags given
	// on the command line still win.
	if extra := LoadConfigArgs(); len(extra) > 0 && len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		merged := make([]string, 0, len(args)+len(extra))
		merged = append(merged, args[0])
		merged = append(merged, extra...)
		merged = append(merged, args[1:]...)
		args = merged
	}
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		return 2
	}
	return exitCode
}
