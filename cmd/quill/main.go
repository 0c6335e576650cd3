package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"quill/internal/version"
)

var rootCmd = &cobra.Command{
	Use:           "quill",
	Short:         "Quill language interpreter and tools",
	Long:          `Quill runs and checks programs written in the Quill expression language`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// errReported means the failure has already been rendered (diagnostics or a
// runtime panic); main only has to set the exit code.
var errReported = errors.New("reported")

// cleanups run after the command finishes, also on error: cobra skips
// PersistentPostRun when RunE fails.
var cleanups []func(failed bool)

func runCleanups(failed bool) {
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i](failed)
	}
	cleanups = nil
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	pf := rootCmd.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Int("max-diagnostics", 64, "maximum number of diagnostics to collect per file")
	pf.Bool("timings", false, "print per-phase timings to stderr")
	pf.Bool("comments", false, "allow '#' line comments in sources")
	pf.String("path-mode", "auto", "how to print file paths (auto|absolute|relative|basename)")
	pf.String("trace", "off", "trace level (off|phase|detail|debug)")
	pf.String("trace-output", "", "trace destination file (default stderr)")
	pf.String("trace-format", "auto", "trace format (auto|text|ndjson)")
	pf.Int("trace-ring-size", 0, "keep the last N trace events in memory and write them only on failure")
	pf.String("cpu-profile", "", "write CPU profile to file")
	pf.String("mem-profile", "", "write heap profile to file on exit")
	pf.String("runtime-trace", "", "write Go runtime trace to file")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		stopProfiling, err := setupProfiling(cmd)
		if err != nil {
			return err
		}
		cleanups = append(cleanups, stopProfiling)
		stopTracing, err := setupTracing(cmd)
		if err != nil {
			return err
		}
		cleanups = append(cleanups, stopTracing)
		return nil
	}
}

// main executes the root command. Any error, including a program that
// failed to check or run, exits with status 1.
func main() {
	rootCmd.Version = version.Version
	err := rootCmd.Execute()
	runCleanups(err != nil)
	if err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "quill: %v\n", err)
		}
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
