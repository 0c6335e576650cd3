package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"quill/internal/driver"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] [file.ql]",
	Short: "Check and execute a Quill program",
	Long: `Run type-checks a Quill source file and evaluates it, writing print output to stdout.
Without an argument the [run].main entry of the nearest quill.toml is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExecution,
}

func init() {
	runCmd.Flags().String("diagnostics", "pretty", "diagnostics format (pretty|short|json)")
}

func runExecution(cmd *cobra.Command, args []string) error {
	g, err := readGlobalOptions(cmd)
	if err != nil {
		return err
	}
	formatFlag, err := cmd.Flags().GetString("diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get diagnostics flag: %w", err)
	}
	format, err := readDiagFormat(formatFlag)
	if err != nil {
		return err
	}

	filePath, err := resolveRunPath(args)
	if err != nil {
		return err
	}

	out := bufio.NewWriter(os.Stdout)
	opts := g.driverOptions()
	opts.Stdout = out
	res, runErr := driver.Run(cmd.Context(), filePath, opts)
	// вывод до паники сохраняется
	if err := out.Flush(); err != nil {
		return fmt.Errorf("write stdout: %w", err)
	}

	if g.timings && res != nil {
		if err := res.Timing.WriteSummary(os.Stderr, "timings"); err != nil {
			return err
		}
	}
	if runErr == nil {
		return nil
	}
	if res == nil {
		return runErr
	}
	return renderFailure(os.Stderr, format, runErr, res.Bag, res.FileSet, g)
}

func resolveRunPath(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	manifest, ok, err := loadProjectManifest(".")
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%s", noManifestMessage)
	}
	return manifest.runTarget()
}
