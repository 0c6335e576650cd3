package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"quill/internal/diagfmt"
	"quill/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [file.ql|directory]...",
	Short: "Type-check Quill sources without running them",
	Long: `Check lexes, parses and type-checks every given file, and every .ql file under
the given directories, in parallel. Without arguments the project around the
nearest quill.toml (or the current directory) is checked.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Int("jobs", 0, "max parallel workers (0=GOMAXPROCS)")
	checkCmd.Flags().Bool("cache", false, "reuse results of unchanged files from the disk cache")
	checkCmd.Flags().Bool("clear-cache", false, "drop the disk cache before checking")
	checkCmd.Flags().String("ui", "auto", "interactive progress (auto|on|off)")
	checkCmd.Flags().String("diagnostics", "pretty", "diagnostics format (pretty|short|json)")
}

// checkFileJSON is one entry of `quill check --diagnostics json`.
type checkFileJSON struct {
	Path        string                    `json:"path"`
	Cached      bool                      `json:"cached"`
	Error       string                    `json:"error,omitempty"`
	Diagnostics diagfmt.DiagnosticsOutput `json:"diagnostics"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	g, err := readGlobalOptions(cmd)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	jobs, err := flags.GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	useCache, err := flags.GetBool("cache")
	if err != nil {
		return fmt.Errorf("failed to get cache flag: %w", err)
	}
	clearCache, err := flags.GetBool("clear-cache")
	if err != nil {
		return fmt.Errorf("failed to get clear-cache flag: %w", err)
	}
	uiFlag, err := flags.GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}
	formatFlag, err := flags.GetString("diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get diagnostics flag: %w", err)
	}
	format, err := readDiagFormat(formatFlag)
	if err != nil {
		return err
	}

	roots := args
	if len(roots) == 0 {
		manifest, ok, err := loadProjectManifest(".")
		if err != nil {
			return err
		}
		roots = []string{"."}
		if ok {
			roots = manifest.checkRoots()
			// флаги CLI важнее манифеста
			if !flags.Changed("jobs") && manifest.Config.Check.Jobs > 0 {
				jobs = manifest.Config.Check.Jobs
			}
			if !flags.Changed("cache") && manifest.Config.Check.Cache != nil {
				useCache = *manifest.Config.Check.Cache
			}
		}
	}

	files, err := driver.ExpandPaths(roots)
	if err != nil {
		return fmt.Errorf("failed to collect files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no %s files found", driver.SourceExt)
	}

	opts := driver.CheckOptions{Options: g.driverOptions(), Jobs: jobs}
	if useCache || clearCache {
		cache, err := driver.OpenDiskCache("quill")
		if err != nil {
			return fmt.Errorf("failed to open cache: %w", err)
		}
		if clearCache {
			if err := cache.DropAll(); err != nil {
				return fmt.Errorf("failed to clear cache: %w", err)
			}
		}
		if useCache {
			opts.Cache = cache
		}
	}

	var results []driver.CheckResult
	if checkUI(mode, format, len(files), stdoutIsTerminal()) {
		results, err = runCheckWithUI(cmd.Context(), "check", files, opts)
	} else {
		results, err = driver.CheckFiles(cmd.Context(), files, opts)
	}
	if err != nil {
		return err
	}

	var failed int
	if format == diagFormatJSON {
		failed, err = writeCheckJSON(os.Stdout, results, g)
	} else {
		failed, err = writeCheckReport(os.Stderr, format, results, g)
	}
	if err != nil {
		return err
	}
	if g.timings {
		for _, r := range results {
			if r.Result == nil {
				continue
			}
			if err := r.Result.Timing.WriteSummary(os.Stderr, displayPath(r.Path, g.baseDir)); err != nil {
				return err
			}
		}
	}
	if failed > 0 {
		return errReported
	}
	return nil
}

func writeCheckReport(w io.Writer, format diagFormat, results []driver.CheckResult, g globalOptions) (int, error) {
	var failed, cached int
	for _, r := range results {
		if r.Cached {
			cached++
		}
		if !r.Failed() {
			continue
		}
		failed++
		if err := renderDiagnostics(w, format, r.Bag, r.FileSet, g); err != nil {
			return failed, err
		}
	}
	summary := fmt.Sprintf("checked %d file(s): %d failed", len(results), failed)
	if cached > 0 {
		summary += fmt.Sprintf(", %d cached", cached)
	}
	_, err := fmt.Fprintln(w, summary)
	return failed, err
}

func writeCheckJSON(w io.Writer, results []driver.CheckResult, g globalOptions) (int, error) {
	failed := 0
	out := make([]checkFileJSON, 0, len(results))
	for _, r := range results {
		entry := checkFileJSON{
			Path:        displayPath(r.Path, g.baseDir),
			Cached:      r.Cached,
			Diagnostics: diagfmt.BuildDiagnosticsOutput(r.Bag, r.FileSet, g.jsonOpts()),
		}
		if r.Failed() {
			failed++
			if r.Err != nil {
				entry.Error = r.Err.Error()
			}
		}
		out = append(out, entry)
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return failed, encoder.Encode(out)
}

func displayPath(path, base string) string {
	if base == "" {
		return filepath.ToSlash(path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	if rel, err := filepath.Rel(base, abs); err == nil && rel != "." && !strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(rel)
	}
	return filepath.ToSlash(path)
}
