package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"quill/internal/diagfmt"
	"quill/internal/driver"
)

// globalOptions are the persistent flags every subcommand reads.
type globalOptions struct {
	colorStderr    bool
	colorStdout    bool
	maxDiagnostics int
	timings        bool
	comments       bool
	pathMode       diagfmt.PathMode
	baseDir        string
}

func readGlobalOptions(cmd *cobra.Command) (globalOptions, error) {
	flags := cmd.Root().PersistentFlags()
	var opts globalOptions

	colorFlag, err := flags.GetString("color")
	if err != nil {
		return opts, fmt.Errorf("failed to get color flag: %w", err)
	}
	switch strings.ToLower(colorFlag) {
	case "on", "always":
		opts.colorStderr, opts.colorStdout = true, true
	case "off", "never":
	case "auto", "":
		opts.colorStderr = isTerminal(os.Stderr)
		opts.colorStdout = isTerminal(os.Stdout)
	default:
		return opts, fmt.Errorf("invalid --color value %q (expected auto|on|off)", colorFlag)
	}

	if opts.maxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
		return opts, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if opts.timings, err = flags.GetBool("timings"); err != nil {
		return opts, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if opts.comments, err = flags.GetBool("comments"); err != nil {
		return opts, fmt.Errorf("failed to get comments flag: %w", err)
	}

	modeFlag, err := flags.GetString("path-mode")
	if err != nil {
		return opts, fmt.Errorf("failed to get path-mode flag: %w", err)
	}
	mode, ok := diagfmt.ParsePathMode(modeFlag)
	if !ok {
		return opts, fmt.Errorf("invalid --path-mode value %q", modeFlag)
	}
	opts.pathMode = mode
	if wd, err := os.Getwd(); err == nil {
		opts.baseDir = wd
	}
	return opts, nil
}

func (g globalOptions) driverOptions() driver.Options {
	return driver.Options{
		MaxDiagnostics: g.maxDiagnostics,
		Comments:       g.comments,
		Timings:        g.timings,
	}
}

func (g globalOptions) prettyOpts() diagfmt.PrettyOpts {
	return diagfmt.PrettyOpts{
		Color:     g.colorStderr,
		Context:   2,
		PathMode:  g.pathMode,
		BaseDir:   g.baseDir,
		ShowNotes: true,
	}
}

func (g globalOptions) jsonOpts() diagfmt.JSONOpts {
	return diagfmt.JSONOpts{
		IncludePositions: true,
		PathMode:         g.pathMode,
		BaseDir:          g.baseDir,
		Max:              g.maxDiagnostics,
		IncludeNotes:     true,
	}
}
