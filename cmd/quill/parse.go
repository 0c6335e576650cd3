package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"quill/internal/ast"
	"quill/internal/diagfmt"
	"quill/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.ql",
	Short: "Parse a Quill source file and print its syntax tree",
	Long: `Parse analyzes a Quill source file and outputs its abstract syntax tree.
With --types the file is also type-checked and every expression is annotated.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("format", "tree", "output format (tree|sexpr|json)")
	parseCmd.Flags().Bool("types", false, "type-check and annotate expressions with their types")
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	withTypes, err := cmd.Flags().GetBool("types")
	if err != nil {
		return fmt.Errorf("failed to get types flag: %w", err)
	}
	g, err := readGlobalOptions(cmd)
	if err != nil {
		return err
	}

	var (
		res    *driver.DiagnoseResult
		runErr error
	)
	if withTypes {
		res, runErr = driver.Diagnose(cmd.Context(), filePath, g.driverOptions())
	} else {
		var parsed *driver.ParseResult
		parsed, runErr = driver.Parse(cmd.Context(), filePath, g.maxDiagnostics)
		if parsed != nil {
			res = &driver.DiagnoseResult{
				FileSet: parsed.FileSet,
				File:    parsed.File,
				Builder: parsed.Builder,
				FileID:  parsed.FileID,
				Bag:     parsed.Bag,
			}
		}
	}
	if res == nil {
		return runErr
	}
	if runErr != nil {
		// дерево частичного разбора бесполезно: только диагностика
		return renderFailure(os.Stderr, diagFormatPretty, runErr, res.Bag, res.FileSet, g)
	}

	astOpts := diagfmt.ASTOpts{PathMode: g.pathMode, BaseDir: g.baseDir}
	if withTypes {
		astOpts.TypeOf = func(id ast.ExprID) string { return res.TypeLabel(id) }
	}
	switch format {
	case "tree", "pretty":
		return diagfmt.FormatASTPretty(os.Stdout, res.Builder, res.FileID, res.FileSet, astOpts)
	case "sexpr":
		return diagfmt.FormatASTSExpr(os.Stdout, res.Builder, res.FileID)
	case "json":
		return diagfmt.FormatASTJSON(os.Stdout, res.Builder, res.FileID, astOpts)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
