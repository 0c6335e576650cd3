package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"quill/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the quill version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		g, err := readGlobalOptions(cmd)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), version.String(g.colorStdout))
		return err
	},
}
