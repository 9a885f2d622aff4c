package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/0xalexb/confd"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "confd %s (commit %s, built %s)\n",
				confd.Version, confd.Commit, confd.CompiledAt)

			return err //nolint:wrapcheck
		},
	}
}
