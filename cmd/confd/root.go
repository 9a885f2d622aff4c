package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "confd",
		Short: "Serve config file values over HTTP",
		Long: `confd answers GET requests by walking a directory of config files.

A request path names directories, then a file, then fields inside it:

  GET /api/v1/movies/library/The Prestige/Director

reads movies/library.json (or .yaml, .yml, .toml, .hcl, .txt, .md) under the
config root and returns the Director field of "The Prestige".`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.AddCommand(newServeCmd(), newVersionCmd())

	return rootCmd
}
