package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/plain/lsp"
)

func newLSPCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server on stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			return lsp.NewServer(opts.config, version).RunStdio()
		},
	}
}
