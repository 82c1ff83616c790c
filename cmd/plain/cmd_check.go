package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/dhamidi/plain/workspace"
)

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check [pattern...]",
		Short: "Report unknown words and unattached phrases",
		Long: "Check every file matching the given doublestar patterns, or the " +
			"configured workspace patterns below the current directory.",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := os.Getwd()
			if err != nil {
				return err
			}
			w, err := workspace.New(dir, opts.config)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				if err := w.ScanAll(); err != nil {
					return err
				}
			}
			for _, pattern := range args {
				matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
				if err != nil {
					return fmt.Errorf("glob %q: %w", pattern, err)
				}
				if len(matches) == 0 {
					return fmt.Errorf("no files match %q", pattern)
				}
				for _, path := range matches {
					if err := w.ScanFile(path); err != nil {
						return err
					}
				}
			}

			failures := 0
			for _, path := range w.Paths() {
				failures += report(cmd.OutOrStdout(), path, w.GetFile(path))
			}
			if failures > 0 {
				return fmt.Errorf("%d errors", failures)
			}
			return nil
		},
	}
}

// report prints the problems of doc and returns how many are errors.
// Unattached phrases are always reported by check.
func report(out io.Writer, path string, doc *workspace.Document) int {
	errors := 0
	for _, p := range doc.Problems(true) {
		fmt.Fprintf(out, "%s:%s\n", path, p)
		if p.Severity == workspace.SeverityError {
			errors++
		}
	}
	return errors
}
