package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/dhamidi/plain/workspace"
)

func newWatchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "watch [dir]",
		Short: "Re-check documents whenever they change",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			w, err := workspace.New(dir, opts.config)
			if err != nil {
				return err
			}
			if err := w.ScanAll(); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, path := range w.Paths() {
				report(out, path, w.GetFile(path))
			}

			watcher, err := workspace.NewWatcher(w)
			if err != nil {
				return fmt.Errorf("start watcher: %w", err)
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			if err := watcher.Start(ctx); err != nil {
				return err
			}
			defer watcher.Stop()

			for event := range watcher.Events() {
				if event.Document == nil {
					fmt.Fprintf(out, "%s: removed\n", event.Path)
					continue
				}
				if report(out, event.Path, event.Document) == 0 {
					fmt.Fprintf(out, "%s: ok\n", event.Path)
				}
			}
			return ignoreCanceled(ctx.Err())
		},
	}
}

func ignoreCanceled(err error) error {
	if err == context.Canceled {
		return nil
	}
	return err
}
