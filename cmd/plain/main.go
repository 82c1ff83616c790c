package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/plain/config"
)

const version = "0.1.0"

type options struct {
	configPath string
	verbosity  int
	logPath    string
	config     *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "plain",
		Short:         "Parse plain English into dependency trees",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var logPath *string
			if opts.logPath != "" {
				logPath = &opts.logPath
			}
			commonlog.Configure(opts.verbosity, logPath)

			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			opts.config = cfg
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (.yaml, .yml or .toml)")
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", "increase log verbosity")
	rootCmd.PersistentFlags().StringVar(&opts.logPath, "log", "", "write logs to this file instead of stderr")

	rootCmd.AddCommand(newTokenizeCmd(opts))
	rootCmd.AddCommand(newParseCmd(opts))
	rootCmd.AddCommand(newCheckCmd(opts))
	rootCmd.AddCommand(newWatchCmd(opts))
	rootCmd.AddCommand(newLSPCmd(opts))

	return rootCmd
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln("plain:", err)
		os.Exit(1)
	}
}
