package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

func main() {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:          "externgen",
		Short:        "Generate Haxe extern declarations from declaration models",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			var path *string
			if opts.logPath != "" {
				path = &opts.logPath
			}
			commonlog.Configure(opts.verbose, path)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.config, "config", "c", "", "config file (default ./externgen.toml)")
	flags.StringVar(&opts.rules, "rules", "", "rules file overriding the configured one")
	flags.CountVarP(&opts.verbose, "verbose", "v", "increase log verbosity")
	flags.StringVar(&opts.logPath, "log", "", "write logs to this file instead of stderr")

	rootCmd.AddCommand(newGenerateCmd(opts))
	rootCmd.AddCommand(newDumpCmd(opts))
	rootCmd.AddCommand(newCheckCmd(opts))
	rootCmd.AddCommand(newProjectCmd(opts))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
