package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"hostscan/collector"
	"hostscan/config"
	"hostscan/discovery"
	"hostscan/logger"
	"hostscan/report"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewRootCommand builds the hostscan command. A nil src scans the local host.
func NewRootCommand(src collector.Source) *cobra.Command {
	var (
		discoveryFlag string
		mode          discovery.Mode
	)

	cmd := &cobra.Command{
		Use:   "hostscan",
		Short: "Performs system level discovery and writes CSV output",
		Long: `hostscan performs system level discovery based upon the selected option
and writes each result set to a timestamped CSV file:

  system  : system level information
  process : process information
  top     : top 10 processes by memory
  disk    : disk information
  network : network connection information (usually needs root)
  all     : discover all`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			mode, err = discovery.ParseMode(discoveryFlag)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// past validation, failures are no longer usage errors
			cmd.SilenceUsage = true

			cfg := config.Load(config.DefaultEnvFile)

			log := logger.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogColor)
			slog.SetDefault(log)

			d := discovery.New(
				collector.New(src, log),
				report.NewWriter(cfg.OutputDir),
				cmd.OutOrStdout(),
				log,
			)

			results, err := d.Run(cmd.Context(), mode)
			for _, r := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %d records -> %s\n", r.Mode, r.Records, r.Path)
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&discoveryFlag, "discovery", "d", "",
		fmt.Sprintf("discovery option (%s)", discovery.ModeNames()))
	_ = cmd.MarkFlagRequired("discovery")
	_ = cmd.RegisterFlagCompletionFunc("discovery", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, 0, len(discovery.Modes))
		for _, m := range discovery.Modes {
			names = append(names, m.String())
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// withVersion shows version in the help text. cobra's Version field is left
// unset since it adds a --version flag.
func withVersion(cmd *cobra.Command, version string) *cobra.Command {
	cmd.Long = fmt.Sprintf("%s\n\nVersion: %s", cmd.Long, version)
	return cmd
}

// Execute runs the root command and exits non-zero on failure
func Execute(version string) {
	root := withVersion(NewRootCommand(nil), version)
	if err := root.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
