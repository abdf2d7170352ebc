package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/benoitkugler/gridlayout/config"
	"github.com/benoitkugler/gridlayout/logger"
	"github.com/benoitkugler/gridlayout/version"
)

// globalOptions are shared by all the commands.
type globalOptions struct {
	configFile string
	verbose    bool

	cfg *config.Config // set before running a sub command
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	root := &cobra.Command{
		Use:          "gridlayout",
		Short:        "Lay out CSS grids found in HTML documents.",
		Version:      version.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// keep the standard output for the results
			logger.WarningLogger.SetOutput(cmd.ErrOrStderr())
			if opts.verbose {
				logger.ProgressLogger.SetOutput(cmd.ErrOrStderr())
			} else {
				logger.ProgressLogger.SetOutput(io.Discard)
			}

			cfg, err := config.Load(opts.configFile)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "config file (default is ./gridlayout.yaml or ~/.config/gridlayout/)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log progress to stderr")
	root.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	root.AddCommand(newLayoutCmd(opts), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		// no config needed
		PersistentPreRun: func(cmd *cobra.Command, args []string) {},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.VersionString)
		},
	}
}
