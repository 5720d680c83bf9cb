package main

import (
	"github.com/spf13/cobra"
)

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	var ro rootOptions

	root := &cobra.Command{
		Use:   "lvsearch",
		Short: "Uninformed state-space search over edge-list graphs",
		Long: `lvsearch loads a SNAP-style edge list (optionally gzip-compressed) and
runs breadth-first, uniform-cost, depth-limited, iterative-deepening and
bi-directional search between two of its states.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return ro.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&ro.configPath, "config", "", "YAML config file; flags given on the command line override it")
	root.PersistentFlags().BoolVarP(&ro.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(newSearchCmd(), newServeCmd(), newGenerateCmd())
	return root
}

// setup merges the config file into the flags of cmd and installs the logger
// into the command context.
func (ro *rootOptions) setup(cmd *cobra.Command) error {
	var cfg Config
	if ro.configPath != "" {
		var err error
		if cfg, err = loadConfig(ro.configPath); err != nil {
			return err
		}
		if err = applyConfig(cmd, cfg.flagValues(cmd.Name())); err != nil {
			return err
		}
	}

	level := cfg.Log.Level
	if ro.verbose {
		level = "debug"
	}
	logger := newLogger(level, cfg.Log.Format, cmd.ErrOrStderr())
	cmd.SetContext(withLogger(cmd.Context(), logger))
	return nil
}
