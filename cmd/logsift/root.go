package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"logsift/internal/config"
	"logsift/internal/errors"
	"logsift/internal/filter"
	"logsift/internal/log"
)

var (
	cfgFile string
	debug   bool
	store   *config.Store
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "logsift",
		Short: "Inspect and filter plain-text log files by line content",
		Long: `Logsift scans a log file or a directory tree, classifies each line by
substring-keyword matching, and either reports matching-line counts or
writes a new sibling file containing the kept lines.

Relative paths resolve against a persisted base directory; see
set-base-dir and get-base-dir.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log.SetDebug(debug)

			if cfgFile != "" {
				store = config.NewStore(cfgFile)
				return nil
			}
			var err error
			store, err = config.NewDefaultStore()
			return err
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/logsift/config.json)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(NewSetBaseDirCmd())
	rootCmd.AddCommand(NewGetBaseDirCmd())
	rootCmd.AddCommand(NewCheckLineCmd())
	rootCmd.AddCommand(NewRemoveLineCmd())
	rootCmd.AddCommand(NewRemoveFileCmd())
	rootCmd.AddCommand(NewSplitCmd())
	rootCmd.AddCommand(NewWatchCmd())

	return rootCmd
}

// profilesPath places the profiles file next to the active config file so
// a --config override also isolates profiles.
func profilesPath() string {
	return filepath.Join(filepath.Dir(store.Path()), "profiles.yaml")
}

// resolveKeywords picks the keyword set for a run: a named profile wins
// over --filters, and both fall back to the default filter set.
func resolveKeywords(filters []string, profile string) ([]string, error) {
	if profile != "" {
		profiles, err := config.LoadProfiles(profilesPath())
		if err != nil {
			return nil, err
		}
		keywords, ok := profiles.Lookup(profile)
		if !ok {
			return nil, errors.Newf("no profile named %q", profile)
		}
		return keywords, nil
	}

	if len(filters) > 0 {
		return filters, nil
	}
	return filter.DefaultFilters, nil
}
