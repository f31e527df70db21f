package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"logsift/internal/filter"
	"logsift/internal/watch"
)

// NewWatchCmd creates the watch command
func NewWatchCmd() *cobra.Command {
	var (
		filters []string
		profile string
		pattern string
		keep    bool
	)

	cmd := &cobra.Command{
		Use:   "watch <directory>",
		Short: "Watch a directory and filter new log files as they appear",
		Long: `Watch monitors a directory and runs remove-line semantics over every
qualifying file that is created or modified while it runs. Stop with
Ctrl-C.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keywords, err := resolveKeywords(filters, profile)
			if err != nil {
				return err
			}

			target, err := store.Resolve(args[0])
			if err != nil {
				return err
			}

			engine := filter.New(keywords)
			engine.SetKeep(keep)

			watcher, err := watch.New(engine)
			if err != nil {
				return err
			}
			if pattern != "" {
				if err := watcher.SetPattern(pattern); err != nil {
					return err
				}
			}
			if err := watcher.AddDirectory(target); err != nil {
				return err
			}
			if err := watcher.Start(); err != nil {
				return err
			}
			defer watcher.Stop()

			fmt.Println(emphText(fmt.Sprintf("watching %s, press Ctrl-C to stop", target)))

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

			for {
				select {
				case res := <-watcher.Results():
					if res.Error != nil {
						fmt.Println(errorText(fmt.Sprintf("filter failed: %s: %v", res.Path, res.Error)))
						continue
					}
					fmt.Println(successText(fmt.Sprintf("wrote %s (kept %d, removed %d)", res.OutputPath, res.Kept, res.Removed)))
				case <-sigChan:
					fmt.Println()
					fmt.Println(emphText("stopping watcher"))
					return nil
				}
			}
		},
	}

	cmd.Flags().StringSliceVarP(&filters, "filters", "f", nil, "filter keywords (default: tid:, pid:, cpu usage)")
	cmd.Flags().StringVar(&profile, "profile", "", "named keyword profile from profiles.yaml")
	cmd.Flags().StringVar(&pattern, "pattern", "", "glob restricting which basenames are processed, e.g. '*.log'")
	cmd.Flags().BoolVarP(&keep, "keep", "k", false, "keep only matching lines instead of removing them")

	return cmd
}
