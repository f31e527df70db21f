package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"logsift/internal/filter"
)

// NewRemoveLineCmd creates the remove-line command
func NewRemoveLineCmd() *cobra.Command {
	var (
		path    string
		filters []string
		profile string
		pattern string
		keep    bool
	)

	cmd := &cobra.Command{
		Use:     "remove-line",
		Aliases: []string{"rl"},
		Short:   "Write a _filtered sibling file with matching lines removed",
		Long: `Remove-line writes, for a file or every qualifying file under a
directory, a sibling file named <name>_filtered<ext>. By default lines
containing a filter keyword are removed; with --keep only those lines
are retained. Original files are left untouched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			keywords, err := resolveKeywords(filters, profile)
			if err != nil {
				return err
			}

			target, err := store.Resolve(path)
			if err != nil {
				return err
			}

			engine := filter.New(keywords)
			engine.SetKeep(keep)

			info, err := os.Stat(target)
			if err != nil {
				return err
			}
			if !info.IsDir() {
				res, err := engine.FilterFile(target)
				if err != nil {
					return err
				}
				fmt.Println(successText(fmt.Sprintf("wrote %s (kept %d, removed %d)", res.OutputPath, res.Kept, res.Removed)))
				return nil
			}

			walker, err := newWalker(pattern)
			if err != nil {
				return err
			}
			files, err := walker.Files(target)
			if err != nil {
				return err
			}

			for _, res := range engine.FilterAll(files) {
				if res.Error != nil {
					fmt.Println(errorText(fmt.Sprintf("filter failed: %s: %v", res.Path, res.Error)))
					continue
				}
				fmt.Println(successText(fmt.Sprintf("wrote %s (kept %d, removed %d)", res.OutputPath, res.Kept, res.Removed)))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "", "file or directory to filter (absolute, or relative to the base dir)")
	cmd.Flags().StringSliceVarP(&filters, "filters", "f", nil, "filter keywords (default: tid:, pid:, cpu usage)")
	cmd.Flags().StringVar(&profile, "profile", "", "named keyword profile from profiles.yaml")
	cmd.Flags().StringVar(&pattern, "pattern", "", "glob restricting which basenames are processed, e.g. '*.log'")
	cmd.Flags().BoolVarP(&keep, "keep", "k", false, "keep only matching lines instead of removing them")
	_ = cmd.MarkFlagRequired("path")

	return cmd
}
