package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"logsift/internal/filter"
	"logsift/internal/scan"
)

// NewCheckLineCmd creates the check-line command
func NewCheckLineCmd() *cobra.Command {
	var (
		path    string
		filters []string
		profile string
		pattern string
	)

	cmd := &cobra.Command{
		Use:     "check-line",
		Aliases: []string{"cl"},
		Short:   "Count keyword-matching lines per file",
		Long: `Check-line reports, for a file or every qualifying file under a
directory, how many lines contain at least one of the filter keywords.
Files are never modified.`,
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

			info, err := os.Stat(target)
			if err != nil {
				return err
			}
			if !info.IsDir() {
				res, err := engine.CheckFile(target)
				if err != nil {
					return err
				}
				fmt.Printf("file: %s, keyword lines: %d\n", res.Path, res.Matches)
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

			for _, res := range engine.CheckAll(files) {
				if res.Error != nil {
					fmt.Println(errorText(fmt.Sprintf("check failed: %s: %v", res.Path, res.Error)))
					continue
				}
				fmt.Printf("file: %s, keyword lines: %d\n", res.Path, res.Matches)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "", "file or directory to check (absolute, or relative to the base dir)")
	cmd.Flags().StringSliceVarP(&filters, "filters", "f", nil, "filter keywords (default: tid:, pid:, cpu usage)")
	cmd.Flags().StringVar(&profile, "profile", "", "named keyword profile from profiles.yaml")
	cmd.Flags().StringVar(&pattern, "pattern", "", "glob restricting which basenames are processed, e.g. '*.log'")
	_ = cmd.MarkFlagRequired("path")

	return cmd
}

func newWalker(pattern string) (*scan.Walker, error) {
	if pattern == "" {
		return scan.New(), nil
	}
	return scan.NewWithPattern(pattern)
}
