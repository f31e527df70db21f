package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"logsift/internal/errors"
	"logsift/internal/filter"
	"logsift/internal/report"
)

// NewSplitCmd creates the split command
func NewSplitCmd() *cobra.Command {
	var (
		path   string
		groups []string
		toXlsx bool
	)

	cmd := &cobra.Command{
		Use:     "split",
		Aliases: []string{"sp"},
		Short:   "Split a log file into per-keyword sibling files",
		Long: `Split assigns each line of a log file to the first group keyword it
contains and writes one sibling file per group. Lines matching no group
are dropped. With --xlsx a workbook is written alongside, one sheet per
group, with the bracketed timestamp split into its own column.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(groups) == 0 {
				return errors.New("at least one group keyword is required")
			}

			target, err := store.Resolve(path)
			if err != nil {
				return err
			}

			grouped, results, err := filter.SplitFile(target, groups)
			if err != nil {
				return err
			}
			for _, res := range results {
				fmt.Println(successText(fmt.Sprintf("wrote %s (%d lines)", res.Path, res.Lines)))
			}

			if toXlsx {
				ext := filepath.Ext(target)
				out := strings.TrimSuffix(target, ext) + "_split.xlsx"
				if err := report.WriteWorkbook(out, grouped); err != nil {
					return err
				}
				fmt.Println(successText(fmt.Sprintf("wrote %s", out)))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "", "file to split (absolute, or relative to the base dir)")
	cmd.Flags().StringSliceVarP(&groups, "groups", "g", nil, "group keywords, one output file per keyword")
	cmd.Flags().BoolVar(&toXlsx, "xlsx", false, "also write a <name>_split.xlsx workbook")
	_ = cmd.MarkFlagRequired("path")
	_ = cmd.MarkFlagRequired("groups")

	return cmd
}
