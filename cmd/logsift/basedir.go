package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewSetBaseDirCmd creates the set-base-dir command
func NewSetBaseDirCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "set-base-dir <path>",
		Aliases: []string{"sbd"},
		Short:   "Persist the base directory that relative paths resolve against",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			if err := store.SetBaseDir(dir); err != nil {
				return err
			}
			fmt.Println(successText(fmt.Sprintf("base dir set to: %s", dir)))
			return nil
		},
	}
}

// NewGetBaseDirCmd creates the get-base-dir command
func NewGetBaseDirCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get-base-dir",
		Aliases: []string{"gbd"},
		Short:   "Print the persisted base directory",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := store.BaseDir()
			if err != nil {
				return err
			}
			fmt.Println(dir)
			return nil
		},
	}
}
