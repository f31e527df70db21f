package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRemoveFileCmd creates the remove-file command
func NewRemoveFileCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove-file <path>",
		Aliases: []string{"rf"},
		Short:   "Delete a file, or a directory and all its contents",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := store.Resolve(args[0])
			if err != nil {
				return err
			}

			info, err := os.Stat(target)
			if err != nil {
				return err
			}

			if info.IsDir() {
				if err := os.RemoveAll(target); err != nil {
					return err
				}
			} else {
				if err := os.Remove(target); err != nil {
					return err
				}
			}

			fmt.Println(successText(fmt.Sprintf("removed %s", target)))
			return nil
		},
	}
}
