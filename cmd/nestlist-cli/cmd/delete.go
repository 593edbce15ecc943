package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"nestlist/internal/application/commands"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <key>",
	Short: "Delete an item",
	Long: `Delete an item from a list.

Warning: This operation cannot be undone. Deleting a top-level item
also deletes its children.

Example:
  nestlist-cli delete 3f9a1c2e`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewDeleteCommand(GetRepo(), List(), args[0]).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
