package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"nestlist/internal/application/commands"
)

var listsCmd = &cobra.Command{
	Use:   "lists",
	Short: "List all stored lists",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := commands.NewListNamesCommand(GetRepo()).Execute(context.Background())
		if err != nil {
			return err
		}

		for _, n := range names {
			marker := " "
			if n == List() {
				marker = "*"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, n)
		}
		return nil
	},
}

var deleteListCmd = &cobra.Command{
	Use:   "delete-list <name>",
	Short: "Delete a whole list",
	Long: `Delete a list and every item in it.

Warning: This operation cannot be undone.

Example:
  nestlist-cli delete-list groceries`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		msg, err := commands.NewDeleteListCommand(GetRepo(), args[0]).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listsCmd)
	rootCmd.AddCommand(deleteListCmd)
}
