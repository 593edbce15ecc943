package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"nestlist/internal/application/commands"
)

var (
	createParent string
	createNote   string
)

var createCmd = &cobra.Command{
	Use:   "create <title>",
	Short: "Create a new item",
	Long: `Create a new item at the end of a list, or at the end of a
top-level item's children with --parent.

Examples:
  nestlist-cli create "Milk"
  nestlist-cli create "Apples" --parent 3f9a1c2e`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		create := commands.NewCreateCommand(GetRepo(), List(), createParent, args[0])
		create.Note = createNote
		result, err := create.Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVarP(&createParent, "parent", "p", "", "key of the top-level item to create the child under")
	createCmd.Flags().StringVar(&createNote, "note", "", "note stored with the item")
	rootCmd.AddCommand(createCmd)
}
