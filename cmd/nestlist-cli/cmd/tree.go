package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"nestlist/internal/application/commands"
	"nestlist/internal/domain"
)

var showNotes bool

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Display a list as a tree",
	Long: `Display every item of a list, children indented under their parent.

Example:
  nestlist-cli tree -l groceries`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		outline, err := commands.NewLoadOutlineCommand(GetRepo(), List()).Execute(context.Background())
		if err != nil {
			return err
		}
		printTree(cmd.OutOrStdout(), outline, showNotes)
		return nil
	},
}

func printTree(w io.Writer, outline *domain.Outline, notes bool) {
	for _, row := range outline.Flatten() {
		indent := ""
		if row.Level() > 0 {
			indent = "  "
		}
		fmt.Fprintf(w, "%s%s %s\n", indent, row.Key, row.Title)
		if notes && row.Note != "" {
			fmt.Fprintf(w, "%s    %s\n", indent, row.Note)
		}
	}
}

func init() {
	treeCmd.Flags().BoolVar(&showNotes, "notes", false, "print notes under their items")
	rootCmd.AddCommand(treeCmd)
}
