package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"nestlist/internal/application/commands"
)

var searchThisList bool

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search item titles and notes",
	Long: `Search item titles and notes across every list, case-insensitively.

Examples:
  nestlist-cli search apples
  nestlist-cli search apples --this-list -l groceries`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		search := commands.NewSearchCommand(GetRepo(), args[0])
		if searchThisList {
			search.InList(List())
		}
		results, err := search.Execute(context.Background())
		if err != nil {
			return err
		}

		if len(results) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No results found")
			return nil
		}

		for _, r := range results {
			where := r.List
			if r.Parent != "" {
				where += "/" + string(r.Parent)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s %s\n", where, r.Key, r.Title)
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().BoolVar(&searchThisList, "this-list", false, "only search the selected list")
	rootCmd.AddCommand(searchCmd)
}
