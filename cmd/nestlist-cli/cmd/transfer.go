package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"nestlist/internal/adapters/yamlfile"
	"nestlist/internal/application/commands"
)

var importAs string

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export a list as YAML",
	Long: `Write a list as YAML to a file, or to stdout when no file is given.

Examples:
  nestlist-cli export -l groceries > groceries.yaml
  nestlist-cli export groceries.yaml -l groceries`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if len(args) == 1 {
			f, err := os.Create(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}

		return commands.NewExportCommand(GetRepo(), yamlfile.NewCodec(), List()).Execute(context.Background(), out)
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a YAML list",
	Long: `Read a YAML list and store it, replacing any list of the same name.
The list name comes from the file unless --as is given.

Example:
  nestlist-cli import groceries.yaml --as shopping`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		result, err := commands.NewImportCommand(GetRepo(), yamlfile.NewCodec(), importAs).Execute(context.Background(), f)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importAs, "as", "", "store under this list name")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
