package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"nestlist/internal/application"
	"nestlist/internal/application/commands"
)

var checkMode string

var checkCmd = &cobra.Command{
	Use:   "check <key> <target-key>",
	Short: "Check whether a drop would be allowed",
	Long: `Report whether an item may be dropped before, after or as a child of
another item, without moving anything.

Examples:
  nestlist-cli check 3f9a1c2e 77b0d4aa --mode child`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := application.ParseInsertionMode(checkMode)
		if err != nil {
			return err
		}

		res, err := commands.NewCheckDropCommand(GetRepo(), List(), args[0], args[1], mode).Execute(context.Background())
		if err != nil {
			return err
		}
		if res.CanDrop {
			fmt.Fprintln(cmd.OutOrStdout(), "yes")
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "no: %s\n", res.Reason)
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().StringVarP(&checkMode, "mode", "m", "before", "insertion mode: before, after, child")
	rootCmd.AddCommand(checkCmd)
}
