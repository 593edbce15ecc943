package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"nestlist/internal/application/commands"
	"nestlist/internal/domain"
)

var (
	moveBefore bool
	moveAfter  bool
	moveInto   bool
)

var moveCmd = &cobra.Command{
	Use:   "move <key> (--before|--after|--into) <target-key>",
	Short: "Move an item relative to another",
	Long: `Move an item before or after another item, or make it the first
child of a top-level item.

Rules:
- Nesting is one level deep
- An item with children stays at the top level
- Only top-level items can take children

Examples:
  nestlist-cli move 3f9a1c2e --after 77b0d4aa
  nestlist-cli move 3f9a1c2e --into 77b0d4aa`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := moveMode()
		if err != nil {
			return err
		}

		move := commands.NewMoveCommand(GetRepo(), List(), args[0], args[1], mode).WithLogger(log)
		result, err := move.Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

func moveMode() (domain.InsertionMode, error) {
	n := 0
	mode := domain.ModeBefore
	if moveBefore {
		n++
	}
	if moveAfter {
		n++
		mode = domain.ModeAfter
	}
	if moveInto {
		n++
		mode = domain.ModeChild
	}
	if n != 1 {
		return 0, fmt.Errorf("exactly one of --before, --after or --into is required")
	}
	return mode, nil
}

func init() {
	moveCmd.Flags().BoolVar(&moveBefore, "before", false, "place the item before the target")
	moveCmd.Flags().BoolVar(&moveAfter, "after", false, "place the item after the target")
	moveCmd.Flags().BoolVar(&moveInto, "into", false, "make the item the first child of the target")
	moveCmd.MarkFlagsMutuallyExclusive("before", "after", "into")
	rootCmd.AddCommand(moveCmd)
}
