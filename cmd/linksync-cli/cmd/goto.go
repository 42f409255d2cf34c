package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"linksync/internal/application/commands"
)

var gotoCmd = &cobra.Command{
	Use:   "goto [node-id]",
	Short: "Select the source of a linked copy",
	Long: `Select the source of the given linked node (or the first selected node)
and switch to its page when needed.

Example:
  linksync-cli goto 1:20`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := GetWorkspace()
		selection, err := w.SelectionOrIDs(args)
		if err != nil {
			return err
		}

		result, err := commands.NewGoToSourceCommand(w.Doc, w.Meta, selection).Execute(cmd.Context())
		if err != nil {
			return err
		}
		if result.Source == nil {
			return errors.New(result.Message)
		}
		if err := w.Save(); err != nil {
			return err
		}

		fmt.Printf("%s: %s %s", result.Message, result.Source.ID(), result.Source.Name())
		if result.Outcome == commands.GoToNavigatedSwitchedSection {
			fmt.Printf(" (page %s)", w.Doc.CurrentSection().Name())
		}
		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(gotoCmd)
}
