package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"linksync/internal/application/commands"
)

var hasLinkCmd = &cobra.Command{
	Use:   "has-link [node-id]",
	Short: "Report whether a node is a linked copy",
	Long: `Print true when the given node (or the first selected node) carries a
source id, false otherwise.

Example:
  linksync-cli has-link 1:20`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := GetWorkspace()
		selection, err := w.SelectionOrIDs(args)
		if err != nil {
			return err
		}
		fmt.Println(commands.NewHasLinkQuery(w.Meta, selection).Execute())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(hasLinkCmd)
}
