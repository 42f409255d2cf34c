package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var selectCmd = &cobra.Command{
	Use:   "select [node-id...]",
	Short: "Replace the document selection",
	Long: `Replace the selection stored in the document. Without ids the selection
is cleared.

Examples:
  linksync-cli select 1:2 1:9
  linksync-cli select`,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := GetWorkspace()
		if err := w.Doc.SelectIDs(args...); err != nil {
			return err
		}
		if err := w.Save(); err != nil {
			return err
		}
		fmt.Printf("Selected %d node(s)\n", len(args))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(selectCmd)
}
