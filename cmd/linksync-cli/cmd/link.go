package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"linksync/internal/application/commands"
)

var linkMargin float64

var linkCmd = &cobra.Command{
	Use:   "link [node-id...]",
	Short: "Create linked copies of components, variant sets or instances",
	Long: `Create a detached copy of each node, placed to the right of the original
and named "Linked: <name>". Every node of the copy records where it came from.
The copies become the new selection.

Examples:
  linksync-cli link 1:2
  linksync-cli link --margin 80`,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := GetWorkspace()
		selection, err := w.SelectionOrIDs(args)
		if err != nil {
			return err
		}

		linkCommand := commands.NewCreateLinksCommand(w.Doc, w.Meta, selection)
		linkCommand.Margin = w.LinkMargin
		if cmd.Flags().Changed("margin") {
			linkCommand.Margin = linkMargin
		}
		result, err := linkCommand.Execute(cmd.Context())
		if err != nil {
			return err
		}
		if len(result.Created) > 0 {
			if err := w.Save(); err != nil {
				return err
			}
		}

		fmt.Println(result.Message)
		for _, n := range result.Created {
			fmt.Printf("  %s %s\n", n.ID(), n.Name())
		}
		if result.Skipped > 0 {
			fmt.Printf("Skipped %d node(s) that cannot be linked\n", result.Skipped)
		}
		for _, e := range result.Failures {
			fmt.Printf("Failed: %v\n", e)
		}
		return nil
	},
}

func init() {
	linkCmd.Flags().Float64Var(&linkMargin, "margin", 0, "gap between original and copy (default from config)")
	rootCmd.AddCommand(linkCmd)
}
