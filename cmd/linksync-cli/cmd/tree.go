package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"linksync/internal/application/commands"
	"linksync/internal/domain"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Display the document tree",
	Long: `Display every page of the document with its nodes. Linked copies show
the id of their source after an arrow, selected nodes are starred.

Example:
  linksync-cli tree`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := GetWorkspace()
		trees, err := commands.NewBuildTreeCommand(w.Doc, w.Meta).Execute(cmd.Context())
		if err != nil {
			return err
		}

		selected := make(map[string]bool)
		for _, n := range w.Doc.Selection() {
			selected[n.ID()] = true
		}

		linked := 0
		for _, tree := range trees {
			printTree(tree, 0, selected)
			linked += tree.CountLinked()
		}
		fmt.Printf("\n%d linked node(s)\n", linked)
		return nil
	},
}

func printTree(node *domain.TreeNode, depth int, selected map[string]bool) {
	mark := " "
	if selected[node.ID] {
		mark = "*"
	}
	line := fmt.Sprintf("%s %s%s %s %s", mark, strings.Repeat("  ", depth), node.ID, node.Type, node.Name)
	if node.Linked {
		line += " -> " + node.SourceID
	}
	fmt.Println(line)

	for _, child := range node.Children {
		printTree(child, depth+1, selected)
	}
}

func init() {
	rootCmd.AddCommand(treeCmd)
}
