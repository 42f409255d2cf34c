package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"linksync/internal/application"
	"linksync/internal/application/commands"
)

var (
	syncOnly string
	syncSkip string
)

var syncCmd = &cobra.Command{
	Use:   "sync [node-id...]",
	Short: "Copy properties from sources onto linked copies",
	Long: `Walk the given subtrees (or the selection) and copy the enabled property
groups from each linked node's source. Sources that are gone are re-imported
by key when possible.

Groups: name, fills, strokes, effects, corners, text, flow, dimension, gap, padding

Examples:
  linksync-cli sync
  linksync-cli sync 1:20 --only fills,corners
  linksync-cli sync --skip name`,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := GetWorkspace()
		cfg, err := application.ResolveSyncConfig(w.Sync, syncOnly, syncSkip)
		if err != nil {
			return err
		}
		selection, err := w.SelectionOrIDs(args)
		if err != nil {
			return err
		}

		result, err := commands.NewSyncSelectionCommand(w.Doc, w.Meta, selection, cfg).Execute(cmd.Context())
		if err != nil {
			return err
		}
		if result.Stats.Succeeded > 0 {
			if err := w.Save(); err != nil {
				return err
			}
		}

		for _, n := range result.Nodes {
			if !n.Succeeded() {
				fmt.Printf("  %s source not found\n", n.Derived.ID())
				continue
			}
			fmt.Printf("  %s <- %s (%s) copied %d, skipped %d, rejected %d\n",
				n.Derived.ID(), n.Source.ID(), n.Via, n.Report.Copied, n.Report.Skipped, n.Report.Rejected)
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	syncCmd.Flags().StringVar(&syncOnly, "only", "", "comma-separated groups to sync instead of the configured ones")
	syncCmd.Flags().StringVar(&syncSkip, "skip", "", "comma-separated groups to leave untouched")
	rootCmd.AddCommand(syncCmd)
}
