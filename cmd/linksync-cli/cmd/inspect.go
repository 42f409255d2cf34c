package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"linksync/internal/application/commands"
)

var (
	inspectQuery   string
	inspectResolve bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <node-id>",
	Short: "Show a node's properties and identity record as JSON",
	Long: `Show a node's synchronizable properties, its identity record and the
source it resolves to. A JSONPath query narrows the output.

Examples:
  linksync-cli inspect 1:20
  linksync-cli inspect 1:20 --query '$.link.sourceId'
  linksync-cli inspect 1:20 --resolve`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := GetWorkspace()
		inspectCommand := commands.NewInspectNodeCommand(w.Doc, w.Meta, args[0])
		inspectCommand.Resolve = inspectResolve
		result, err := inspectCommand.Execute(cmd.Context())
		if err != nil {
			return err
		}

		if inspectQuery == "" {
			fmt.Print(commands.RenderJSON(result.Data()))
			return nil
		}
		matches, err := result.Query(inspectQuery)
		if err != nil {
			return err
		}
		fmt.Print(commands.RenderJSON(matches))
		return nil
	},
}

func init() {
	inspectCmd.Flags().StringVarP(&inspectQuery, "query", "q", "", "JSONPath expression applied to the output")
	inspectCmd.Flags().BoolVar(&inspectResolve, "resolve", false, "import the source by key when its id is gone")
	rootCmd.AddCommand(inspectCmd)
}
