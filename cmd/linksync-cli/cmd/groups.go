package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"linksync/internal/domain"
)

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "List sync groups and whether they are enabled",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := GetWorkspace()
		for _, g := range domain.AllGroups {
			state := "off"
			if w.Sync.Enabled(g) {
				state = "on"
			}
			props := domain.GroupProperties(g)
			names := make([]string, 0, len(props)+1)
			switch g {
			case domain.GroupName:
				names = append(names, "name")
			case domain.GroupText:
				names = append(names, string(domain.PropFontName))
			}
			for _, p := range props {
				names = append(names, string(p))
			}
			fmt.Printf("%-10s %-3s %s\n", g, state, strings.Join(names, ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(groupsCmd)
}
