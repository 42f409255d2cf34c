package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"linksync/internal/adapters/workspace"
	"linksync/internal/config"
	"linksync/internal/logging"
)

var (
	configPath string
	docPath    string
	backend    string
	dbPath     string
	verbosity  int

	ws *workspace.Workspace
)

var rootCmd = &cobra.Command{
	Use:   "linksync-cli",
	Short: "Create and sync linked copies of design components",
	Long: `linksync-cli works on a design document file. It creates detached copies
of components, variant sets and instances that remember where they came from,
and later copies style properties from those sources onto the copies again.

Commands without node ids act on the document selection, which is stored in
the document file and can be changed with "select".`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logging.Setup(cfg.LogVerbosity, nil)

		ws, err = workspace.Open(cfg)
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if ws == nil {
			return nil
		}
		return ws.Close()
	},
}

// loadConfig reads the config file and environment, then applies flags that
// were set explicitly
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("doc") {
		cfg.DocumentPath = docPath
	}
	if flags.Changed("metadata") {
		switch backend {
		case config.BackendDocument, config.BackendSQLite:
			cfg.MetadataBackend = backend
		default:
			return nil, fmt.Errorf("unknown metadata backend %q", backend)
		}
	}
	if flags.Changed("db") {
		cfg.MetadataPath = dbPath
	}
	if flags.Changed("verbose") {
		cfg.LogVerbosity = verbosity
	}
	return cfg, nil
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default "+config.DefaultFilePath()+")")
	rootCmd.PersistentFlags().StringVarP(&docPath, "doc", "d", config.DefaultDocumentPath, "design document file")
	rootCmd.PersistentFlags().StringVar(&backend, "metadata", config.BackendDocument, "where identity records live: document or sqlite")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "sqlite metadata database (default under the XDG data directory)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity (-v info, -vv debug, -vvv trace)")
}

// GetWorkspace returns the opened workspace
func GetWorkspace() *workspace.Workspace {
	return ws
}
