package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"linksync/internal/adapters/editor"
	"linksync/internal/adapters/tui"
	"linksync/internal/adapters/workspace"
	"linksync/internal/config"
	"linksync/internal/logging"
)

func main() {
	configFlag := flag.String("config", "", "config file (default "+config.DefaultFilePath()+")")
	docFlag := flag.String("doc", "", "design document file (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *docFlag != "" {
		cfg.DocumentPath = *docFlag
	}
	// The TUI owns the terminal; logs go to the log file only
	logging.Setup(cfg.LogVerbosity, io.Discard)

	ws, err := workspace.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer ws.Close()

	app := tui.NewApp(ws, editor.NewOpener(cfg.Editor))

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
