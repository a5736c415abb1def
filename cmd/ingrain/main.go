package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"ingrain/internal/adapters/sqlite"
	"ingrain/internal/adapters/tui"
	"ingrain/internal/config"
)

func main() {
	store, err := sqlite.Open(config.DBPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	app := tui.NewApp(store)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
