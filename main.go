package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sadopc/plants/internal/store"
	"github.com/sadopc/plants/internal/tracker"
	"github.com/sadopc/plants/internal/tui"
)

func main() {
	dbPath, err := store.DefaultDBPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	s, err := store.New(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening database: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	user, err := s.ActiveUser()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading active profile: %v\n", err)
		os.Exit(1)
	}

	app := tui.NewApp(s, tracker.New(s, user))
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
