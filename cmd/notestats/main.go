package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aferrant/notestats/internal/app"
	"github.com/aferrant/notestats/internal/config"
	"github.com/aferrant/notestats/internal/logging"
)

var log = logging.New("main")

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: notestats <note.md>")
		os.Exit(2)
	}

	settings, err := config.Load()
	if err != nil {
		// defaults still let the program run; the user just loses saved toggles
		log.Warn("load settings", "error", err)
	}

	m, err := app.New(os.Args[1], settings)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
