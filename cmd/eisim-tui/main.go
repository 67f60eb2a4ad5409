package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/eisim/internal/config"
	"github.com/rgehrsitz/eisim/internal/logging"
	"github.com/rgehrsitz/eisim/internal/tui"
)

func main() {
	settings, err := config.LoadSettings("")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	// Optional regulatory override as the only argument
	regulatoryFile := settings.RegulatoryFile
	if len(os.Args) > 1 {
		regulatoryFile = os.Args[1]
		if _, err := os.Stat(regulatoryFile); os.IsNotExist(err) {
			fmt.Printf("Error: Regulatory file not found: %s\n", regulatoryFile)
			os.Exit(1)
		}
	}

	// The screen belongs to the TUI, so logs go to a file
	logger, err := logging.New(logging.Options{
		Level:      settings.LogLevel,
		Format:     "json",
		OutputFile: filepath.Join(os.TempDir(), "eisim-tui.log"),
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	model := tui.NewModel(tui.Options{
		Language:       settings.Language,
		RegulatoryFile: regulatoryFile,
		Logger:         logger.Sugar(),
	})

	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
