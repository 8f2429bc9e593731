package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"yahoozy/internal/config"
	"yahoozy/internal/dice"
	"yahoozy/internal/history"
	"yahoozy/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	store := history.NewStore(cfg.History.Path)
	roller := dice.New(nil)

	p := tea.NewProgram(tui.New(cfg, store, roller), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
}
