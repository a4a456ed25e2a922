package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"go-tonal/config"
	"go-tonal/debug"
	"go-tonal/theme"
	"go-tonal/tui"
)

func main() {
	configPath := flag.String("config", "", "config file (default ~/.config/go-tonal/config.yaml)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.Debug {
		if path, err := debug.DefaultPath(); err == nil {
			if err := debug.Enable(path); err != nil {
				fmt.Printf("Warning: debug log: %v\n", err)
			}
		}
		defer debug.Disable()
	}

	// Load theme
	palette, err := theme.LoadOrDefault(cfg.Display.Palette)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	th := theme.New(palette)

	m, err := tui.NewModel(cfg, th)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}
