// Package main is the entry point for the quiet demo application.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/billie-coop/quiet/internal/config"
	"github.com/billie-coop/quiet/internal/tui"
	tea "github.com/charmbracelet/bubbletea/v2"
	flag "github.com/spf13/pflag"
)

func main() {
	configPath := flag.StringP("config", "c", "quiet.yaml", "path to the config file")
	debounce := flag.DurationP("debounce", "d", 0, "quiet period before a commit fires (overrides config)")
	value := flag.String("value", "", "initial owner value (overrides config)")
	placeholder := flag.String("placeholder", "", "placeholder text (overrides config)")
	label := flag.String("label", "", "field label (overrides config)")
	debug := flag.Bool("debug", false, "log to quiet-debug.log")
	flag.Parse()

	manager := config.NewManager(*configPath)
	if err := manager.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "quiet: %v\n", err)
		os.Exit(1)
	}
	cfg := manager.Get()

	// Flags beat the file.
	if *debounce > 0 {
		cfg.DebounceMS = int(debounce.Milliseconds())
	}
	if flag.CommandLine.Changed("value") {
		cfg.Value = *value
	}
	if flag.CommandLine.Changed("placeholder") {
		cfg.Placeholder = *placeholder
	}
	if flag.CommandLine.Changed("label") {
		cfg.Label = *label
	}
	if *debug {
		cfg.Debug = true
	}

	if cfg.Debug {
		f, err := tea.LogToFile("quiet-debug.log", "DEBUG")
		if err != nil {
			log.Fatalf("log to file err : %s", err)
		}
		defer func() {
			_ = f.Close()
		}()
		log.Printf("debounce=%s value=%q", time.Duration(cfg.DebounceMS)*time.Millisecond, cfg.Value)
	}

	p := tea.NewProgram(tui.New(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "quiet: %v\n", err)
		os.Exit(1)
	}
}
