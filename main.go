package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"batchcal/internal/calendar"
	"batchcal/internal/cli"
	"batchcal/internal/config"
	"batchcal/internal/logs"
	"batchcal/internal/tui"
)

func main() {
	// Parse CLI flags
	batchStartFlag := flag.String("batch-start", "", "First day of the batch window (YYYY-MM-DD)")
	batchEndFlag := flag.String("batch-end", "", "Last day of the batch window (YYYY-MM-DD)")
	viewFlag := flag.String("view", "", "Initial view: month, week")
	configFlag := flag.String("config", "", "Path to the config file")
	flag.Parse()

	// Ensure config file exists
	if *configFlag == "" {
		if err := config.EnsureConfigFile(); err != nil {
			log.Printf("Warning: could not create config file: %v", err)
		}
	}

	// Load configuration
	cfg, err := config.Load(config.CLIFlags{
		BatchStart: *batchStartFlag,
		BatchEnd:   *batchEndFlag,
		View:       *viewFlag,
		ConfigPath: *configFlag,
	})
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logs.Initialize(cfg.LogDir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize logger: %v\n", err)
	}
	defer logs.Close()

	// Check for CLI subcommands
	if args := flag.Args(); len(args) > 0 {
		exitCode := cli.NewRunner(cfg).Run(args)
		logs.Close()
		os.Exit(exitCode)
	}

	// TUI mode
	logs.Logger.Printf("Starting TUI: batch %s..%s, view %s", cfg.BatchStart, cfg.BatchEnd, cfg.DefaultView)
	p := tea.NewProgram(tui.NewAppModel(cfg, calendar.SystemClock{}), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Println("Error running program:", err)
		os.Exit(1)
	}
}
