package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"nestlist/internal/adapters/editor"
	"nestlist/internal/adapters/sqlite"
	"nestlist/internal/adapters/storage"
	"nestlist/internal/adapters/tui"
	"nestlist/internal/adapters/tui/views"
	"nestlist/internal/config"
)

func main() {
	cfgFlag := flag.String("config", "", "config file")
	listFlag := flag.String("list", "", "list to open")
	flag.Parse()

	if err := run(*cfgFlag, *listFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfgFile, list string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if list != "" {
		cfg.List = list
	}

	// The terminal belongs to the TUI, so logs go to a file
	log, logFile, err := config.NewFileLogger(cfg.LogLevel, filepath.Join(sqlite.DataDir(), "nestlist.log"))
	if err != nil {
		return err
	}
	defer logFile.Close()

	// Initialize adapters
	repo, err := storage.Open(cfg, log)
	if err != nil {
		return err
	}
	defer repo.Close()
	editorOpener := editor.NewOpener(cfg.Editor)

	// Create and run TUI app
	app := tui.NewApp(repo, editorOpener, tui.Options{
		List: cfg.List,
		Drag: views.DragOptions{
			TargetsOnlyWhileDragging: cfg.Drag.TargetsOnlyWhileDragging,
			TargetSize:               cfg.Drag.TargetSize,
		},
		Log: log,
	})

	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
