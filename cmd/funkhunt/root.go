package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/damalga/funkhunt/internal/catalogue"
	"github.com/damalga/funkhunt/internal/config"
	"github.com/damalga/funkhunt/internal/log"
	"github.com/damalga/funkhunt/internal/tui"
	"github.com/damalga/funkhunt/internal/watch"
)

var (
	cfgFile string
	debug   bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "funkhunt [path...]",
		Short: "Browse and open your e-book collection from the terminal",
		Long: `FunkHunt scans folders for e-books and lets you browse, inspect
and open them without leaving the terminal.

Positional arguments are extra folders to scan at startup; they are
merged with the library paths from the config file. Inside the app,
press a to browse for more folders to catalogue.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/funkhunt/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(NewScanCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// loadConfig loads the configuration, degrading to defaults with a
// warning rather than refusing to start.
func loadConfig() *config.Config {
	var cfg *config.Config
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadConfigFile(cfgFile)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		fmt.Fprintln(os.Stderr, "using default settings")
		cfg = config.New()
	}
	return cfg
}

func runTUI(args []string) error {
	if err := log.Setup(debug); err != nil {
		fmt.Fprintf(os.Stderr, "warning: logging disabled: %v\n", err)
	}

	cfg := loadConfig()
	scanner, err := catalogue.NewScanner(cfg.Library.Formats)
	if err != nil {
		return err
	}

	// Startup catalogue: config library paths first, then CLI args,
	// merged with the same accumulate policy the TUI uses.
	paths := append(append([]string{}, cfg.Library.Paths...), args...)
	var books []catalogue.Book
	var locations []string
	seen := make(map[string]struct{})
	for _, path := range paths {
		for _, book := range scanner.Scan(path) {
			if _, dup := seen[book.Path]; dup {
				continue
			}
			seen[book.Path] = struct{}{}
			books = append(books, book)
		}
		locations = append(locations, path)
	}

	var watcher *watch.Watcher
	if cfg.Watch.Enabled {
		watcher, err = watch.New(scanner.Matches)
		if err != nil {
			log.LogWithFields(log.F("error", err)).Warn("watcher unavailable")
			watcher = nil
		} else {
			for _, location := range locations {
				if err := watcher.AddLocation(location); err != nil {
					log.LogWithFields(log.F("location", location), log.F("error", err)).Warn("could not watch location")
				}
			}
			if err := watcher.Start(); err != nil {
				log.LogWithFields(log.F("error", err)).Warn("watcher failed to start")
				watcher = nil
			} else {
				defer watcher.Stop()
			}
		}
	}

	m := tui.New(tui.Options{
		Books:         books,
		Locations:     locations,
		Scanner:       scanner,
		Watcher:       watcher,
		ViewerCommand: cfg.Viewer.Command,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
