package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/aayushbajaj/moditime/internal/config"
	"github.com/aayushbajaj/moditime/internal/sentences"
	"github.com/aayushbajaj/moditime/internal/storage"
	"github.com/aayushbajaj/moditime/internal/tui"
)

// Version is set at build time via ldflags: -X main.Version=$(VERSION)
var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		timeLimit  int
		theme      string
		dbPath     string
		logPath    string
	)

	root := &cobra.Command{
		Use:           "moditime",
		Short:         "Timed sentence typing test",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			envErr := godotenv.Load()

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("time") {
				cfg.TimeLimit = timeLimit
			}
			if flags.Changed("theme") {
				cfg.Theme = theme
			}
			if flags.Changed("db") {
				cfg.DBPath = dbPath
			}
			if flags.Changed("log") {
				cfg.LogPath = logPath
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			if _, ok := tui.Themes[cfg.Theme]; !ok {
				return fmt.Errorf("invalid configuration: unknown theme %q (want one of %s)",
					cfg.Theme, strings.Join(tui.ThemeNames, ", "))
			}

			return run(cfg, envErr == nil)
		},
	}

	root.Flags().StringVar(&configPath, "config", "", "YAML config file")
	root.Flags().IntVar(&timeLimit, "time", 0, "time limit in seconds to prefill")
	root.Flags().StringVar(&theme, "theme", "", "color theme (default, gruvbox, tokyonight, catppuccin)")
	root.Flags().StringVar(&dbPath, "db", "", "settings database path")
	root.Flags().StringVar(&logPath, "log", "", "log file path")

	root.AddCommand(newSentencesCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func newSentencesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sentences",
		Short: "Print the practice sentences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for i, s := range sentences.Corpus() {
				if _, err := fmt.Fprintf(out, "%2d. %s\n", i+1, s); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), Version)
		},
	}
}

func run(cfg config.Config, loadedEnv bool) error {
	// The terminal belongs to Bubble Tea, so logs go to a file
	if err := os.MkdirAll(filepath.Dir(cfg.LogPath), 0755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}
	logFile, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	log.Printf("Starting moditime %s...", Version)
	if !loadedEnv {
		log.Println("No .env file found, using environment variables")
	}

	store, err := storage.New(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initialize storage: %w", err)
	}
	defer store.Close()

	model := tui.New(resolveOptions(cfg, store))
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run typing test: %w", err)
	}

	log.Println("Exiting")
	return nil
}

// resolveOptions fills settings the configuration left at their defaults
// from the preferences saved in earlier runs.
func resolveOptions(cfg config.Config, store *storage.Store) tui.Options {
	opts := tui.Options{
		TimeLimit: cfg.TimeLimit,
		Theme:     cfg.Theme,
		Settings:  store,
	}
	if opts.TimeLimit == 0 {
		opts.TimeLimit = store.GetTimeLimit()
	}
	if opts.Theme == storage.DefaultTheme {
		opts.Theme = store.GetTheme()
	}
	return opts
}
