package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/mystore/internal/config"
	"github.com/muurk/mystore/internal/inventory"
	"github.com/muurk/mystore/internal/logging"
	"github.com/muurk/mystore/internal/tui"
	"github.com/muurk/mystore/internal/ui"
)

// Command flags
var (
	configPath string
	logLevel   string
	logFile    string
	startRoute string

	listSearch   string
	listCategory string
	listSort     string
	listFormat   string
	listWrap     bool

	forceInit bool
)

func init() {
	// Common flags for all commands (persistent on root)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default <config dir>/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); empty is silent")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log file (default <config dir>/mystore.log)")

	rootCmd.Flags().StringVar(&startRoute, "route", "", "Start route: / (login) or /dashboard")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// loadSettings reads --config when given, otherwise the default file.
func loadSettings() (*config.Settings, error) {
	if configPath != "" {
		return config.LoadFile(configPath)
	}
	return config.LoadSettings()
}

// loggingOptions resolves the log level and file. Flags win over
// preferences; the environment is consulted by logging.Initialize for the
// level and here for the file. An enabled logger with no file set writes to
// <config dir>/mystore.log so it stays off the dashboard's terminal.
func loggingOptions(level, file string, prefs *config.Preferences) logging.Options {
	if level == "" && prefs != nil {
		level = prefs.LogLevel
	}
	if level == "" {
		level = os.Getenv(logging.LogLevelEnvVar)
	}
	if file == "" && prefs != nil {
		file = prefs.LogFile
	}
	if file == "" {
		file = os.Getenv(logging.LogFileEnvVar)
	}
	if level != "" && file == "" {
		if path, err := config.DefaultLogPath(); err == nil {
			file = path
		}
	}
	return logging.Options{Level: level, File: file}
}

func setupLogging(prefs *config.Preferences) error {
	opts := loggingOptions(logLevel, logFile, prefs)
	if opts.Level != "" && opts.File != "" && opts.File != "stderr" && opts.File != "stdout" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0700); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	return logging.Initialize(opts)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	if err := setupLogging(settings.Preferences); err != nil {
		return err
	}
	defer logging.Sync()

	sortMode, err := settings.Preferences.SortMode()
	if err != nil {
		return err
	}

	route := startRoute
	if route == "" {
		route = settings.Preferences.StartRoute
	}

	store := inventory.NewStore(inventory.WithSeed(settings.Seed...))
	logging.Info("Starting dashboard",
		zap.String("route", route),
		zap.Int("seed", store.Len()),
	)

	app := tui.NewAppModel(tui.Options{
		StartPath:       route,
		Store:           store,
		DefaultUsername: settings.Preferences.DefaultUsername,
		DefaultSort:     sortMode,
		Currency:        settings.Preferences.Currency,
	})

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logging.Error("Dashboard exited with error", zap.Error(err))
		return fmt.Errorf("dashboard failed: %w", err)
	}
	return nil
}

// listCmd prints the filtered seed products once
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the seed products",
	Long: `Print the products from the config seed, filtered and sorted the same
way the dashboard does it.

Search matches titles containing the text, ignoring case. Category must
match exactly, ignoring case. Products whose price is not a number sort
last in both directions.`,
	Example: `  # All products
  mystore list

  # Kitchen products, cheapest first
  mystore list --category kitchen --sort asc

  # YAML for scripting
  mystore list --search mug --format yaml`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listSearch, "search", "", "Title substring to match")
	listCmd.Flags().StringVar(&listCategory, "category", "", "Exact category to keep")
	listCmd.Flags().StringVar(&listSort, "sort", "", "Price order: none, asc or desc")
	listCmd.Flags().StringVar(&listFormat, "format", "table", "Output format (table, yaml)")
	listCmd.Flags().BoolVar(&listWrap, "wrap", false, "Wrap long descriptions instead of truncating")
}

type listOptions struct {
	Search   string
	Category string
	Sort     string
	Format   string
	Wrap     bool
}

func runList(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	if err := setupLogging(settings.Preferences); err != nil {
		return err
	}
	defer logging.Sync()

	printer := ui.NewPrinter(cmd.OutOrStdout()).WithWidth(ui.GetTerminalWidth())
	return listProducts(printer, settings, listOptions{
		Search:   listSearch,
		Category: listCategory,
		Sort:     listSort,
		Format:   listFormat,
		Wrap:     listWrap,
	})
}

func listProducts(p *ui.Printer, settings *config.Settings, opts listOptions) error {
	mode, err := inventory.ParseSortMode(opts.Sort)
	if err != nil {
		p.PrintError("Invalid sort", err, "Use one of: none, asc, desc")
		return errReported
	}

	store := inventory.NewStore(inventory.WithSeed(settings.Seed...))
	q := inventory.Query{
		Search:   opts.Search,
		Category: opts.Category,
		Sort:     mode,
	}
	products := inventory.Apply(store.All(), q)
	logging.Debug("Listing products",
		zap.String("search", q.Search),
		zap.String("category", q.Category),
		zap.String("sort", string(q.Sort)),
		zap.Int("shown", len(products)),
	)

	switch strings.ToLower(opts.Format) {
	case "yaml":
		return p.PrintYAML(products)
	case "", "table":
		params := []ui.Param{}
		if q.Search != "" {
			params = append(params, ui.Param{Key: "Search", Value: q.Search})
		}
		if q.Category != "" {
			params = append(params, ui.Param{Key: "Category", Value: q.Category})
		}
		params = append(params, ui.Param{Key: "Sort", Value: mode.Label()})

		p.PrintHeader("Products", "mystore list", params...)
		p.Newline()
		p.PrintProducts(products, store.Len(), settings.Preferences.Currency, opts.Wrap)
		return nil
	default:
		p.PrintError("Invalid format", fmt.Errorf("unknown format %q", opts.Format), "Use table or yaml")
		return errReported
	}
}

// configCmd groups config file helpers
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file with example products",
	Example: `  # Write to the default location
  mystore config init

  # Overwrite an existing file
  mystore config init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		if err := config.CreateDefaultConfig(path, forceInit); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s Wrote %s\n", ui.SuccessMarker, path)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing config file")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.GetConfigPath()
}
