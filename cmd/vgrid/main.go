package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	xterm "golang.org/x/term"

	"github.com/lixenwraith/vgrid/config"
	"github.com/lixenwraith/vgrid/grid"
	"github.com/lixenwraith/vgrid/input"
	"github.com/lixenwraith/vgrid/source"
	"github.com/lixenwraith/vgrid/status"
	"github.com/lixenwraith/vgrid/terminal"
	"github.com/lixenwraith/vgrid/terminal/tui"
)

var (
	configFlag   = flag.String("config", "", "TOML configuration file")
	rowsFlag     = flag.Int("rows", 0, "Row count for the coordinate grid")
	colsFlag     = flag.Int("cols", 0, "Column count for the coordinate grid")
	dbFlag       = flag.String("db", "", "SQLite database file, selects the sqlite source")
	tableFlag    = flag.String("table", "", "Table to show, default is the first table by name")
	perIndexFlag = flag.String("per-index", "", "Per-index sizing policy: frozen, search")
	logFlag      = flag.String("log", "", "Log file, logging is off without one")
	tablesFlag   = flag.Bool("tables", false, "List the tables of -db and exit")
	numbersFlag  = flag.Bool("numbers", true, "Show row numbers")
)

var errNotTerminal = errors.New("stdout is not a terminal")

func main() {
	// Panic Recovery: restore the terminal before printing the crash
	defer func() { terminal.HandleCrash(recover()) }()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "vgrid: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()
	for _, w := range cfg.Warnings {
		logger.Warn("config", "warning", w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *tablesFlag {
		tables, err := source.ListTables(ctx, cfg.Source.Path)
		if err != nil {
			return err
		}
		for _, t := range tables {
			fmt.Println(t)
		}
		return nil
	}

	if !xterm.IsTerminal(int(os.Stdout.Fd())) || !xterm.IsTerminal(int(os.Stdin.Fd())) {
		return errNotTerminal
	}

	theme, err := cfg.ThemeColors(tui.DefaultTheme)
	if err != nil {
		return err
	}

	stats := status.NewRegistry()
	defer func() { logger.Info("session metrics", "metrics", stats) }()

	spec := cfg.SourceSpec()
	spec.Metrics = stats
	src, err := source.Open(ctx, spec, logger)
	if err != nil {
		return err
	}
	defer src.Close()

	keys, err := cfg.KeyTable()
	if err != nil {
		return err
	}

	view := tui.NewGridView(gridOptions(cfg, src, logger), theme, logger)
	view.SetHeader(src.Header)
	view.SetRowNumbers(*numbersFlag)

	term, err := terminal.New()
	if err != nil {
		return err
	}
	svc := terminal.NewService(term)
	if err := svc.Start(); err != nil {
		return err
	}
	defer svc.Stop()
	if err := term.SetMouseMode(terminal.MouseModeClick); err != nil {
		logger.Warn("mouse disabled", "error", err)
	}

	a := newApp(term, svc.Events(), view, input.NewMachine(keys), src, theme, sourceLabel(cfg), stats, logger)
	return a.run(ctx)
}

// loadConfig reads the config file and applies command line overrides
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if *configFlag != "" {
		var err error
		if cfg, err = config.Load(*configFlag); err != nil {
			return nil, err
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rows":
			cfg.SetGrid(config.KeyRows, *rowsFlag)
		case "cols":
			cfg.SetGrid(config.KeyColumns, *colsFlag)
		case "per-index":
			cfg.SetGrid(config.KeyPerIndex, *perIndexFlag)
		case "db":
			cfg.Source.Kind = source.KindSQLite
			cfg.Source.Path = *dbFlag
		case "table":
			cfg.Source.Table = *tableFlag
		case "log":
			cfg.Log.File = *logFlag
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger writes text logs to the configured file, never to the terminal
func newLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	if cfg.Log.File == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() { f.Close() }, nil
}

// gridOptions picks the engine options for the source
// Table sources have per-column widths and scroll with the search policy unless one was configured
func gridOptions(cfg *config.Config, src source.Source, logger *slog.Logger) grid.Options {
	if cfg.Source.Kind != source.KindSQLite {
		opts := cfg.GridOptions()
		opts.Children = source.Content(src)
		return opts
	}

	policy, set, _ := cfg.PerIndexPolicy()
	if !set {
		policy = grid.PerIndexSearch
	}
	logger.Info("per-index policy", "policy", policy, "explicit", set)
	return source.Options(src, policy)
}

func sourceLabel(cfg *config.Config) string {
	if cfg.Source.Kind == source.KindSQLite {
		label := cfg.Source.Path
		if cfg.Source.Table != "" {
			label += ":" + cfg.Source.Table
		}
		return label
	}
	return "coords"
}
