package config

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vgrid/grid"
	"github.com/lixenwraith/vgrid/input"
	"github.com/lixenwraith/vgrid/source"
	"github.com/lixenwraith/vgrid/terminal"
	"github.com/lixenwraith/vgrid/terminal/tui"
)

var (
	// ErrInvalidLevel is returned for a log level slog does not recognize
	ErrInvalidLevel = errors.New("invalid log level")
	// ErrInvalidPolicy is returned for an unknown grid.per_index value
	ErrInvalidPolicy = errors.New("invalid per_index policy")
)

// Grid table keys
const (
	KeyRows        = "rows"
	KeyColumns     = "columns"
	KeyRowHeight   = "row_height"
	KeyColumnWidth = "column_width"
	KeyPerIndex    = "per_index"
)

var gridKeys = []string{KeyRows, KeyColumns, KeyRowHeight, KeyColumnWidth, KeyPerIndex}

// Config is the decoded configuration file
// Grid stays untyped so malformed values reach the grid normalizer instead of failing the decode
type Config struct {
	Grid   map[string]any `toml:"grid"`
	Source SourceConfig   `toml:"source"`
	Theme  ThemeConfig    `toml:"theme"`
	Log    LogConfig      `toml:"log"`

	// Keys holds [keys.keys], [keys.runes] and [keys.prefix_g] binding overrides
	Keys map[string]any `toml:"keys"`

	// Warnings lists keys that were present in the file but not understood
	Warnings []string `toml:"-"`
}

// SourceConfig selects the cell content provider
type SourceConfig struct {
	Kind      string `toml:"kind"`
	Path      string `toml:"path"`
	Table     string `toml:"table"`
	QueryPage int    `toml:"query_page"`
}

// ThemeConfig holds #rrggbb colors, empty keeps the built-in color
type ThemeConfig struct {
	Fg       string `toml:"fg"`
	Bg       string `toml:"bg"`
	HeaderBg string `toml:"header_bg"`
	Border   string `toml:"border"`
	Accent   string `toml:"accent"`
	Stripe   string `toml:"stripe"`
}

// LogConfig configures the log file, logging is disabled without a file
type LogConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Default returns the built-in configuration: a coordinate grid of a million rows
func Default() *Config {
	return &Config{
		Grid: map[string]any{
			KeyRows:        1_000_000,
			KeyColumns:     1_000,
			KeyRowHeight:   1,
			KeyColumnWidth: 12,
		},
		Source: SourceConfig{Kind: source.KindCoords},
		Log:    LogConfig{Level: "info"},
	}
}

// Load overlays the file at path onto Default
func Load(path string) (*Config, error) {
	cfg := Default()

	var file Config
	md, err := toml.DecodeFile(path, &file)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	maps.Copy(cfg.Grid, file.Grid)
	overlay(md, &cfg.Source.Kind, file.Source.Kind, "source", "kind")
	overlay(md, &cfg.Source.Path, file.Source.Path, "source", "path")
	overlay(md, &cfg.Source.Table, file.Source.Table, "source", "table")
	overlay(md, &cfg.Source.QueryPage, file.Source.QueryPage, "source", "query_page")
	overlay(md, &cfg.Theme.Fg, file.Theme.Fg, "theme", "fg")
	overlay(md, &cfg.Theme.Bg, file.Theme.Bg, "theme", "bg")
	overlay(md, &cfg.Theme.HeaderBg, file.Theme.HeaderBg, "theme", "header_bg")
	overlay(md, &cfg.Theme.Border, file.Theme.Border, "theme", "border")
	overlay(md, &cfg.Theme.Accent, file.Theme.Accent, "theme", "accent")
	overlay(md, &cfg.Theme.Stripe, file.Theme.Stripe, "theme", "stripe")
	overlay(md, &cfg.Log.File, file.Log.File, "log", "file")
	overlay(md, &cfg.Log.Level, file.Log.Level, "log", "level")
	cfg.Keys = file.Keys

	for _, key := range md.Undecoded() {
		cfg.Warnings = append(cfg.Warnings, "unknown key "+key.String())
	}
	for _, key := range slices.Sorted(maps.Keys(file.Grid)) {
		if !slices.Contains(gridKeys, key) {
			cfg.Warnings = append(cfg.Warnings, "unknown key grid."+key)
		}
	}
	return cfg, nil
}

// overlay copies v into dst when the file defined the key
func overlay[T any](md toml.MetaData, dst *T, v T, key ...string) {
	if md.IsDefined(key...) {
		*dst = v
	}
}

// SetGrid overrides one grid table entry, used for command line flags
func (c *Config) SetGrid(key string, v any) {
	if c.Grid == nil {
		c.Grid = make(map[string]any)
	}
	c.Grid[key] = v
}

// Validate checks values that are not left to the grid normalizer
func (c *Config) Validate() error {
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if _, _, err := c.PerIndexPolicy(); err != nil {
		return err
	}
	if _, err := c.ThemeColors(tui.DefaultTheme); err != nil {
		return err
	}
	if _, err := c.KeyTable(); err != nil {
		return err
	}
	return nil
}

// KeyTable returns the default bindings with the [keys] overrides applied
func (c *Config) KeyTable() (*input.KeyTable, error) {
	base := input.DefaultKeyTable()
	if len(c.Keys) == 0 {
		return base, nil
	}
	override, err := input.LoadKeyConfig(c.Keys)
	if err != nil {
		return nil, err
	}
	return input.MergeKeyTable(base, override), nil
}

// GridOptions maps the grid table onto engine options
// Numeric arrays for row_height and column_width become cycling PerIndex rules
func (c *Config) GridOptions() grid.Options {
	policy, _, _ := c.PerIndexPolicy()
	return grid.Options{
		NumRows:     c.Grid[KeyRows],
		NumColumns:  c.Grid[KeyColumns],
		RowHeight:   sizeValue(c.Grid[KeyRowHeight]),
		ColumnWidth: sizeValue(c.Grid[KeyColumnWidth]),
		PerIndex:    policy,
	}
}

// sizeValue turns an all-numeric array into a cycling lookup, other values pass through
func sizeValue(v any) any {
	arr, ok := v.([]any)
	if !ok || len(arr) == 0 {
		return v
	}
	sizes := make([]float64, len(arr))
	for i, e := range arr {
		switch n := e.(type) {
		case int64:
			sizes[i] = float64(n)
		case float64:
			sizes[i] = n
		default:
			return v
		}
	}
	return grid.SizeFunc(func(i int) float64 {
		return sizes[i%len(sizes)]
	})
}

// PerIndexPolicy returns the configured policy and whether it was set explicitly
func (c *Config) PerIndexPolicy() (grid.PerIndexPolicy, bool, error) {
	raw, set := c.Grid[KeyPerIndex]
	if !set {
		return grid.PerIndexFrozen, false, nil
	}
	s, _ := raw.(string)
	policy, ok := grid.ParsePerIndexPolicy(strings.ToLower(s))
	if !ok {
		return grid.PerIndexFrozen, true, fmt.Errorf("%w: %v", ErrInvalidPolicy, raw)
	}
	return policy, true, nil
}

// LogLevel parses the log level, empty means info
func (c *Config) LogLevel() (slog.Level, error) {
	if c.Log.Level == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLevel, c.Log.Level)
	}
	return level, nil
}

// ThemeColors applies configured colors over base
// Gutter and status colors are derived from the configured foreground and background
func (c *Config) ThemeColors(base tui.Theme) (tui.Theme, error) {
	t := base
	set := []struct {
		hex string
		dst *terminal.RGB
	}{
		{c.Theme.Fg, &t.Fg},
		{c.Theme.Bg, &t.Bg},
		{c.Theme.HeaderBg, &t.HeaderBg},
		{c.Theme.Border, &t.Border},
		{c.Theme.Accent, &t.Accent},
		{c.Theme.Stripe, &t.Stripe},
	}
	for _, s := range set {
		if s.hex == "" {
			continue
		}
		rgb, err := terminal.ParseHex(s.hex)
		if err != nil {
			return base, fmt.Errorf("theme: %w", err)
		}
		*s.dst = rgb
	}

	if c.Theme.Fg != "" {
		t.GutterFg = terminal.Dim(t.Fg, 0.4)
		t.StatusFg = terminal.Dim(t.Fg, 0.25)
	}
	if c.Theme.Bg != "" || c.Theme.HeaderBg != "" {
		t.StatusBg = terminal.Blend(t.Bg, t.HeaderBg, 0.35)
	}
	if c.Theme.Bg != "" && c.Theme.Stripe == "" {
		t.Stripe = terminal.Blend(t.Bg, t.Fg, 0.06)
	}
	return t, nil
}

// SourceSpec returns the source selection, coordinate shape comes from the normalized grid table
func (c *Config) SourceSpec() source.Spec {
	norm := grid.Normalize(c.GridOptions())
	width := 0.0
	if norm.ColumnWidth.IsUniform() {
		width = norm.ColumnWidth.UniformSize()
	}
	return source.Spec{
		Kind:        c.Source.Kind,
		Path:        c.Source.Path,
		Table:       c.Source.Table,
		PageSize:    c.Source.QueryPage,
		Rows:        norm.Rows,
		Columns:     norm.Columns,
		ColumnWidth: width,
	}
}
