package source

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mattn/go-runewidth"
	_ "modernc.org/sqlite"

	"github.com/lixenwraith/vgrid/grid"
	"github.com/lixenwraith/vgrid/status"
)

// SQLite defaults
const (
	DefaultPageSize   = 256
	DefaultMaxPages   = 64
	DefaultSampleRows = 200
	DefaultMaxWidth   = 40
	minColumnWidth    = 4
)

// nullText is displayed for SQL NULL values
const nullText = "NULL"

// SQLiteConfig configures a table-backed source
type SQLiteConfig struct {
	Path       string
	Table      string // "" picks the first table by name
	PageSize   int    // Rows fetched per query
	MaxPages   int    // Cached pages before the least recently used is evicted
	SampleRows int    // Rows sampled to size columns
	MaxWidth   int    // Column width cap in terminal cells
	Metrics    *status.Registry
}

func (c *SQLiteConfig) defaults() {
	if c.PageSize <= 0 {
		c.PageSize = DefaultPageSize
	}
	if c.MaxPages <= 0 {
		c.MaxPages = DefaultMaxPages
	}
	if c.SampleRows <= 0 {
		c.SampleRows = DefaultSampleRows
	}
	if c.MaxWidth < minColumnWidth {
		c.MaxWidth = DefaultMaxWidth
	}
}

// SQLite serves one table of a read-only database, loading rows page by page with LIMIT/OFFSET
type SQLite struct {
	db      *sql.DB
	cfg     SQLiteConfig
	table   string
	quoted  string
	columns []string
	widths  []float64
	rows    int
	log     *slog.Logger

	loads, hits, evictions, loadErrors *atomic.Int64
	cached                             *status.Gauge

	mu    sync.Mutex
	pages map[int][][]string
	lru   []int // Page indices, most recently used last
}

// OpenSQLite opens the database read-only and reads the table's shape
func OpenSQLite(ctx context.Context, cfg SQLiteConfig, logger *slog.Logger) (*SQLite, error) {
	cfg.defaults()
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	db, err := openReadOnly(ctx, cfg.Path)
	if err != nil {
		return nil, err
	}

	s := &SQLite{
		db:         db,
		cfg:        cfg,
		log:        logger,
		pages:      make(map[int][][]string),
		loads:      cfg.Metrics.Counter(status.PageLoads),
		hits:       cfg.Metrics.Counter(status.PageHits),
		evictions:  cfg.Metrics.Counter(status.PageEvictions),
		loadErrors: cfg.Metrics.Counter(status.LoadErrors),
		cached:     cfg.Metrics.Gauge(status.PagesCached),
	}
	if err := s.init(ctx); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("sqlite source opened",
		"path", cfg.Path,
		"table", s.table,
		"rows", s.rows,
		"columns", len(s.columns),
	)
	return s, nil
}

func openReadOnly(ctx context.Context, path string) (*sql.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite: empty database path")
	}
	dsn, err := readOnlyURI(path)
	if err != nil {
		return nil, fmt.Errorf("sqlite open %s: %w", path, err)
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite open %s: %w", path, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite open %s: %w", path, err)
	}
	return db, nil
}

// readOnlyURI builds a file: URI for path with the path percent-encoded
// Relative paths are made absolute so the first segment is not read as a URI authority
func readOnlyURI(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs), RawQuery: "mode=ro"}
	return u.String(), nil
}

func (s *SQLite) init(ctx context.Context) error {
	tables, err := listTables(ctx, s.db)
	if err != nil {
		return err
	}

	s.table = s.cfg.Table
	switch {
	case s.table == "" && len(tables) == 0:
		return fmt.Errorf("sqlite %s: %w", s.cfg.Path, ErrNoTable)
	case s.table == "":
		s.table = tables[0]
	case !slices.Contains(tables, s.table):
		return fmt.Errorf("sqlite %s: %w: %q", s.cfg.Path, ErrNoTable, s.table)
	}
	s.quoted = quoteIdent(s.table)

	if s.columns, err = s.tableColumns(ctx); err != nil {
		return err
	}
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+s.quoted).Scan(&s.rows); err != nil {
		return fmt.Errorf("count rows of %s: %w", s.table, err)
	}
	return s.measure(ctx)
}

// tableColumns reads column names in declaration order
func (s *SQLite) tableColumns(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "PRAGMA table_info("+s.quoted+")")
	if err != nil {
		return nil, fmt.Errorf("table info %s: %w", s.table, err)
	}
	defer rows.Close()

	var cols []string
	for rows.Next() {
		var (
			cid     int
			name    string
			ctype   string
			notnull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dflt, &pk); err != nil {
			return nil, fmt.Errorf("table info %s: %w", s.table, err)
		}
		cols = append(cols, name)
	}
	return cols, rows.Err()
}

// measure derives column widths from header and sampled value display widths
func (s *SQLite) measure(ctx context.Context) error {
	widths := make([]int, len(s.columns))
	for i, name := range s.columns {
		widths[i] = runewidth.StringWidth(name)
	}

	sample, err := s.query(ctx, s.cfg.SampleRows, 0)
	if err != nil {
		return err
	}
	for _, row := range sample {
		for i, v := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(v))
		}
	}

	s.widths = make([]float64, len(widths))
	for i, w := range widths {
		// One trailing cell separates neighbouring columns
		s.widths[i] = float64(min(max(w+1, minColumnWidth), s.cfg.MaxWidth))
	}
	return nil
}

// query fetches limit rows starting at offset as display strings
func (s *SQLite) query(ctx context.Context, limit, offset int) ([][]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT * FROM "+s.quoted+" LIMIT ? OFFSET ?", limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query %s at %d: %w", s.table, offset, err)
	}
	defer rows.Close()

	n := len(s.columns)
	vals := make([]sql.NullString, n)
	ptrs := make([]any, n)
	for i := range vals {
		ptrs[i] = &vals[i]
	}

	out := make([][]string, 0, limit)
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan %s: %w", s.table, err)
		}
		row := make([]string, n)
		for i, v := range vals {
			if v.Valid {
				row[i] = sanitize(v.String)
			} else {
				row[i] = nullText
			}
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// sanitize flattens control characters so a value stays on one line
func sanitize(v string) string {
	if !strings.ContainsFunc(v, isControl) {
		return v
	}
	return strings.Map(func(r rune) rune {
		if isControl(r) {
			return ' '
		}
		return r
	}, v)
}

func isControl(r rune) bool {
	return r < 0x20 || r == 0x7f
}

// quoteIdent quotes an SQL identifier
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func (s *SQLite) Rows() int    { return s.rows }
func (s *SQLite) Columns() int { return len(s.columns) }

// Table returns the table being served
func (s *SQLite) Table() string { return s.table }

// Header returns the column name
func (s *SQLite) Header(col int) string {
	if col < 0 || col >= len(s.columns) {
		return ""
	}
	return s.columns[col]
}

// ColumnWidth returns the measured width of col, 0 outside the table
func (s *SQLite) ColumnWidth(col int) float64 {
	if col < 0 || col >= len(s.widths) {
		return 0
	}
	return s.widths[col]
}

// Cell returns the display string of a loaded cell, nil if its page is not cached
func (s *SQLite) Cell(row, col int) any {
	if row < 0 || row >= s.rows || col < 0 || col >= len(s.columns) {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	page, ok := s.pages[row/s.cfg.PageSize]
	if !ok {
		return nil
	}
	i := row % s.cfg.PageSize
	if i >= len(page) {
		return nil
	}
	return page[i][col]
}

// Load fetches the pages covering rows, whole rows are cached so cols is not used
func (s *SQLite) Load(ctx context.Context, rows, _ grid.Range) error {
	first, last := max(rows.First, 0), min(rows.Last, s.rows-1)
	if last < first {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	firstPage, lastPage := first/s.cfg.PageSize, last/s.cfg.PageSize
	for p := firstPage; p <= lastPage; p++ {
		if _, ok := s.pages[p]; ok {
			s.touch(p)
			s.hits.Add(1)
			continue
		}
		start := time.Now()
		data, err := s.query(ctx, s.cfg.PageSize, p*s.cfg.PageSize)
		if err != nil {
			s.loadErrors.Add(1)
			return err
		}
		s.pages[p] = data
		s.touch(p)
		s.loads.Add(1)
		s.log.Debug("page loaded", "table", s.table, "page", p, "rows", len(data), "elapsed", time.Since(start))
	}

	// Pages needed by this call are never evicted, the cache may exceed MaxPages for a tall viewport
	for len(s.lru) > s.cfg.MaxPages {
		victim := s.lru[0]
		if victim >= firstPage && victim <= lastPage {
			break
		}
		s.lru = s.lru[1:]
		delete(s.pages, victim)
		s.evictions.Add(1)
		s.log.Debug("page evicted", "table", s.table, "page", victim)
	}
	s.cached.Set(float64(len(s.pages)))
	return nil
}

// touch marks page p most recently used
func (s *SQLite) touch(p int) {
	if i := slices.Index(s.lru, p); i >= 0 {
		s.lru = slices.Delete(s.lru, i, i+1)
	}
	s.lru = append(s.lru, p)
}

// CachedPages returns the number of pages held in memory
func (s *SQLite) CachedPages() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pages)
}

// Close releases the database handle
func (s *SQLite) Close() error {
	return s.db.Close()
}

// ListTables returns the user tables of a database file ordered by name
func ListTables(ctx context.Context, path string) ([]string, error) {
	db, err := openReadOnly(ctx, path)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return listTables(ctx, db)
}

func listTables(ctx context.Context, db *sql.DB) ([]string, error) {
	rows, err := db.QueryContext(ctx,
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("list tables: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
