package source

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vgrid/grid"
	"github.com/lixenwraith/vgrid/status"
)

// newTestDB writes a database with a people table of n rows and returns its path
func newTestDB(t *testing.T, n int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE people (id INTEGER PRIMARY KEY, name TEXT, city TEXT)`)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE "odd ""quoted"" table" (v TEXT)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO "odd ""quoted"" table" VALUES ('x'), (NULL)`)
	require.NoError(t, err)

	tx, err := db.Begin()
	require.NoError(t, err)
	stmt, err := tx.Prepare(`INSERT INTO people (id, name, city) VALUES (?, ?, ?)`)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		city := any(fmt.Sprintf("city\t%d", i%7))
		if i%10 == 3 {
			city = nil
		}
		_, err = stmt.Exec(i, fmt.Sprintf("name-%d", i), city)
		require.NoError(t, err)
	}
	require.NoError(t, stmt.Close())
	require.NoError(t, tx.Commit())
	return path
}

func openTestSource(t *testing.T, path string, cfg SQLiteConfig) *SQLite {
	t.Helper()
	cfg.Path = path
	src, err := OpenSQLite(context.Background(), cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { src.Close() })
	return src
}

func TestSQLiteShape(t *testing.T) {
	src := openTestSource(t, newTestDB(t, 1000), SQLiteConfig{Table: "people"})

	assert.Equal(t, 1000, src.Rows())
	assert.Equal(t, 3, src.Columns())
	assert.Equal(t, "name", src.Header(1))
	assert.Equal(t, "", src.Header(3))

	// "name-999" plus separator
	assert.Equal(t, float64(len("name-999")+1), src.ColumnWidth(1))
	assert.Equal(t, float64(minColumnWidth), src.ColumnWidth(0), "id column clamps to minimum width")
	assert.Zero(t, src.ColumnWidth(-1))
}

func TestSQLiteLoadAndCell(t *testing.T) {
	src := openTestSource(t, newTestDB(t, 1000), SQLiteConfig{Table: "people", PageSize: 100})
	ctx := context.Background()

	assert.Nil(t, src.Cell(5, 1), "cell before load")

	require.NoError(t, src.Load(ctx, grid.Range{First: 0, Last: 9}, grid.Range{First: 0, Last: 2}))
	assert.Equal(t, "name-5", src.Cell(5, 1))
	assert.Equal(t, "5", src.Cell(5, 0))
	assert.Equal(t, nullText, src.Cell(3, 2))
	assert.Equal(t, "city 5", src.Cell(5, 2), "control characters are flattened")
	assert.Nil(t, src.Cell(100, 1), "next page not loaded")
	assert.Nil(t, src.Cell(5, 3), "column out of range")

	require.NoError(t, src.Load(ctx, grid.Range{First: 950, Last: 1200}, grid.Range{}))
	assert.Equal(t, "999", src.Cell(999, 0))
	assert.Nil(t, src.Cell(1000, 0))
}

func TestSQLitePageEviction(t *testing.T) {
	src := openTestSource(t, newTestDB(t, 1000), SQLiteConfig{Table: "people", PageSize: 100, MaxPages: 3})
	ctx := context.Background()

	for p := 0; p < 4; p++ {
		require.NoError(t, src.Load(ctx, grid.Range{First: p * 100, Last: p*100 + 5}, grid.Range{}))
	}
	assert.Equal(t, 3, src.CachedPages())
	assert.Nil(t, src.Cell(0, 0), "least recently used page evicted")
	assert.Equal(t, "300", src.Cell(300, 0))

	// A range wider than the cache keeps every page it needs
	require.NoError(t, src.Load(ctx, grid.Range{First: 0, Last: 499}, grid.Range{}))
	assert.Equal(t, 5, src.CachedPages())
	assert.Equal(t, "0", src.Cell(0, 0))
}

func TestSQLitePageMetrics(t *testing.T) {
	reg := status.NewRegistry()
	src := openTestSource(t, newTestDB(t, 1000), SQLiteConfig{Table: "people", PageSize: 100, MaxPages: 3, Metrics: reg})
	ctx := context.Background()

	for p := 0; p < 4; p++ {
		require.NoError(t, src.Load(ctx, grid.Range{First: p * 100, Last: p*100 + 5}, grid.Range{}))
	}
	require.NoError(t, src.Load(ctx, grid.Range{First: 0, Last: 499}, grid.Range{}))

	assert.EqualValues(t, 6, reg.Counter(status.PageLoads).Load())
	assert.EqualValues(t, 3, reg.Counter(status.PageHits).Load())
	assert.EqualValues(t, 1, reg.Counter(status.PageEvictions).Load())
	assert.Equal(t, 5.0, reg.Gauge(status.PagesCached).Get())
}

func TestSQLiteTables(t *testing.T) {
	path := newTestDB(t, 10)
	ctx := context.Background()

	tables, err := ListTables(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, []string{`odd "quoted" table`, "people"}, tables)

	// Empty table name picks the first table
	src := openTestSource(t, path, SQLiteConfig{})
	assert.Equal(t, `odd "quoted" table`, src.Table())
	require.NoError(t, src.Load(ctx, grid.Range{First: 0, Last: 1}, grid.Range{}))
	assert.Equal(t, "x", src.Cell(0, 0))
	assert.Equal(t, nullText, src.Cell(1, 0))

	_, err = OpenSQLite(ctx, SQLiteConfig{Path: path, Table: "missing"}, nil)
	assert.True(t, errors.Is(err, ErrNoTable), "got %v", err)
}

func TestSQLiteURIEscapesPath(t *testing.T) {
	path := newTestDB(t, 20)
	odd := filepath.Join(filepath.Dir(path), "odd?name#1 x.db")
	require.NoError(t, os.Rename(path, odd))

	dsn, err := readOnlyURI(odd)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(dsn, "/odd%3Fname%231%20x.db?mode=ro"), dsn)
	assert.True(t, strings.HasPrefix(dsn, "file:///"), dsn)

	src := openTestSource(t, odd, SQLiteConfig{Table: "people"})
	assert.Equal(t, 20, src.Rows())

	tables, err := ListTables(context.Background(), odd)
	require.NoError(t, err)
	assert.Contains(t, tables, "people")
}

func TestSQLiteMissingFile(t *testing.T) {
	_, err := OpenSQLite(context.Background(), SQLiteConfig{Path: filepath.Join(t.TempDir(), "none.db")}, nil)
	assert.Error(t, err)

	_, err = OpenSQLite(context.Background(), SQLiteConfig{}, nil)
	assert.Error(t, err)
}

func TestOpenKinds(t *testing.T) {
	ctx := context.Background()

	src, err := Open(ctx, Spec{Rows: 10, Columns: 3}, nil)
	require.NoError(t, err)
	assert.Equal(t, "2:1", src.Cell(2, 1))

	path := newTestDB(t, 20)
	src, err = Open(ctx, Spec{Kind: KindSQLite, Path: path, Table: "people"}, nil)
	require.NoError(t, err)
	defer src.Close()
	assert.Equal(t, 20, src.Rows())

	_, err = Open(ctx, Spec{Kind: "csv"}, nil)
	assert.True(t, errors.Is(err, ErrUnknownKind), "got %v", err)
}

func TestOptionsFromSource(t *testing.T) {
	src := openTestSource(t, newTestDB(t, 50), SQLiteConfig{Table: "people"})
	opts := Options(src, grid.PerIndexSearch)
	opts.ContainerWidth, opts.ContainerHeight = 40, 10

	cfg := grid.Normalize(opts)
	assert.Empty(t, cfg.Fallbacks)
	assert.Equal(t, 50, cfg.Rows)
	assert.Equal(t, grid.SizingPerIndex, cfg.ColumnWidth.Kind())
	assert.Equal(t, src.ColumnWidth(2), cfg.ColumnWidth.Size(2))

	require.NoError(t, src.Load(context.Background(), grid.Range{First: 0, Last: 9}, grid.Range{}))
	out := grid.Render(cfg, grid.Recompute(cfg))
	require.NotEmpty(t, out)
	assert.Equal(t, "0", out[0].Content)
}

func TestCoords(t *testing.T) {
	c := NewCoords(1_000_000, 1_000, 0)

	assert.Equal(t, "999999:999", c.Cell(999_999, 999))
	assert.Nil(t, c.Cell(1_000_000, 0))
	assert.Nil(t, c.Cell(0, -1))
	assert.Equal(t, 12.0, c.ColumnWidth(5))
	assert.NoError(t, c.Load(context.Background(), grid.Range{}, grid.Range{}))

	names := []struct {
		col  int
		want string
	}{{0, "A"}, {25, "Z"}, {26, "AA"}, {51, "AZ"}, {52, "BA"}, {701, "ZZ"}, {702, "AAA"}, {-1, ""}}
	for _, tt := range names {
		assert.Equal(t, tt.want, ColumnName(tt.col), "column %d", tt.col)
	}
	assert.Equal(t, "C", c.Header(2))
}
