// Package journal records placement diagnostics in SQLite: cache refreshes,
// accepted tiles and failed requests. It stores events only, never world
// state.
package journal

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/immersive-worldgen/internal/placement"
)

// Event kinds stored in the kind column.
const (
	KindRefreshed = "refreshed"
	KindPlaced    = "placed"
	KindEmpty     = "cache_empty"
	KindExhausted = "exhausted"
)

// Entry is one journal row.
type Entry struct {
	ID         int64  `db:"id"`
	At         int64  `db:"at_unix_ms"`
	Kind       string `db:"kind"`
	Population string `db:"population"`
	Tile       int64  `db:"tile"`
	Draws      int    `db:"draws"`
	Detail     string `db:"detail"`
}

// DB wraps a SQLite connection for the placement journal.
// It implements placement.Observer.
type DB struct {
	conn *sqlx.DB
	now  func() time.Time
}

// Open opens or creates a SQLite journal at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	// Observer callbacks arrive from one goroutine at a time; a single
	// connection keeps SQLite from reporting SQLITE_BUSY.
	conn.SetMaxOpenConns(1)

	db := &DB{conn: conn, now: time.Now}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS placement_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		at_unix_ms INTEGER NOT NULL,
		kind TEXT NOT NULL,
		population TEXT NOT NULL,
		tile INTEGER NOT NULL,
		draws INTEGER NOT NULL,
		detail TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_placement_events_kind ON placement_events(kind);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// Record appends one entry. At defaults to now.
func (db *DB) Record(e Entry) error {
	if e.At == 0 {
		e.At = db.now().UnixMilli()
	}
	_, err := db.conn.NamedExec(`INSERT INTO placement_events
		(at_unix_ms, kind, population, tile, draws, detail)
		VALUES (:at_unix_ms, :kind, :population, :tile, :draws, :detail)`, e)
	if err != nil {
		return fmt.Errorf("insert %s event: %w", e.Kind, err)
	}
	return nil
}

// Refreshed implements placement.Observer.
func (db *DB) Refreshed(e placement.RefreshEvent) {
	db.recordOrWarn(Entry{
		Kind:   KindRefreshed,
		Detail: fmt.Sprintf("tiles=%d radius=%d eligible=%d", e.TileCount, e.Radius, e.Eligible),
	})
}

// Placed implements placement.Observer.
func (db *DB) Placed(e placement.PlacedEvent) {
	db.recordOrWarn(Entry{
		Kind:       KindPlaced,
		Population: PopulationName(e.Population),
		Tile:       int64(e.Tile),
		Draws:      e.Draws,
		Detail:     fmt.Sprintf("remaining=%d", e.Remaining),
	})
}

// Failed implements placement.Observer.
func (db *DB) Failed(e placement.FailedEvent) {
	kind := KindExhausted
	if errors.Is(e.Err, placement.ErrCacheEmpty) {
		kind = KindEmpty
	}
	db.recordOrWarn(Entry{
		Kind:       kind,
		Population: PopulationName(e.Population),
		Draws:      e.Draws,
		Detail:     FormatRejections(e.Rejections),
	})
}

func (db *DB) recordOrWarn(e Entry) {
	if err := db.Record(e); err != nil {
		slog.Warn("journal write failed", "kind", e.Kind, "error", err)
	}
}

// Recent returns the most recent N entries, newest first.
func (db *DB) Recent(limit int) ([]Entry, error) {
	var entries []Entry
	err := db.conn.Select(&entries,
		"SELECT id, at_unix_ms, kind, population, tile, draws, detail FROM placement_events ORDER BY id DESC LIMIT ?",
		limit,
	)
	return entries, err
}

// CountByKind returns how many entries of each kind have been recorded.
func (db *DB) CountByKind() (map[string]int, error) {
	var rows []struct {
		Kind  string `db:"kind"`
		Count int    `db:"n"`
	}
	if err := db.conn.Select(&rows, "SELECT kind, COUNT(*) AS n FROM placement_events GROUP BY kind"); err != nil {
		return nil, err
	}
	out := make(map[string]int, len(rows))
	for _, r := range rows {
		out[r.Kind] = r.Count
	}
	return out, nil
}

// PopulationName names a population for logs: its String method when it
// has one, "null" otherwise.
func PopulationName(p placement.Population) string {
	if s, ok := p.(fmt.Stringer); ok {
		return s.String()
	}
	return "null"
}

// FormatRejections renders rejection counts as "reason=n" pairs in a stable
// order.
func FormatRejections(r map[placement.Rejection]int) string {
	if len(r) == 0 {
		return ""
	}
	reasons := make([]placement.Rejection, 0, len(r))
	for k := range r {
		reasons = append(reasons, k)
	}
	sort.Slice(reasons, func(i, j int) bool { return reasons[i] < reasons[j] })
	parts := make([]string, len(reasons))
	for i, k := range reasons {
		parts[i] = fmt.Sprintf("%s=%d", k, r[k])
	}
	return strings.Join(parts, " ")
}
