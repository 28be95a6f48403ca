// Package history keeps an optional MySQL ledger of past analyses, so a
// forensic session can be reviewed later. It sits entirely outside the
// analysis path: recording failures never affect a verdict.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/uuidprobe/uuidprobe"
)

// Entry is one recorded analysis.
type Entry struct {
	ID         int64
	Input      string
	Canonical  string
	Verdict    string
	Variant    string
	Version    uint8
	AnalyzedAt time.Time
}

// Ledger wraps the database handle for the analysis history table.
type Ledger struct {
	db *sql.DB
}

// Open connects to MySQL with the given DSN and tunes the pool. ParseTime
// is forced on so analyzed_at scans into time.Time.
func Open(dsn string) (*Ledger, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("history: bad DSN: %w", err)
	}
	cfg.ParseTime = true

	db, err := sql.Open("mysql", cfg.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("history: open: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return &Ledger{db: db}, nil
}

// Close releases the underlying connection pool.
func (l *Ledger) Close() error {
	return l.db.Close()
}

// EnsureSchema creates the ledger table when it does not exist yet.
func (l *Ledger) EnsureSchema(ctx context.Context) error {
	_, err := l.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS uuid_analyses (
			id          BIGINT      NOT NULL AUTO_INCREMENT,
			input       VARCHAR(64) NOT NULL,
			canonical   CHAR(36)    NOT NULL,
			verdict     VARCHAR(24) NOT NULL,
			variant     VARCHAR(64) NOT NULL,
			version     TINYINT UNSIGNED NOT NULL,
			analyzed_at DATETIME(6) NOT NULL,
			PRIMARY KEY (id),
			KEY idx_canonical (canonical)
		)`)
	if err != nil {
		return fmt.Errorf("history: ensure schema: %w", err)
	}
	return nil
}

// Record appends one analysis to the ledger.
func (l *Ledger) Record(ctx context.Context, f *uuidprobe.Findings, analyzedAt time.Time) error {
	_, err := l.db.ExecContext(ctx,
		"INSERT INTO uuid_analyses (input, canonical, verdict, variant, version, analyzed_at) VALUES (?, ?, ?, ?, ?, ?)",
		f.Input, f.Representations.Canonical, f.VerdictName, f.VariantName, f.VersionNibble, analyzedAt.UTC())
	if err != nil {
		return fmt.Errorf("history: record %s: %w", f.Representations.Canonical, err)
	}
	return nil
}

// Recent returns the latest entries, newest first.
func (l *Ledger) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := l.db.QueryContext(ctx,
		"SELECT id, input, canonical, verdict, variant, version, analyzed_at FROM uuid_analyses ORDER BY id DESC LIMIT ?",
		limit)
	if err != nil {
		return nil, fmt.Errorf("history: recent: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Input, &e.Canonical, &e.Verdict, &e.Variant, &e.Version, &e.AnalyzedAt); err != nil {
			return nil, fmt.Errorf("history: scan: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history: recent: %w", err)
	}
	return entries, nil
}
