package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ogulcanaydogan/aws-budget-notification-bot/pkg/model"

	_ "modernc.org/sqlite"
)

// SQLite implements the Storage interface using an SQLite database.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens or creates an SQLite database at the given path.
func NewSQLite(dbPath string) (*SQLite, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) RecordSynth(ctx context.Context, record *model.SynthRecord) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO synth_runs (id, stack, account, region, digest, resource_count, missing_lookups, outdir, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID, record.Stack, record.Account, record.Region, record.Digest,
		record.ResourceCount, record.MissingLookup, record.OutDir, record.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert synth run: %w", err)
	}
	return nil
}

func (s *SQLite) ListSynths(ctx context.Context, filter model.HistoryFilter) ([]model.SynthRecord, error) {
	query := "SELECT id, stack, account, region, digest, resource_count, missing_lookups, outdir, timestamp FROM synth_runs"
	where, args := buildWhereClause(filter)
	if where != "" {
		query += " WHERE " + where
	}
	query += " ORDER BY timestamp DESC, rowid DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query synth runs: %w", err)
	}
	defer rows.Close()

	var records []model.SynthRecord
	for rows.Next() {
		var r model.SynthRecord
		if err := rows.Scan(&r.ID, &r.Stack, &r.Account, &r.Region, &r.Digest,
			&r.ResourceCount, &r.MissingLookup, &r.OutDir, &r.Timestamp); err != nil {
			return nil, fmt.Errorf("scan synth row: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *SQLite) LatestSynth(ctx context.Context, stack, account, region string) (*model.SynthRecord, error) {
	var r model.SynthRecord
	err := s.db.QueryRowContext(ctx,
		`SELECT id, stack, account, region, digest, resource_count, missing_lookups, outdir, timestamp
		 FROM synth_runs WHERE stack = ? AND account = ? AND region = ?
		 ORDER BY timestamp DESC, rowid DESC LIMIT 1`, stack, account, region,
	).Scan(&r.ID, &r.Stack, &r.Account, &r.Region, &r.Digest,
		&r.ResourceCount, &r.MissingLookup, &r.OutDir, &r.Timestamp)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get latest synth run: %w", err)
	}
	return &r, nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

// buildWhereClause constructs a SQL WHERE clause from a HistoryFilter.
func buildWhereClause(filter model.HistoryFilter) (string, []any) {
	var conditions []string
	var args []any

	if filter.Stack != "" {
		conditions = append(conditions, "stack = ?")
		args = append(args, filter.Stack)
	}
	if filter.Account != "" {
		conditions = append(conditions, "account = ?")
		args = append(args, filter.Account)
	}
	if filter.Region != "" {
		conditions = append(conditions, "region = ?")
		args = append(args, filter.Region)
	}

	return strings.Join(conditions, " AND "), args
}
