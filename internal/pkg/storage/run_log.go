package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// RunRecord summarizes one completed generation run.
type RunRecord struct {
	Domain    string
	Matches   int
	Pages     int
	StartedAt time.Time
	Duration  time.Duration
}

// PostgresRunLog appends one row per generation run to PostgreSQL. Optional
// operational history; the generated site never depends on it.
type PostgresRunLog struct {
	db *sql.DB
}

// NewPostgresRunLog opens the connection and ensures the schema exists.
func NewPostgresRunLog(dsn string) (*PostgresRunLog, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres DSN is required")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	log := &PostgresRunLog{db: db}
	if err := log.initSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return log, nil
}

func (l *PostgresRunLog) initSchema(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS generation_runs (
		id SERIAL PRIMARY KEY,
		domain VARCHAR(500) NOT NULL,
		matches INT NOT NULL,
		pages INT NOT NULL,
		started_at TIMESTAMP NOT NULL,
		duration_ms BIGINT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`
	_, err := l.db.ExecContext(ctx, query)
	return err
}

// Record inserts one run row.
func (l *PostgresRunLog) Record(ctx context.Context, r RunRecord) error {
	query := `
	INSERT INTO generation_runs (domain, matches, pages, started_at, duration_ms)
	VALUES ($1, $2, $3, $4, $5)`
	_, err := l.db.ExecContext(ctx, query,
		r.Domain, r.Matches, r.Pages, r.StartedAt.UTC(), r.Duration.Milliseconds())
	if err != nil {
		return fmt.Errorf("failed to insert run record: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (l *PostgresRunLog) Close() error {
	return l.db.Close()
}
