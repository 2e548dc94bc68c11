package store

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"intake-insights-go/internal/types"
)

//go:embed schema.sql
var schemaSQL string

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgres(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

// Migrate applies schema.sql; every statement is idempotent.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Close() {
	s.pool.Close()
}

func (s *PostgresStore) Append(ctx context.Context, l types.CallLog) error {
	fcs, err := json.Marshal(nonNil(l.FunctionCalls))
	if err != nil {
		return fmt.Errorf("marshal function calls: %w", err)
	}
	analysis, err := json.Marshal(l.Analysis)
	if err != nil {
		return fmt.Errorf("marshal analysis: %w", err)
	}
	steps, err := json.Marshal(nonNil(l.NextSteps))
	if err != nil {
		return fmt.Errorf("marshal next steps: %w", err)
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO call_logs (id, call_id, bot_id, caller_number, duration, status, transcript, summary,
			function_calls, analysis, next_steps, created_at, processed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		l.ID, l.CallID, l.BotID, l.CallerNumber, l.Duration, l.Status, l.Transcript, l.Summary,
		fcs, analysis, steps, l.CreatedAt, l.ProcessedAt,
	)
	if err != nil {
		return fmt.Errorf("insert call log: %w", err)
	}
	return nil
}

const selectColumns = `id, call_id, bot_id, caller_number, duration, status, transcript, summary,
	function_calls, analysis, next_steps, created_at, processed_at`

func (s *PostgresStore) List(ctx context.Context, f Filter) ([]types.CallLog, error) {
	query := `SELECT ` + selectColumns + ` FROM call_logs
		WHERE ($1 = '' OR bot_id = $1)
		ORDER BY created_at DESC`
	args := []any{f.BotID}
	if f.Limit > 0 {
		query += ` LIMIT $2`
		args = append(args, f.Limit)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query call logs: %w", err)
	}
	defer rows.Close()

	out := []types.CallLog{}
	for rows.Next() {
		l, err := scanCallLog(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (s *PostgresStore) Get(ctx context.Context, id string) (types.CallLog, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+selectColumns+` FROM call_logs WHERE id = $1`, id)
	l, err := scanCallLog(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return types.CallLog{}, fmt.Errorf("call log %s: %w", id, ErrNotFound)
	}
	return l, err
}

func (s *PostgresStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM call_logs`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count call logs: %w", err)
	}
	return n, nil
}

func scanCallLog(row pgx.Row) (types.CallLog, error) {
	var (
		l                    types.CallLog
		fcs, analysis, steps []byte
	)
	err := row.Scan(&l.ID, &l.CallID, &l.BotID, &l.CallerNumber, &l.Duration, &l.Status,
		&l.Transcript, &l.Summary, &fcs, &analysis, &steps, &l.CreatedAt, &l.ProcessedAt)
	if err != nil {
		return types.CallLog{}, err
	}
	if err := json.Unmarshal(fcs, &l.FunctionCalls); err != nil {
		return types.CallLog{}, fmt.Errorf("decode function calls: %w", err)
	}
	if err := json.Unmarshal(analysis, &l.Analysis); err != nil {
		return types.CallLog{}, fmt.Errorf("decode analysis: %w", err)
	}
	if err := json.Unmarshal(steps, &l.NextSteps); err != nil {
		return types.CallLog{}, fmt.Errorf("decode next steps: %w", err)
	}
	return l, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
