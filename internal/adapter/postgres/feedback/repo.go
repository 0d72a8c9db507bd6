// Package feedback stores like counters in PostgreSQL, for deployments where
// several processes share one feedback store.
package feedback

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/wordlens/internal/adapter/postgres"
	"github.com/heartmarshall/wordlens/internal/domain"
)

const table = "feedback_likes"

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// querier is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repo implements the feedback store on the feedback_likes table.
type Repo struct {
	q querier
}

// New creates a Repo. q is usually a *pgxpool.Pool.
func New(q querier) *Repo {
	return &Repo{q: q}
}

// RecordLike increments the counter for (word, candidate) by one with a
// single upsert, creating the row at 1.
func (r *Repo) RecordLike(ctx context.Context, word, candidate string) error {
	key := domain.FeedbackKey(word, candidate)

	query, args, err := psql.
		Insert(table).
		Columns("key", "word", "candidate", "count").
		Values(key, strings.ToLower(word), strings.ToLower(candidate), 1).
		Suffix("ON CONFLICT (key) DO UPDATE SET count = " + table + ".count + 1, updated_at = now()").
		ToSql()
	if err != nil {
		return fmt.Errorf("feedback: build upsert: %w", err)
	}

	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError("feedback: record like "+key, err)
	}
	return nil
}

// GetLikes returns the counter for (word, candidate), 0 if absent.
func (r *Repo) GetLikes(ctx context.Context, word, candidate string) (int, error) {
	key := domain.FeedbackKey(word, candidate)

	query, args, err := psql.
		Select("count").
		From(table).
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("feedback: build select: %w", err)
	}

	var n int64
	err = r.q.QueryRow(ctx, query, args...).Scan(&n)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, postgres.MapError("feedback: get likes "+key, err)
	}
	return int(n), nil
}

// Ping checks that the table is reachable.
func (r *Repo) Ping(ctx context.Context) error {
	var one int
	if err := r.q.QueryRow(ctx, "SELECT 1 FROM "+table+" LIMIT 1").Scan(&one); err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return postgres.MapError("feedback: ping", err)
	}
	return nil
}
