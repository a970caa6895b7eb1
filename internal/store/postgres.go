/**
 * @description
 * PostgreSQL implementation plumbing shared by the entity repositories in
 * this package: pool construction, error mapping, and small helpers for
 * jsonb columns. The per-entity SQL lives in leads.go, content.go,
 * branches.go and admin.go.
 *
 * @dependencies
 * - github.com/jackc/pgx/v5: PostgreSQL driver and connection pool.
 */

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/phictor/leadcitymfb-sub000/internal/domain"
)

// Postgres implements Store on a pgx connection pool.
type Postgres struct {
	db *pgxpool.Pool
}

// compile-time check that Postgres satisfies the facade.
var _ Store = (*Postgres)(nil)

// NewPostgres creates the facade over an existing pool.
func NewPostgres(db *pgxpool.Pool) *Postgres {
	return &Postgres{db: db}
}

// Connect parses the database URL and opens a tuned pool. Prepared
// statement caching is disabled to avoid conflicts behind connection
// poolers such as PgBouncer.
func Connect(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	cfg.MaxConns = 10
	cfg.MinConns = 2
	cfg.MaxConnLifetime = 30 * time.Minute
	cfg.MaxConnIdleTime = 5 * time.Minute
	cfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return pool, nil
}

// mapError converts driver errors into the facade's sentinel errors.
func mapError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrConflict
	}
	return err
}

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// jsonArg renders an optional json.RawMessage for a $n::jsonb parameter.
func jsonArg(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}

// stringListArg renders a []string for a $n::jsonb parameter.
func stringListArg(list []string) (any, error) {
	if list == nil {
		return nil, nil
	}
	b, err := json.Marshal(list)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// scanJSON normalizes a nullable jsonb column scanned as []byte.
func scanJSON(b []byte) json.RawMessage {
	if len(b) == 0 {
		return nil
	}
	return json.RawMessage(b)
}

// scanStringList decodes a nullable jsonb string array column.
func scanStringList(b []byte) ([]string, error) {
	if len(b) == 0 {
		return nil, nil
	}
	var list []string
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// deleteByID runs a single-row delete and maps zero affected rows to
// ErrNotFound so handlers never acknowledge deleting a missing record.
func (p *Postgres) deleteByID(ctx context.Context, table string, id int64) error {
	tag, err := p.db.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, table), id)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// moneyArg renders an optional Money pointer for a nullable bigint column.
func moneyArg(m *domain.Money) any {
	if m == nil {
		return nil
	}
	return m.Int64()
}
