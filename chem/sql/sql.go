// Package sql provides Iter sources and sinks over database/sql.
package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/reid23/chemical/chem/core"
)

// Queryer is satisfied by *sql.DB, *sql.Conn and *sql.Tx.
type Queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Execer is satisfied by *sql.DB, *sql.Conn and *sql.Tx.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Scanner is a function that scans a row into a value.
type Scanner[T any] func(*sql.Rows) (T, error)

// Query creates a one-directional Iter over the rows of a query. The query
// runs on the first pull. A scanner error is returned for its row and
// iteration continues; a query or driver error ends the Iter. The rows are
// closed when the Iter is exhausted or fails.
func Query[T any](ctx context.Context, db Queryer, query string, scanner Scanner[T], args ...any) *core.Iter[T] {
	return core.FromCursor[T](&rowsCursor[T]{ctx: ctx, db: db, query: query, args: args, scan: scanner, src: core.NewSourceID()})
}

type rowsCursor[T any] struct {
	ctx   context.Context
	db    Queryer
	query string
	args  []any
	scan  Scanner[T]

	rows *sql.Rows
	src  uint64
	pos  uint64
	done bool
}

func (c *rowsCursor[T]) Pull() (T, core.Mark, error) {
	var zero T
	if c.done {
		return zero, core.Mark{}, core.ErrExhausted
	}
	if c.rows == nil {
		rows, err := c.db.QueryContext(c.ctx, c.query, c.args...)
		if err != nil {
			c.done = true
			return zero, core.Mark{}, fmt.Errorf("query: %w", err)
		}
		c.rows = rows
	}
	if !c.rows.Next() {
		c.done = true
		err := c.rows.Err()
		if cerr := c.rows.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return zero, core.Mark{}, fmt.Errorf("rows: %w", err)
		}
		return zero, core.Mark{}, core.ErrExhausted
	}
	m := core.MarkOf(c.src, c.pos)
	c.pos++
	v, err := c.scan(c.rows)
	if err != nil {
		return zero, m, fmt.Errorf("scan: %w", err)
	}
	return v, m, nil
}

// QueryMaps is a convenience function that queries for map results.
// Each row is scanned into a map with column names as keys.
func QueryMaps(ctx context.Context, db Queryer, query string, args ...any) *core.Iter[map[string]any] {
	return Query(ctx, db, query, func(rows *sql.Rows) (map[string]any, error) {
		cols, err := rows.Columns()
		if err != nil {
			return nil, err
		}
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		row := make(map[string]any, len(cols))
		for i, col := range cols {
			if b, ok := values[i].([]byte); ok {
				values[i] = string(b)
			}
			row[col] = values[i]
		}
		return row, nil
	}, args...)
}

// ExecResult contains the result of an exec operation.
type ExecResult struct {
	LastInsertId int64
	RowsAffected int64
}

func execOne(ctx context.Context, db Execer, query string, args []any) (ExecResult, error) {
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return ExecResult{}, fmt.Errorf("exec: %w", err)
	}
	lastID, _ := res.LastInsertId()
	affected, _ := res.RowsAffected()
	return ExecResult{LastInsertId: lastID, RowsAffected: affected}, nil
}

// ExecEach lazily executes query once per element of in, with the arguments
// bind returns for it. Both sides and the bounds of in are kept.
func ExecEach[T any](ctx context.Context, db Execer, query string, in *core.Iter[T], bind func(T) []any) *core.Iter[ExecResult] {
	return core.TryMap(in, func(v T) (ExecResult, error) {
		return execOne(ctx, db, query, bind(v))
	})
}

// Exec drains in inside a single transaction, executing query once per
// element. Any failure rolls the transaction back. The result sums
// RowsAffected and holds the last LastInsertId.
func Exec[T any](ctx context.Context, db *sql.DB, query string, in *core.Iter[T], bind func(T) []any) (ExecResult, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return ExecResult{}, fmt.Errorf("begin: %w", err)
	}
	var total ExecResult
	err = core.Each(ExecEach(ctx, tx, query, in, bind), func(r ExecResult) {
		total.LastInsertId = r.LastInsertId
		total.RowsAffected += r.RowsAffected
	})
	if err != nil {
		return ExecResult{}, errors.Join(err, tx.Rollback())
	}
	if err := tx.Commit(); err != nil {
		return ExecResult{}, fmt.Errorf("commit: %w", err)
	}
	return total, nil
}
