// Package executor runs queries produced by sqlbuilder against their
// connection and binds the rows to records.
package executor

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/golobby/sqlbuilder"
	"github.com/golobby/sqlbuilder/bind"
)

var (
	ErrNoConnection     = errors.New("executor: query has no connection")
	ErrMoreThanOneRow   = errors.New("executor: query returned more than one row")
	ErrMissingResultSet = errors.New("executor: paged query returned no data result set")
)

// Page is one page of records plus the number of rows matching the filters.
type Page[T any] struct {
	PageNumber int
	PageSize   int
	OrderedBy  string
	Total      int64
	Records    []T
}

func ToList[T any](ctx context.Context, q *sqlbuilder.DataQuery) ([]T, error) {
	rows, err := query(ctx, q.Conn, q.Logger(), q.SelectQuery, q.Parameters)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []T
	if err := bind.Rows(rows, &out); err != nil {
		return nil, fmt.Errorf("binding rows: %w", err)
	}
	return out, nil
}

// FirstOrDefault returns the first row, or the zero value of T when there is none.
func FirstOrDefault[T any](ctx context.Context, q *sqlbuilder.DataQuery) (T, error) {
	var out T
	rows, err := query(ctx, q.Conn, q.Logger(), q.SelectQuery, q.Parameters)
	if err != nil {
		return out, err
	}
	defer rows.Close()

	if err := bind.Rows(rows, &out); err != nil {
		return out, fmt.Errorf("binding rows: %w", err)
	}
	return out, nil
}

// SingleOrDefault is FirstOrDefault that fails with ErrMoreThanOneRow when
// more than one row matches.
func SingleOrDefault[T any](ctx context.Context, q *sqlbuilder.DataQuery) (T, error) {
	var zero T
	records, err := ToList[T](ctx, q)
	if err != nil {
		return zero, err
	}
	switch len(records) {
	case 0:
		return zero, nil
	case 1:
		return records[0], nil
	default:
		return zero, ErrMoreThanOneRow
	}
}

// Execute runs the count and data statements of q as a single batch. The
// driver has to return the count and the records as two result sets.
func Execute[T any](ctx context.Context, q *sqlbuilder.PagedQuery) (*Page[T], error) {
	rows, err := query(ctx, q.Conn, q.Logger(), q.CountQuery+"\n"+q.DataQuery, q.Parameters)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	page := &Page[T]{
		PageNumber: q.SearchCriteria.PageNumber,
		PageSize:   q.SearchCriteria.PageSize,
		OrderedBy:  q.SearchCriteria.OrderBy,
	}
	if err := bind.Rows(rows, &page.Total); err != nil {
		return nil, fmt.Errorf("binding count: %w", err)
	}
	if !rows.NextResultSet() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, ErrMissingResultSet
	}
	if err := bind.Rows(rows, &page.Records); err != nil {
		return nil, fmt.Errorf("binding rows: %w", err)
	}
	return page, nil
}

func query(ctx context.Context, conn sqlbuilder.Querier, log sqlbuilder.Logger, stmt string, params sqlbuilder.Parameters) (*sql.Rows, error) {
	if conn == nil {
		return nil, ErrNoConnection
	}
	stmt, args := expand(stmt, params)
	log.Debugf("executing %q with %d arguments", stmt, len(args))
	rows, err := conn.QueryContext(ctx, stmt, args...)
	if err != nil {
		log.Errorf("query %q failed: %v", stmt, err)
		return nil, fmt.Errorf("executing query: %w", err)
	}
	return rows, nil
}
