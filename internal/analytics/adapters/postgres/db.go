package postgres

import (
	"context"
	"database/sql"
)

// RowScanner is the subset of *sql.Rows the repository reads from.
type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

type sqlDB struct {
	db *sql.DB
}

// NewSQLDB adapts a pool to DB. *sql.Rows already satisfies RowScanner.
func NewSQLDB(db *sql.DB) DB {
	return &sqlDB{db: db}
}

func (s *sqlDB) QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
