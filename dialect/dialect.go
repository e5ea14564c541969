package dialect

import (
	"context"
	"fmt"
)

// Supported dialect names. The set is closed: rendering backends exist
// for exactly these databases.
const (
	// MySQL is the dialect name for MySQL/MariaDB.
	MySQL = "mysql"
	// SQLite is the dialect name for SQLite.
	SQLite = "sqlite"
	// Postgres is the dialect name for PostgreSQL.
	Postgres = "postgres"
)

// Validate reports whether name is one of the supported dialects.
// Callers that accept a dialect from configuration should fail fast
// on an error from Validate before building any statement.
func Validate(name string) error {
	switch name {
	case MySQL, SQLite, Postgres:
		return nil
	default:
		return fmt.Errorf("dialect: unsupported dialect %q", name)
	}
}

// ExecQuerier wraps the basic Exec and Query methods.
type ExecQuerier interface {
	// Exec executes a statement that does not return rows.
	// Its args slice is expected to be of type []any, and v is either
	// nil or a *sql.Result destination.
	Exec(ctx context.Context, query string, args, v any) error
	// Query executes a statement that returns rows, typically a SELECT.
	// Its args slice is expected to be of type []any, and v a *sql.Rows
	// destination.
	Query(ctx context.Context, query string, args, v any) error
}

// Driver is the interface that wraps all database operations.
type Driver interface {
	ExecQuerier
	// Tx starts and returns a new transaction.
	// The provided context is used until the transaction is committed or rolled back.
	Tx(context.Context) (Tx, error)
	// Close closes the underlying connection.
	Close() error
	// Dialect returns the dialect name of the driver.
	Dialect() string
}

// Tx wraps transactional operations.
type Tx interface {
	ExecQuerier
	Commit() error
	Rollback() error
}
