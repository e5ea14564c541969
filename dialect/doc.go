// Package dialect provides the database dialect abstraction used by the
// statement builders in dialect/sql.
//
// # Supported Dialects
//
// Each dialect is identified by a constant string:
//
//	dialect.Postgres = "postgres"
//	dialect.MySQL    = "mysql"
//	dialect.SQLite   = "sqlite"
//
// The set is closed. Validate rejects anything else, and the rendering
// backends in dialect/sql fail fast on unknown names before any rendering
// work begins.
//
// # Driver Interface
//
// The package defines the Driver interface for executing built statements:
//
//	type Driver interface {
//	    Exec(ctx context.Context, query string, args, v any) error
//	    Query(ctx context.Context, query string, args, v any) error
//	    Tx(ctx context.Context) (Tx, error)
//	    Close() error
//	    Dialect() string
//	}
//
// The Tx interface extends ExecQuerier with Commit and Rollback, and the
// ExecQuerier interface is implemented by both Driver and Tx.
//
// # Usage
//
// Opening a database connection:
//
//	import (
//	    "github.com/Follpvosten/sea-query/dialect"
//	    "github.com/Follpvosten/sea-query/dialect/sql"
//	)
//
//	drv, err := sql.Open(dialect.Postgres, "postgres://...")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer drv.Close()
//
// The driver consumes the (sql text, parameters) pairs produced by the
// builders in dialect/sql; it performs no SQL generation of its own.
package dialect
