// Package sql compiles statically structured SQL statements into
// dialect-correct text plus an ordered parameter list.
//
// Statements are built as passive value trees and rendered on demand
// against one of the supported dialects (MySQL, PostgreSQL, SQLite).
// Rendering never mutates the statement, so one tree can be built once
// and rendered for several dialects, concurrently if needed.
//
// # Builder Types
//
// The package provides one builder per statement kind:
//
//   - Builder: low-level SQL writer with identifier quoting and
//     placeholder management
//   - Selector: SELECT with joins, predicates, grouping and pagination
//   - InsertBuilder: multi-row INSERT with JSON row derivation and
//     RETURNING support
//   - UpdateBuilder: UPDATE with SET pairs and WHERE clauses
//   - DeleteBuilder: DELETE with WHERE predicates
//   - TableBuilder, TableAlter, DropTableBuilder, IndexBuilder,
//     DropIndexBuilder: schema statements
//
// # Dialect Support
//
// SQL generation adapts to the target dialect:
//
//	import "github.com/Follpvosten/sea-query/dialect"
//
//	// PostgreSQL: double-quoted identifiers, $N placeholders.
//	b := sql.Dialect(dialect.Postgres)
//	b.Select("id", "name").From("users").Where(sql.EQ("status", "active"))
//
//	// MySQL: backtick identifiers, ? placeholders.
//	b := sql.Dialect(dialect.MySQL)
//
// Every statement offers Build (fallible), BuildX (panicking), and
// BuildCollect, which streams parameters to a callback in placeholder
// order. DebugString splices parameters back in as literals for logs.
//
// # Predicates
//
//	// Equality
//	sql.EQ("name", "john")           // name = 'john'
//	sql.NEQ("status", "deleted")     // status <> 'deleted'
//
//	// Comparison
//	sql.GT("age", 18)                // age > 18
//	sql.LTE("price", 100.0)          // price <= 100.0
//
//	// String matching
//	sql.Contains("name", "john")     // name LIKE '%john%'
//	sql.HasPrefix("email", "admin")  // email LIKE 'admin%'
//
//	// NULL checks
//	sql.IsNull("deleted_at")         // deleted_at IS NULL
//	sql.NotNull("email")             // email IS NOT NULL
//
//	// IN clauses
//	sql.In("status", "active", "pending")  // status IN ('active', 'pending')
//
// # Joins
//
//	sql.Select("u.id", "u.name", "p.title").
//	    From(sql.Table("users").As("u")).
//	    Join(sql.Table("posts").As("p")).On("u.id", "p.user_id").
//	    Where(sql.EQ("u.status", "active"))
//
// # Execution
//
// The value parameters carry their database type; handing a built
// statement to a database goes through the driver wrappers:
//
//	drv, _ := sql.Open("postgres", dsn)
//	rows, err := sql.QueryStatement(ctx, drv, sql.Select("id").From("users"))
package sql
