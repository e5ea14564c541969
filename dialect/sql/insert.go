package sql

import (
	"errors"
	"fmt"

	"github.com/Follpvosten/sea-query/dialect"
)

// InsertBuilder builds an INSERT statement.
type InsertBuilder struct {
	dialect   string
	table     string
	columns   []string
	rows      [][]Value
	defaults  bool
	returning []string
	errs      []error
}

// Insert returns a builder for an INSERT into the given table.
func Insert(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

// SetDialect sets the dialect used by the Query convenience method.
func (i *InsertBuilder) SetDialect(name string) *InsertBuilder {
	i.dialect = name
	return i
}

// Columns sets the column list. Every subsequent Values call must supply
// exactly one value per column.
func (i *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	i.columns = columns
	return i
}

// Values appends a row. The arguments are converted with ValueOf, and an
// argument count that does not match the column list records an error on
// the builder, surfaced by Build and Err.
func (i *InsertBuilder) Values(args ...any) *InsertBuilder {
	if err := i.appendRow(args); err != nil {
		i.errs = append(i.errs, err)
	}
	return i
}

// ValuesX is like Values, but panics on a column/value count mismatch or
// an unsupported argument type.
func (i *InsertBuilder) ValuesX(args ...any) *InsertBuilder {
	if err := i.appendRow(args); err != nil {
		panic(err)
	}
	return i
}

func (i *InsertBuilder) appendRow(args []any) error {
	if len(args) != len(i.columns) {
		return &ArityError{Columns: len(i.columns), Values: len(args)}
	}
	row := make([]Value, len(args))
	for j, arg := range args {
		v, err := ValueOf(arg)
		if err != nil {
			return err
		}
		row[j] = v
	}
	i.rows = append(i.rows, row)
	return nil
}

// JSON derives the column list and a row from a JSON object: keys become
// columns in lexicographic order, values become typed parameters. Keys
// absent from an already declared column list insert NULL for that
// column; keys outside the declared list are ignored. It panics when the
// argument does not decode to a JSON object.
func (i *InsertBuilder) JSON(obj any) *InsertBuilder {
	m := jsonObject(obj)
	if len(i.columns) == 0 {
		i.columns = sortedKeys(m)
	}
	row := make([]Value, len(i.columns))
	for j, c := range i.columns {
		if raw, ok := m[c]; ok {
			row[j] = jsonValue(raw)
		} else {
			row[j] = Null()
		}
	}
	i.rows = append(i.rows, row)
	return i
}

// Default renders the insert without an explicit row, letting column
// defaults apply.
func (i *InsertBuilder) Default() *InsertBuilder {
	i.defaults = true
	return i
}

// Returning adds a RETURNING clause on dialects that support it. MySQL
// ignores the clause.
func (i *InsertBuilder) Returning(columns ...string) *InsertBuilder {
	i.returning = columns
	return i
}

// Err returns the errors recorded by Values calls, if any.
func (i *InsertBuilder) Err() error {
	return errors.Join(i.errs...)
}

func (i *InsertBuilder) render(b *Builder) {
	for _, err := range i.errs {
		b.AddError(err)
	}
	b.WriteString("INSERT INTO ")
	b.Ident(i.table)
	if i.defaults && len(i.rows) == 0 {
		i.renderDefault(b)
	} else {
		b.WriteString(" ")
		b.Nested(func(b *Builder) {
			b.IdentComma(i.columns...)
		})
		b.WriteString(" VALUES ")
		if len(i.rows) == 0 {
			b.AddError(fmt.Errorf("sql: insert into %q without values", i.table))
		}
		for j, row := range i.rows {
			if j > 0 {
				b.Comma()
			}
			b.Nested(func(b *Builder) {
				for k, v := range row {
					if k > 0 {
						b.Comma()
					}
					b.Argv(v)
				}
			})
		}
	}
	if len(i.returning) > 0 && b.bk.returning {
		b.WriteString(" RETURNING ")
		b.IdentComma(i.returning...)
	}
}

func (i *InsertBuilder) renderDefault(b *Builder) {
	switch b.bk.name {
	case dialect.MySQL:
		b.WriteString(" () VALUES ()")
	default:
		b.WriteString(" DEFAULT VALUES")
	}
}

// Build renders the statement for the given dialect and returns the SQL
// text together with the collected parameters in placeholder order.
func (i *InsertBuilder) Build(dialect string) (string, []Value, error) {
	return buildParams(i, dialect)
}

// BuildX is like Build, but panics on error.
func (i *InsertBuilder) BuildX(dialect string) (string, []Value) {
	return buildX(i, dialect)
}

// BuildCollect is like Build, but streams each parameter to collect as
// it is discovered, returning only the SQL text.
func (i *InsertBuilder) BuildCollect(dialect string, collect func(Value)) (string, error) {
	return buildCollect(i, dialect, collect)
}

// Query renders the statement using the dialect the builder was
// constructed with, panicking on misuse.
func (i *InsertBuilder) Query() (string, []Value) {
	return i.BuildX(orDefault(i.dialect))
}

// DebugString renders the statement with parameters spliced back in as
// literals, for logs and tests only.
func (i *InsertBuilder) DebugString(dialect string) string {
	return debugString(i, dialect)
}
