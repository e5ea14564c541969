package sql

import "fmt"

// UpdateBuilder builds an UPDATE statement.
type UpdateBuilder struct {
	dialect string
	table   string
	columns []string
	values  []any
	where   *Predicate
}

// Update returns a builder for an UPDATE of the given table.
func Update(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

// SetDialect sets the dialect used by the Query convenience method.
func (u *UpdateBuilder) SetDialect(name string) *UpdateBuilder {
	u.dialect = name
	return u
}

// Set assigns a value to a column. The value may be a Go value converted
// with ValueOf, a Value, an expression such as Fn("LOWER", "name"), or a
// *Selector rendered as a scalar sub-query. A nil value sets NULL.
func (u *UpdateBuilder) Set(column string, v any) *UpdateBuilder {
	u.columns = append(u.columns, column)
	u.values = append(u.values, v)
	return u
}

// SetNull assigns NULL to the column.
func (u *UpdateBuilder) SetNull(column string) *UpdateBuilder {
	return u.Set(column, nil)
}

// Where appends the predicate to the WHERE clause, combined with AND.
func (u *UpdateBuilder) Where(p *Predicate) *UpdateBuilder {
	if u.where != nil {
		u.where = And(u.where, p)
	} else {
		u.where = p
	}
	return u
}

func (u *UpdateBuilder) render(b *Builder) {
	b.WriteString("UPDATE ")
	b.Ident(u.table)
	b.WriteString(" SET ")
	if len(u.columns) == 0 {
		b.AddError(fmt.Errorf("sql: update %q without assignments", u.table))
	}
	for i, c := range u.columns {
		if i > 0 {
			b.Comma()
		}
		b.Ident(c)
		b.WriteString(" = ")
		b.writeValue(u.values[i])
	}
	if u.where != nil {
		b.WriteString(" WHERE ")
		u.where.writeExpr(b)
	}
}

// Build renders the statement for the given dialect and returns the SQL
// text together with the collected parameters in placeholder order.
func (u *UpdateBuilder) Build(dialect string) (string, []Value, error) {
	return buildParams(u, dialect)
}

// BuildX is like Build, but panics on error.
func (u *UpdateBuilder) BuildX(dialect string) (string, []Value) {
	return buildX(u, dialect)
}

// BuildCollect is like Build, but streams each parameter to collect as
// it is discovered, returning only the SQL text.
func (u *UpdateBuilder) BuildCollect(dialect string, collect func(Value)) (string, error) {
	return buildCollect(u, dialect, collect)
}

// Query renders the statement using the dialect the builder was
// constructed with, panicking on misuse.
func (u *UpdateBuilder) Query() (string, []Value) {
	return u.BuildX(orDefault(u.dialect))
}

// DebugString renders the statement with parameters spliced back in as
// literals, for logs and tests only.
func (u *UpdateBuilder) DebugString(dialect string) string {
	return debugString(u, dialect)
}
