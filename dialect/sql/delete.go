package sql

// DeleteBuilder builds a DELETE statement.
type DeleteBuilder struct {
	dialect string
	table   string
	where   *Predicate
}

// Delete returns a builder for a DELETE from the given table.
func Delete(table string) *DeleteBuilder {
	return &DeleteBuilder{table: table}
}

// SetDialect sets the dialect used by the Query convenience method.
func (d *DeleteBuilder) SetDialect(name string) *DeleteBuilder {
	d.dialect = name
	return d
}

// Where appends the predicate to the WHERE clause, combined with AND.
func (d *DeleteBuilder) Where(p *Predicate) *DeleteBuilder {
	if d.where != nil {
		d.where = And(d.where, p)
	} else {
		d.where = p
	}
	return d
}

func (d *DeleteBuilder) render(b *Builder) {
	b.WriteString("DELETE FROM ")
	b.Ident(d.table)
	if d.where != nil {
		b.WriteString(" WHERE ")
		d.where.writeExpr(b)
	}
}

// Build renders the statement for the given dialect and returns the SQL
// text together with the collected parameters in placeholder order.
func (d *DeleteBuilder) Build(dialect string) (string, []Value, error) {
	return buildParams(d, dialect)
}

// BuildX is like Build, but panics on error.
func (d *DeleteBuilder) BuildX(dialect string) (string, []Value) {
	return buildX(d, dialect)
}

// BuildCollect is like Build, but streams each parameter to collect as
// it is discovered, returning only the SQL text.
func (d *DeleteBuilder) BuildCollect(dialect string, collect func(Value)) (string, error) {
	return buildCollect(d, dialect, collect)
}

// Query renders the statement using the dialect the builder was
// constructed with, panicking on misuse.
func (d *DeleteBuilder) Query() (string, []Value) {
	return d.BuildX(orDefault(d.dialect))
}

// DebugString renders the statement with parameters spliced back in as
// literals, for logs and tests only.
func (d *DeleteBuilder) DebugString(dialect string) string {
	return debugString(d, dialect)
}
