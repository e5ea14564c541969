package sql

import (
	"fmt"
	"strconv"
)

// Selector builds a SELECT statement. All setters mutate the receiver
// and return it, so configuration chains:
//
//	Select("id", "name").
//	    From(Table("users")).
//	    Where(EQ("status", "active")).
//	    OrderBy(Desc("created_at")).
//	    Limit(10)
type Selector struct {
	dialect  string
	columns  []any
	from     TableView
	joins    []join
	where    *Predicate
	groupBy  []string
	having   *Predicate
	order    []string
	limit    *int
	offset   *int
	distinct bool
	as       string
}

type join struct {
	kind  string
	table TableView
	on    *Predicate
}

// Select returns a new selector with the given projection. Plain strings
// are column identifiers; Iden markers, function calls and sub-selects
// are rendered as expressions. An empty projection selects "*".
func Select(columns ...any) *Selector {
	return &Selector{columns: columns}
}

// SetDialect sets the dialect used by the Query convenience method.
func (s *Selector) SetDialect(name string) *Selector {
	s.dialect = name
	return s
}

// Distinct marks the projection as DISTINCT.
func (s *Selector) Distinct() *Selector {
	s.distinct = true
	return s
}

// AppendSelect appends columns to the projection.
func (s *Selector) AppendSelect(columns ...any) *Selector {
	s.columns = append(s.columns, columns...)
	return s
}

// From sets the FROM source. It accepts a table name, a *SelectTable, an
// Iden marker, or a *Selector used as a sub-query view.
func (s *Selector) From(t any) *Selector {
	switch t := t.(type) {
	case TableView:
		s.from = t
	case string:
		s.from = Table(t)
	case Iden:
		s.from = Table(t.Name())
	default:
		panic(fmt.Sprintf("sql: invalid FROM source of type %T", t))
	}
	return s
}

// C returns the column qualified by the FROM table alias or name.
func (s *Selector) C(column string) string {
	if t, ok := s.from.(*SelectTable); ok {
		return t.C(column)
	}
	return column
}

// As sets the alias used when the selector serves as a sub-query view.
func (s *Selector) As(alias string) *Selector {
	s.as = alias
	return s
}

func (*Selector) view() {}

// Where appends the predicate to the WHERE clause, combined with AND.
func (s *Selector) Where(p *Predicate) *Selector {
	if s.where != nil {
		s.where = And(s.where, p)
	} else {
		s.where = p
	}
	return s
}

// Join appends an INNER JOIN on the given view.
func (s *Selector) Join(t TableView) *Selector {
	return s.join("JOIN", t)
}

// LeftJoin appends a LEFT JOIN on the given view.
func (s *Selector) LeftJoin(t TableView) *Selector {
	return s.join("LEFT JOIN", t)
}

// RightJoin appends a RIGHT JOIN on the given view.
func (s *Selector) RightJoin(t TableView) *Selector {
	return s.join("RIGHT JOIN", t)
}

func (s *Selector) join(kind string, t TableView) *Selector {
	s.joins = append(s.joins, join{kind: kind, table: t})
	return s
}

// On sets the join condition of the last join to column equality.
func (s *Selector) On(col1, col2 string) *Selector {
	return s.OnP(ColumnsEQ(col1, col2))
}

// OnP sets the join condition of the last join to an arbitrary
// predicate, combined with AND when called repeatedly.
func (s *Selector) OnP(p *Predicate) *Selector {
	if len(s.joins) == 0 {
		panic("sql: On called before Join")
	}
	j := &s.joins[len(s.joins)-1]
	if j.on != nil {
		j.on = And(j.on, p)
	} else {
		j.on = p
	}
	return s
}

// GroupBy appends columns to the GROUP BY clause.
func (s *Selector) GroupBy(columns ...string) *Selector {
	s.groupBy = append(s.groupBy, columns...)
	return s
}

// Having sets the HAVING predicate.
func (s *Selector) Having(p *Predicate) *Selector {
	s.having = p
	return s
}

// OrderBy appends ordering terms, typically built with Asc or Desc.
// A bare column name orders ascending.
func (s *Selector) OrderBy(columns ...string) *Selector {
	s.order = append(s.order, columns...)
	return s
}

// Limit sets the LIMIT clause.
func (s *Selector) Limit(n int) *Selector {
	s.limit = &n
	return s
}

// Offset sets the OFFSET clause.
func (s *Selector) Offset(n int) *Selector {
	s.offset = &n
	return s
}

func (s *Selector) render(b *Builder) {
	b.WriteString("SELECT ")
	if s.distinct {
		b.WriteString("DISTINCT ")
	}
	if len(s.columns) == 0 {
		b.WriteString("*")
	}
	for i, c := range s.columns {
		if i > 0 {
			b.Comma()
		}
		b.writeOperand(c)
	}
	if s.from != nil {
		b.WriteString(" FROM ")
		renderView(b, s.from)
	}
	for _, j := range s.joins {
		b.Pad().WriteString(j.kind).Pad()
		renderView(b, j.table)
		if j.on != nil {
			b.WriteString(" ON ")
			j.on.writeExpr(b)
		}
	}
	if s.where != nil {
		b.WriteString(" WHERE ")
		s.where.writeExpr(b)
	}
	if len(s.groupBy) > 0 {
		b.WriteString(" GROUP BY ")
		b.IdentComma(s.groupBy...)
	}
	if s.having != nil {
		b.WriteString(" HAVING ")
		s.having.writeExpr(b)
	}
	if len(s.order) > 0 {
		b.WriteString(" ORDER BY ")
		for i, o := range s.order {
			if i > 0 {
				b.Comma()
			}
			b.writeOrder(o)
		}
	}
	// LIMIT and OFFSET are integers under the builder's control and are
	// inlined rather than collected.
	if s.limit != nil {
		b.WriteString(" LIMIT ")
		b.WriteString(strconv.Itoa(*s.limit))
	}
	if s.offset != nil {
		b.WriteString(" OFFSET ")
		b.WriteString(strconv.Itoa(*s.offset))
	}
}

func renderView(b *Builder, t TableView) {
	switch t := t.(type) {
	case *SelectTable:
		t.render(b)
	case *Selector:
		b.Nested(t.render)
		if t.as != "" {
			b.WriteString(" AS ")
			b.Ident(t.as)
		}
	default:
		b.AddError(fmt.Errorf("sql: unknown table view %T", t))
	}
}

// Build renders the statement for the given dialect and returns the SQL
// text together with the collected parameters in placeholder order.
func (s *Selector) Build(dialect string) (string, []Value, error) {
	return buildParams(s, dialect)
}

// BuildX is like Build, but panics on error.
func (s *Selector) BuildX(dialect string) (string, []Value) {
	return buildX(s, dialect)
}

// BuildCollect is like Build, but streams each parameter to collect as
// it is discovered, returning only the SQL text.
func (s *Selector) BuildCollect(dialect string, collect func(Value)) (string, error) {
	return buildCollect(s, dialect, collect)
}

// Query renders the statement using the dialect the builder was
// constructed with, panicking on misuse.
func (s *Selector) Query() (string, []Value) {
	return s.BuildX(orDefault(s.dialect))
}

// DebugString renders the statement with parameters spliced back in as
// literals. The result is for logs and tests only; it must never be
// handed to a driver.
func (s *Selector) DebugString(dialect string) string {
	return debugString(s, dialect)
}
