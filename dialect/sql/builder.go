package sql

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Follpvosten/sea-query/dialect"
)

// Iden is implemented by table, column and alias markers that can render
// their own unquoted SQL name. Equality between identifiers is by rendered
// name, never by identity. Any type can participate; the generic typed
// fields in predicate.go are one example.
type Iden interface {
	Name() string
}

// Alias is a user-chosen identifier string implementing Iden.
type Alias string

// Name returns the unquoted identifier.
func (a Alias) Name() string { return string(a) }

// backend is the per-dialect constant descriptor consumed by a render
// pass: quoting, placeholder syntax, type spellings and clause support.
// Backends carry no mutable state; placeholder counters live in the
// Builder of a single render pass.
type backend struct {
	name          string
	quote         byte   // identifier quote character
	parameterized bool   // $N placeholders instead of ?
	increment     string // column-level auto-increment keyword
	serial        bool   // auto-increment spelled via serial types
	jsonType      string // column type used for JSON fields
	hexPrefixed   bool   // bytes literals as '\x..' instead of x'..'
	dropFK        string // ALTER TABLE DROP keyword for foreign keys
	returning     bool   // supports the RETURNING clause
}

var backends = map[string]*backend{
	dialect.MySQL: {
		name:      dialect.MySQL,
		quote:     '`',
		increment: "AUTO_INCREMENT",
		jsonType:  "json",
		dropFK:    "FOREIGN KEY",
	},
	dialect.Postgres: {
		name:          dialect.Postgres,
		quote:         '"',
		parameterized: true,
		serial:        true,
		jsonType:      "jsonb",
		hexPrefixed:   true,
		dropFK:        "CONSTRAINT",
		returning:     true,
	},
	dialect.SQLite: {
		name:      dialect.SQLite,
		quote:     '`',
		increment: "AUTOINCREMENT",
		jsonType:  "text",
		returning: true,
	},
}

// backendFor resolves a dialect name to its rendering backend. Unknown
// names fail before any rendering work begins.
func backendFor(name string) (*backend, error) {
	bk, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDialect, name)
	}
	return bk, nil
}

// Builder is the write cursor of a single render pass. It accumulates the
// SQL text, the positional parameters in emission order, and any errors
// encountered while walking a statement. A Builder is never shared
// between concurrent render passes; rendering is a pure function of
// (statement, dialect).
type Builder struct {
	sb        strings.Builder
	bk        *backend
	errs      []error
	args      []Value
	collector func(Value)
	total     int // placeholders emitted so far, shared with nested statements
}

// WriteString appends s to the query text.
func (b *Builder) WriteString(s string) *Builder {
	b.sb.WriteString(s)
	return b
}

// WriteByte appends c to the query text.
func (b *Builder) WriteByte(c byte) *Builder {
	b.sb.WriteByte(c)
	return b
}

// Quote quotes the given identifier with the dialect quote character,
// doubling any embedded quote character.
func (b *Builder) Quote(ident string) string {
	q := string(b.bk.quote)
	return q + strings.ReplaceAll(ident, q, q+q) + q
}

// isExpr reports whether s is a pre-rendered expression rather than a
// plain identifier, e.g. "COUNT(`id`)" or "`name` DESC".
func isExpr(s string) bool {
	return strings.ContainsAny(s, "()' ")
}

// quoted reports whether s is already wrapped in the dialect quote
// character. Only such strings may skip quoting; an identifier that
// merely contains the quote character still needs escaping.
func (b *Builder) quoted(s string) bool {
	return len(s) > 1 && s[0] == b.bk.quote && s[len(s)-1] == b.bk.quote
}

// Ident appends the given string as an identifier. Dot-qualified names
// quote each segment ("u.id" becomes `u`.`id`), "*", pre-rendered
// expressions and already-quoted names pass through untouched.
func (b *Builder) Ident(s string) *Builder {
	switch {
	case s == "" || s == "*" || isExpr(s) || b.quoted(s):
		b.WriteString(s)
	case strings.Contains(s, "."):
		for i, p := range strings.Split(s, ".") {
			if i > 0 {
				b.WriteByte('.')
			}
			if p == "*" || b.quoted(p) {
				b.WriteString(p)
			} else {
				b.WriteString(b.Quote(p))
			}
		}
	default:
		b.WriteString(b.Quote(s))
	}
	return b
}

// IdentComma appends the given identifiers, separated by commas.
func (b *Builder) IdentComma(ss ...string) *Builder {
	for i, s := range ss {
		if i > 0 {
			b.Comma()
		}
		b.Ident(s)
	}
	return b
}

// Arg converts v into a Value, emits the dialect placeholder in its
// place and hands the value to the collector. Raw expressions are
// written inline and not collected; every other literal is collected
// and never inlined.
func (b *Builder) Arg(v any) *Builder {
	if r, ok := v.(*raw); ok {
		b.WriteString(r.s)
		return b
	}
	val, err := ValueOf(v)
	if err != nil {
		b.AddError(err)
		return b
	}
	return b.Argv(val)
}

// Argv is like Arg for an already constructed Value.
func (b *Builder) Argv(v Value) *Builder {
	b.total++
	if b.bk.parameterized {
		b.WriteByte('$')
		b.WriteString(strconv.Itoa(b.total))
	} else {
		b.WriteByte('?')
	}
	if b.collector != nil {
		b.collector(v)
	} else {
		b.args = append(b.args, v)
	}
	return b
}

// Args appends a comma-separated list of placeholders for the given
// arguments.
func (b *Builder) Args(vs ...any) *Builder {
	for i, v := range vs {
		if i > 0 {
			b.Comma()
		}
		b.Arg(v)
	}
	return b
}

// Comma appends ", " to the query text.
func (b *Builder) Comma() *Builder {
	return b.WriteString(", ")
}

// Pad appends a single space.
func (b *Builder) Pad() *Builder {
	return b.WriteByte(' ')
}

// Nested runs f inside grouping parentheses. Nesting an expression always
// parenthesizes it, so no operator precedence is ever inferred.
func (b *Builder) Nested(f func(*Builder)) *Builder {
	b.WriteByte('(')
	f(b)
	return b.WriteByte(')')
}

// AddError records an error to be surfaced by the render pass.
func (b *Builder) AddError(err error) *Builder {
	if err != nil {
		b.errs = append(b.errs, err)
	}
	return b
}

// Err returns the errors recorded during the render pass, joined.
func (b *Builder) Err() error {
	return errors.Join(b.errs...)
}

// String returns the accumulated query text.
func (b *Builder) String() string {
	return b.sb.String()
}

// expr is implemented by renderable expression nodes (functions, CASE
// expressions, raw fragments).
type expr interface {
	writeExpr(*Builder)
}

// writeOperand renders a single operand: plain strings are identifiers,
// Iden markers render their name, expression nodes and sub-selects
// render themselves, and anything else is a literal collected as a
// parameter.
func (b *Builder) writeOperand(v any) {
	switch v := v.(type) {
	case string:
		b.Ident(v)
	case Iden:
		b.Ident(v.Name())
	case expr:
		v.writeExpr(b)
	case *Selector:
		b.Nested(v.render)
	default:
		b.Arg(v)
	}
}

// raw is a caller-supplied SQL fragment emitted verbatim.
type raw struct{ s string }

func (r *raw) writeExpr(b *Builder) { b.WriteString(r.s) }

// Raw returns an SQL fragment that is written inline instead of being
// collected as a parameter. The caller is responsible for its safety.
func Raw(s string) any { return &raw{s: s} }

// Asc returns a column ordering suffixed with ASC.
func Asc(column string) string { return column + " ASC" }

// Desc returns a column ordering suffixed with DESC.
func Desc(column string) string { return column + " DESC" }

// writeOrder renders one ORDER BY term, quoting the column part of the
// Asc/Desc forms produced above.
func (b *Builder) writeOrder(term string) {
	switch {
	case strings.HasSuffix(term, " ASC"):
		b.Ident(strings.TrimSuffix(term, " ASC")).WriteString(" ASC")
	case strings.HasSuffix(term, " DESC"):
		b.Ident(strings.TrimSuffix(term, " DESC")).WriteString(" DESC")
	default:
		b.Ident(term)
	}
}

// renderer is the node contract consumed by a render pass: every
// statement builder knows how to write itself onto a Builder.
type renderer interface {
	render(*Builder)
}

// Querier is the interface implemented by all statement builders. The
// returned parameters match placeholder occurrence order in the query
// text.
type Querier interface {
	Build(dialect string) (query string, params []Value, err error)
}

// buildCollect renders r against the named dialect, streaming each
// parameter to collect in emission order, and returns the query text.
func buildCollect(r renderer, dialectName string, collect func(Value)) (string, error) {
	bk, err := backendFor(dialectName)
	if err != nil {
		return "", err
	}
	b := &Builder{bk: bk, collector: collect}
	r.render(b)
	if err := b.Err(); err != nil {
		return "", err
	}
	return b.String(), nil
}

// buildParams renders r and gathers the parameters into a slice.
func buildParams(r renderer, dialectName string) (string, []Value, error) {
	var params []Value
	query, err := buildCollect(r, dialectName, func(v Value) {
		params = append(params, v)
	})
	if err != nil {
		return "", nil, err
	}
	return query, params, nil
}

// buildX is the panicking form of buildParams.
func buildX(r renderer, dialectName string) (string, []Value) {
	query, params, err := buildParams(r, dialectName)
	if err != nil {
		panic(err)
	}
	return query, params
}

// debugString builds r and splices the parameters back in as literals.
// The result is for logs and tests only and must never be executed.
func debugString(r renderer, dialectName string) string {
	query, params, err := buildParams(r, dialectName)
	if err != nil {
		panic(err)
	}
	s, err := Inject(dialectName, query, params)
	if err != nil {
		panic(err)
	}
	return s
}

// defaultDialect is used by the Query convenience methods when a builder
// was constructed without an explicit dialect.
const defaultDialect = dialect.MySQL

// DialectBuilder prefixes all root builders with the given dialect.
type DialectBuilder struct {
	dialect string
}

// Dialect creates a builder factory for the given dialect. The name is
// validated when a statement is built.
func Dialect(name string) *DialectBuilder {
	return &DialectBuilder{dialect: name}
}

// Select starts a SELECT builder for the configured dialect.
func (d *DialectBuilder) Select(columns ...any) *Selector {
	s := Select(columns...)
	s.dialect = d.dialect
	return s
}

// Insert starts an INSERT builder for the configured dialect.
func (d *DialectBuilder) Insert(table string) *InsertBuilder {
	i := Insert(table)
	i.dialect = d.dialect
	return i
}

// Update starts an UPDATE builder for the configured dialect.
func (d *DialectBuilder) Update(table string) *UpdateBuilder {
	u := Update(table)
	u.dialect = d.dialect
	return u
}

// Delete starts a DELETE builder for the configured dialect.
func (d *DialectBuilder) Delete(table string) *DeleteBuilder {
	dl := Delete(table)
	dl.dialect = d.dialect
	return dl
}

// CreateTable starts a CREATE TABLE builder for the configured dialect.
func (d *DialectBuilder) CreateTable(name string) *TableBuilder {
	t := CreateTable(name)
	t.dialect = d.dialect
	return t
}

// AlterTable starts an ALTER TABLE builder for the configured dialect.
func (d *DialectBuilder) AlterTable(name string) *TableAlter {
	a := AlterTable(name)
	a.dialect = d.dialect
	return a
}

// DropTable starts a DROP TABLE builder for the configured dialect.
func (d *DialectBuilder) DropTable(name string) *DropTableBuilder {
	t := DropTable(name)
	t.dialect = d.dialect
	return t
}

// CreateIndex starts a CREATE INDEX builder for the configured dialect.
func (d *DialectBuilder) CreateIndex(name string) *IndexBuilder {
	i := CreateIndex(name)
	i.dialect = d.dialect
	return i
}

// DropIndex starts a DROP INDEX builder for the configured dialect.
func (d *DialectBuilder) DropIndex(name string) *DropIndexBuilder {
	i := DropIndex(name)
	i.dialect = d.dialect
	return i
}

// orDefault falls back to the package default dialect for the Query
// convenience methods.
func orDefault(name string) string {
	if name == "" {
		return defaultDialect
	}
	return name
}

// TableView is implemented by the FROM sources of a Selector: named
// tables and sub-queries.
type TableView interface {
	view()
}

// SelectTable is a named table, optionally aliased.
type SelectTable struct {
	name string
	as   string
}

// Table returns a new table reference for the given name.
func Table(name string) *SelectTable {
	return &SelectTable{name: name}
}

// TableIden returns a table reference for the given identifier marker.
func TableIden(i Iden) *SelectTable {
	return Table(i.Name())
}

// As aliases the table.
func (s *SelectTable) As(alias string) *SelectTable {
	s.as = alias
	return s
}

// C returns the column qualified by the table alias (or name when no
// alias was set). The result is unquoted; quoting happens at render
// time against the selected dialect.
func (s *SelectTable) C(column string) string {
	if s.as != "" {
		return s.as + "." + column
	}
	return s.name + "." + column
}

// Columns qualifies the given columns like C.
func (s *SelectTable) Columns(columns ...string) []string {
	qualified := make([]string, len(columns))
	for i, c := range columns {
		qualified[i] = s.C(c)
	}
	return qualified
}

// Name implements Iden.
func (s *SelectTable) Name() string { return s.name }

func (*SelectTable) view() {}

func (s *SelectTable) render(b *Builder) {
	b.Ident(s.name)
	if s.as != "" {
		b.WriteString(" AS ")
		b.Ident(s.as)
	}
}
