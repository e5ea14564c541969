package sql

import (
	"fmt"
	"strconv"

	"github.com/Follpvosten/sea-query/dialect"
)

// ReferenceAction is a referential action for ON DELETE and ON UPDATE
// clauses of a foreign key.
type ReferenceAction string

// Referential actions shared by all dialects.
const (
	NoAction   ReferenceAction = "NO ACTION"
	Restrict   ReferenceAction = "RESTRICT"
	Cascade    ReferenceAction = "CASCADE"
	SetNull    ReferenceAction = "SET NULL"
	SetDefault ReferenceAction = "SET DEFAULT"
)

type columnType int

const (
	typeRaw columnType = iota
	typeBool
	typeInt
	typeBigInt
	typeFloat
	typeDouble
	typeVarchar
	typeText
	typeTime
	typeJSON
	typeBytes
	typeUUID
)

// ColumnBuilder describes one column of a CREATE TABLE or ALTER TABLE
// statement.
type ColumnBuilder struct {
	name      string
	typ       columnType
	raw       string
	size      int
	notNull   bool
	null      bool
	primary   bool
	unique    bool
	increment bool
	def       *Value
	err       error
}

// Column returns a column definition with the given name. The type is
// set with one of the typed helpers or with Type.
func Column(name string) *ColumnBuilder {
	return &ColumnBuilder{name: name}
}

// Type sets a raw, dialect-specific column type. The typed helpers are
// preferred since they render the proper type per dialect.
func (c *ColumnBuilder) Type(t string) *ColumnBuilder {
	c.typ, c.raw = typeRaw, t
	return c
}

// Bool sets a boolean column type.
func (c *ColumnBuilder) Bool() *ColumnBuilder { c.typ = typeBool; return c }

// Int sets a 32-bit integer column type.
func (c *ColumnBuilder) Int() *ColumnBuilder { c.typ = typeInt; return c }

// BigInt sets a 64-bit integer column type.
func (c *ColumnBuilder) BigInt() *ColumnBuilder { c.typ = typeBigInt; return c }

// Float sets a single-precision column type.
func (c *ColumnBuilder) Float() *ColumnBuilder { c.typ = typeFloat; return c }

// Double sets a double-precision column type.
func (c *ColumnBuilder) Double() *ColumnBuilder { c.typ = typeDouble; return c }

// String sets a varchar column type with the given size. Size 0 renders
// varchar(255).
func (c *ColumnBuilder) String(size int) *ColumnBuilder {
	c.typ, c.size = typeVarchar, size
	return c
}

// Text sets an unbounded text column type.
func (c *ColumnBuilder) Text() *ColumnBuilder { c.typ = typeText; return c }

// Time sets a timestamp column type.
func (c *ColumnBuilder) Time() *ColumnBuilder { c.typ = typeTime; return c }

// JSON sets a JSON column type: JSON on MySQL, JSONB on Postgres, and
// plain text on SQLite.
func (c *ColumnBuilder) JSON() *ColumnBuilder { c.typ = typeJSON; return c }

// Bytes sets a binary column type.
func (c *ColumnBuilder) Bytes() *ColumnBuilder { c.typ = typeBytes; return c }

// UUID sets a UUID column type, falling back to char(36) on MySQL.
func (c *ColumnBuilder) UUID() *ColumnBuilder { c.typ = typeUUID; return c }

// NotNull adds a NOT NULL constraint.
func (c *ColumnBuilder) NotNull() *ColumnBuilder { c.notNull = true; return c }

// Null marks the column explicitly nullable.
func (c *ColumnBuilder) Null() *ColumnBuilder { c.null = true; return c }

// PrimaryKey marks the column as the primary key.
func (c *ColumnBuilder) PrimaryKey() *ColumnBuilder { c.primary = true; return c }

// Unique adds a UNIQUE constraint.
func (c *ColumnBuilder) Unique() *ColumnBuilder { c.unique = true; return c }

// Increment makes the column auto-incrementing. The rendering is
// dialect-specific: AUTO_INCREMENT on MySQL, serial types on Postgres,
// and INTEGER PRIMARY KEY AUTOINCREMENT on SQLite.
func (c *ColumnBuilder) Increment() *ColumnBuilder { c.increment = true; return c }

// Default sets a default value, inlined as a literal. The value goes
// through ValueOf; unsupported types surface as a build error.
func (c *ColumnBuilder) Default(v any) *ColumnBuilder {
	val, err := ValueOf(v)
	if err != nil {
		c.err = fmt.Errorf("sql: column %q: %w", c.name, err)
		return c
	}
	c.def = &val
	return c
}

func (c *ColumnBuilder) render(b *Builder) {
	if c.err != nil {
		b.AddError(c.err)
		return
	}
	b.Ident(c.name)
	b.Pad().WriteString(c.typeString(b))
	if c.notNull {
		b.WriteString(" NOT NULL")
	} else if c.null {
		b.WriteString(" NULL")
	}
	// SQLite accepts AUTOINCREMENT only on INTEGER PRIMARY KEY, so an
	// incrementing column is promoted to the primary key there. Postgres
	// has no increment keyword at all; serial types cover it.
	if c.primary || (c.increment && b.bk.name == dialect.SQLite) {
		b.WriteString(" PRIMARY KEY")
	}
	if c.increment && b.bk.increment != "" {
		b.Pad().WriteString(b.bk.increment)
	}
	if c.unique {
		b.WriteString(" UNIQUE")
	}
	if c.def != nil {
		b.WriteString(" DEFAULT ")
		s, err := formatValue(b.bk, *c.def)
		if err != nil {
			b.AddError(err)
			return
		}
		b.WriteString(s)
	}
}

func (c *ColumnBuilder) typeString(b *Builder) string {
	if b.bk.serial && c.increment {
		if c.typ == typeBigInt {
			return "bigserial"
		}
		return "serial"
	}
	if b.bk.name == dialect.SQLite {
		switch c.typ {
		case typeBigInt, typeInt:
			return "integer"
		case typeTime:
			return "datetime"
		case typeBytes:
			return "blob"
		}
	}
	switch c.typ {
	case typeRaw:
		return c.raw
	case typeBool:
		if b.bk.name == dialect.Postgres {
			return "boolean"
		}
		return "bool"
	case typeInt:
		if b.bk.name == dialect.Postgres {
			return "integer"
		}
		return "int"
	case typeBigInt:
		return "bigint"
	case typeFloat:
		if b.bk.name == dialect.MySQL {
			return "float"
		}
		return "real"
	case typeDouble:
		return "double precision"
	case typeVarchar:
		size := c.size
		if size == 0 {
			size = 255
		}
		return "varchar(" + strconv.Itoa(size) + ")"
	case typeText:
		return "text"
	case typeTime:
		return "timestamp"
	case typeJSON:
		return b.bk.jsonType
	case typeBytes:
		if b.bk.name == dialect.Postgres {
			return "bytea"
		}
		return "blob"
	case typeUUID:
		if b.bk.name == dialect.MySQL {
			return "char(36)"
		}
		return "uuid"
	default:
		return c.raw
	}
}

// TableBuilder builds a CREATE TABLE statement.
type TableBuilder struct {
	dialect     string
	table       string
	ifNotExists bool
	columns     []*ColumnBuilder
	primary     []string
	fks         []*ForeignKeyBuilder
	options     string
}

// CreateTable returns a builder for a CREATE TABLE statement.
func CreateTable(table string) *TableBuilder {
	return &TableBuilder{table: table}
}

// SetDialect sets the dialect used by the Query convenience method.
func (t *TableBuilder) SetDialect(name string) *TableBuilder {
	t.dialect = name
	return t
}

// IfNotExists adds an IF NOT EXISTS clause.
func (t *TableBuilder) IfNotExists() *TableBuilder {
	t.ifNotExists = true
	return t
}

// Column appends a column definition.
func (t *TableBuilder) Column(c *ColumnBuilder) *TableBuilder {
	t.columns = append(t.columns, c)
	return t
}

// Columns appends column definitions.
func (t *TableBuilder) Columns(columns ...*ColumnBuilder) *TableBuilder {
	t.columns = append(t.columns, columns...)
	return t
}

// PrimaryKey sets a table-level composite primary key.
func (t *TableBuilder) PrimaryKey(columns ...string) *TableBuilder {
	t.primary = columns
	return t
}

// ForeignKeys appends inline foreign key constraints.
func (t *TableBuilder) ForeignKeys(fks ...*ForeignKeyBuilder) *TableBuilder {
	t.fks = append(t.fks, fks...)
	return t
}

// Options sets raw table options appended after the column list, such as
// a MySQL engine or charset clause.
func (t *TableBuilder) Options(opts string) *TableBuilder {
	t.options = opts
	return t
}

func (t *TableBuilder) render(b *Builder) {
	b.WriteString("CREATE TABLE ")
	if t.ifNotExists {
		b.WriteString("IF NOT EXISTS ")
	}
	b.Ident(t.table)
	if len(t.columns) == 0 {
		b.AddError(fmt.Errorf("sql: create table %q without columns", t.table))
		return
	}
	b.Pad().Nested(func(b *Builder) {
		for i, c := range t.columns {
			if i > 0 {
				b.Comma()
			}
			c.render(b)
		}
		if len(t.primary) > 0 {
			b.Comma().WriteString("PRIMARY KEY ")
			b.Nested(func(b *Builder) {
				b.IdentComma(t.primary...)
			})
		}
		for _, fk := range t.fks {
			b.Comma()
			fk.renderInline(b)
		}
	})
	if t.options != "" {
		b.Pad().WriteString(t.options)
	}
}

// Build renders the statement for the given dialect. CREATE TABLE never
// produces parameters, but keeps the common Build signature.
func (t *TableBuilder) Build(dialect string) (string, []Value, error) {
	return buildParams(t, dialect)
}

// BuildX is like Build, but panics on error.
func (t *TableBuilder) BuildX(dialect string) (string, []Value) {
	return buildX(t, dialect)
}

// BuildCollect is like Build, but streams parameters to collect.
func (t *TableBuilder) BuildCollect(dialect string, collect func(Value)) (string, error) {
	return buildCollect(t, dialect, collect)
}

// Query renders the statement using the dialect the builder was
// constructed with, panicking on misuse.
func (t *TableBuilder) Query() (string, []Value) {
	return t.BuildX(orDefault(t.dialect))
}

// DebugString renders the statement as plain SQL text.
func (t *TableBuilder) DebugString(dialect string) string {
	return debugString(t, dialect)
}

// TableAlter builds an ALTER TABLE statement.
type TableAlter struct {
	dialect string
	table   string
	clauses []func(*Builder)
}

// AlterTable returns a builder for an ALTER TABLE statement.
func AlterTable(table string) *TableAlter {
	return &TableAlter{table: table}
}

// SetDialect sets the dialect used by the Query convenience method.
func (t *TableAlter) SetDialect(name string) *TableAlter {
	t.dialect = name
	return t
}

// AddColumn appends an ADD COLUMN clause.
func (t *TableAlter) AddColumn(c *ColumnBuilder) *TableAlter {
	t.clauses = append(t.clauses, func(b *Builder) {
		b.WriteString("ADD COLUMN ")
		c.render(b)
	})
	return t
}

// ModifyColumn appends a clause changing an existing column definition.
// Postgres has no MODIFY COLUMN; the clause renders as ALTER COLUMN with
// a new type there.
func (t *TableAlter) ModifyColumn(c *ColumnBuilder) *TableAlter {
	t.clauses = append(t.clauses, func(b *Builder) {
		switch b.bk.name {
		case dialect.Postgres:
			b.WriteString("ALTER COLUMN ")
			b.Ident(c.name)
			b.WriteString(" TYPE ")
			b.WriteString(c.typeString(b))
		case dialect.SQLite:
			b.AddError(&UnsupportedOperationError{Dialect: b.bk.name, Op: "MODIFY COLUMN"})
		default:
			b.WriteString("MODIFY COLUMN ")
			c.render(b)
		}
	})
	return t
}

// DropColumn appends a DROP COLUMN clause.
func (t *TableAlter) DropColumn(name string) *TableAlter {
	t.clauses = append(t.clauses, func(b *Builder) {
		b.WriteString("DROP COLUMN ")
		b.Ident(name)
	})
	return t
}

// RenameColumn appends a RENAME COLUMN clause.
func (t *TableAlter) RenameColumn(old, new string) *TableAlter {
	t.clauses = append(t.clauses, func(b *Builder) {
		b.WriteString("RENAME COLUMN ")
		b.Ident(old)
		b.WriteString(" TO ")
		b.Ident(new)
	})
	return t
}

// AddForeignKey appends an ADD CONSTRAINT ... FOREIGN KEY clause.
func (t *TableAlter) AddForeignKey(fk *ForeignKeyBuilder) *TableAlter {
	t.clauses = append(t.clauses, func(b *Builder) {
		b.WriteString("ADD CONSTRAINT ")
		b.Ident(fk.symbol)
		b.WriteString(" FOREIGN KEY ")
		if b.bk.name == dialect.MySQL {
			// MySQL names the key itself in addition to the constraint.
			b.Ident(fk.symbol)
			b.Pad()
		}
		fk.renderRef(b)
	})
	return t
}

// DropForeignKey appends a clause removing the named foreign key:
// DROP FOREIGN KEY on MySQL, DROP CONSTRAINT on Postgres. SQLite cannot
// drop a foreign key from an existing table and reports an
// unsupported-operation error instead of emitting foreign syntax.
func (t *TableAlter) DropForeignKey(symbol string) *TableAlter {
	t.clauses = append(t.clauses, func(b *Builder) {
		if b.bk.dropFK == "" {
			b.AddError(&UnsupportedOperationError{Dialect: b.bk.name, Op: "DROP FOREIGN KEY"})
			return
		}
		b.WriteString("DROP ")
		b.WriteString(b.bk.dropFK)
		b.Pad()
		b.Ident(symbol)
	})
	return t
}

func (t *TableAlter) render(b *Builder) {
	b.WriteString("ALTER TABLE ")
	b.Ident(t.table)
	b.Pad()
	if len(t.clauses) == 0 {
		b.AddError(fmt.Errorf("sql: alter table %q without clauses", t.table))
		return
	}
	for i, c := range t.clauses {
		if i > 0 {
			b.Comma()
		}
		c(b)
	}
}

// Build renders the statement for the given dialect.
func (t *TableAlter) Build(dialect string) (string, []Value, error) {
	return buildParams(t, dialect)
}

// BuildX is like Build, but panics on error.
func (t *TableAlter) BuildX(dialect string) (string, []Value) {
	return buildX(t, dialect)
}

// BuildCollect is like Build, but streams parameters to collect.
func (t *TableAlter) BuildCollect(dialect string, collect func(Value)) (string, error) {
	return buildCollect(t, dialect, collect)
}

// Query renders the statement using the dialect the builder was
// constructed with, panicking on misuse.
func (t *TableAlter) Query() (string, []Value) {
	return t.BuildX(orDefault(t.dialect))
}

// DebugString renders the statement as plain SQL text.
func (t *TableAlter) DebugString(dialect string) string {
	return debugString(t, dialect)
}

// DropTableBuilder builds a DROP TABLE statement.
type DropTableBuilder struct {
	dialect  string
	table    string
	ifExists bool
}

// DropTable returns a builder for a DROP TABLE statement.
func DropTable(table string) *DropTableBuilder {
	return &DropTableBuilder{table: table}
}

// SetDialect sets the dialect used by the Query convenience method.
func (d *DropTableBuilder) SetDialect(name string) *DropTableBuilder {
	d.dialect = name
	return d
}

// IfExists adds an IF EXISTS clause.
func (d *DropTableBuilder) IfExists() *DropTableBuilder {
	d.ifExists = true
	return d
}

func (d *DropTableBuilder) render(b *Builder) {
	b.WriteString("DROP TABLE ")
	if d.ifExists {
		b.WriteString("IF EXISTS ")
	}
	b.Ident(d.table)
}

// Build renders the statement for the given dialect.
func (d *DropTableBuilder) Build(dialect string) (string, []Value, error) {
	return buildParams(d, dialect)
}

// BuildX is like Build, but panics on error.
func (d *DropTableBuilder) BuildX(dialect string) (string, []Value) {
	return buildX(d, dialect)
}

// BuildCollect is like Build, but streams parameters to collect.
func (d *DropTableBuilder) BuildCollect(dialect string, collect func(Value)) (string, error) {
	return buildCollect(d, dialect, collect)
}

// Query renders the statement using the dialect the builder was
// constructed with, panicking on misuse.
func (d *DropTableBuilder) Query() (string, []Value) {
	return d.BuildX(orDefault(d.dialect))
}

// DebugString renders the statement as plain SQL text.
func (d *DropTableBuilder) DebugString(dialect string) string {
	return debugString(d, dialect)
}

// IndexBuilder builds a CREATE INDEX statement.
type IndexBuilder struct {
	dialect     string
	name        string
	unique      bool
	ifNotExists bool
	table       string
	columns     []string
}

// CreateIndex returns a builder for a CREATE INDEX statement with the
// given index name.
func CreateIndex(name string) *IndexBuilder {
	return &IndexBuilder{name: name}
}

// SetDialect sets the dialect used by the Query convenience method.
func (i *IndexBuilder) SetDialect(name string) *IndexBuilder {
	i.dialect = name
	return i
}

// Unique makes it a UNIQUE index.
func (i *IndexBuilder) Unique() *IndexBuilder {
	i.unique = true
	return i
}

// IfNotExists adds an IF NOT EXISTS clause. MySQL has no such clause for
// indexes and renders without it.
func (i *IndexBuilder) IfNotExists() *IndexBuilder {
	i.ifNotExists = true
	return i
}

// Table sets the indexed table.
func (i *IndexBuilder) Table(table string) *IndexBuilder {
	i.table = table
	return i
}

// Column appends an indexed column.
func (i *IndexBuilder) Column(column string) *IndexBuilder {
	i.columns = append(i.columns, column)
	return i
}

// Columns appends indexed columns.
func (i *IndexBuilder) Columns(columns ...string) *IndexBuilder {
	i.columns = append(i.columns, columns...)
	return i
}

func (i *IndexBuilder) render(b *Builder) {
	b.WriteString("CREATE ")
	if i.unique {
		b.WriteString("UNIQUE ")
	}
	b.WriteString("INDEX ")
	if i.ifNotExists && b.bk.name != dialect.MySQL {
		b.WriteString("IF NOT EXISTS ")
	}
	b.Ident(i.name)
	b.WriteString(" ON ")
	b.Ident(i.table)
	if len(i.columns) == 0 {
		b.AddError(fmt.Errorf("sql: create index %q without columns", i.name))
		return
	}
	b.Pad().Nested(func(b *Builder) {
		b.IdentComma(i.columns...)
	})
}

// Build renders the statement for the given dialect.
func (i *IndexBuilder) Build(dialect string) (string, []Value, error) {
	return buildParams(i, dialect)
}

// BuildX is like Build, but panics on error.
func (i *IndexBuilder) BuildX(dialect string) (string, []Value) {
	return buildX(i, dialect)
}

// BuildCollect is like Build, but streams parameters to collect.
func (i *IndexBuilder) BuildCollect(dialect string, collect func(Value)) (string, error) {
	return buildCollect(i, dialect, collect)
}

// Query renders the statement using the dialect the builder was
// constructed with, panicking on misuse.
func (i *IndexBuilder) Query() (string, []Value) {
	return i.BuildX(orDefault(i.dialect))
}

// DebugString renders the statement as plain SQL text.
func (i *IndexBuilder) DebugString(dialect string) string {
	return debugString(i, dialect)
}

// DropIndexBuilder builds a DROP INDEX statement.
type DropIndexBuilder struct {
	dialect string
	name    string
	table   string
}

// DropIndex returns a builder for a DROP INDEX statement.
func DropIndex(name string) *DropIndexBuilder {
	return &DropIndexBuilder{name: name}
}

// SetDialect sets the dialect used by the Query convenience method.
func (d *DropIndexBuilder) SetDialect(name string) *DropIndexBuilder {
	d.dialect = name
	return d
}

// Table sets the indexed table. MySQL requires it; the other dialects
// address indexes by name alone and omit the clause.
func (d *DropIndexBuilder) Table(table string) *DropIndexBuilder {
	d.table = table
	return d
}

func (d *DropIndexBuilder) render(b *Builder) {
	b.WriteString("DROP INDEX ")
	b.Ident(d.name)
	if b.bk.name == dialect.MySQL {
		if d.table == "" {
			b.AddError(fmt.Errorf("sql: drop index %q: mysql requires a table", d.name))
			return
		}
		b.WriteString(" ON ")
		b.Ident(d.table)
	}
}

// Build renders the statement for the given dialect.
func (d *DropIndexBuilder) Build(dialect string) (string, []Value, error) {
	return buildParams(d, dialect)
}

// BuildX is like Build, but panics on error.
func (d *DropIndexBuilder) BuildX(dialect string) (string, []Value) {
	return buildX(d, dialect)
}

// BuildCollect is like Build, but streams parameters to collect.
func (d *DropIndexBuilder) BuildCollect(dialect string, collect func(Value)) (string, error) {
	return buildCollect(d, dialect, collect)
}

// Query renders the statement using the dialect the builder was
// constructed with, panicking on misuse.
func (d *DropIndexBuilder) Query() (string, []Value) {
	return d.BuildX(orDefault(d.dialect))
}

// DebugString renders the statement as plain SQL text.
func (d *DropIndexBuilder) DebugString(dialect string) string {
	return debugString(d, dialect)
}

// ForeignKeyBuilder describes a foreign key constraint, used inline in
// CREATE TABLE or through TableAlter.AddForeignKey.
type ForeignKeyBuilder struct {
	symbol   string
	columns  []string
	ref      *ReferenceBuilder
	onDelete ReferenceAction
	onUpdate ReferenceAction
}

// ForeignKey returns a foreign key builder, optionally named.
func ForeignKey(symbol ...string) *ForeignKeyBuilder {
	fk := &ForeignKeyBuilder{}
	if len(symbol) > 0 {
		fk.symbol = symbol[0]
	}
	return fk
}

// Symbol sets the constraint name.
func (fk *ForeignKeyBuilder) Symbol(s string) *ForeignKeyBuilder {
	fk.symbol = s
	return fk
}

// Columns sets the referencing columns.
func (fk *ForeignKeyBuilder) Columns(columns ...string) *ForeignKeyBuilder {
	fk.columns = append(fk.columns, columns...)
	return fk
}

// Reference sets the referenced table and columns.
func (fk *ForeignKeyBuilder) Reference(r *ReferenceBuilder) *ForeignKeyBuilder {
	fk.ref = r
	return fk
}

// OnDelete sets the ON DELETE action.
func (fk *ForeignKeyBuilder) OnDelete(a ReferenceAction) *ForeignKeyBuilder {
	fk.onDelete = a
	return fk
}

// OnUpdate sets the ON UPDATE action.
func (fk *ForeignKeyBuilder) OnUpdate(a ReferenceAction) *ForeignKeyBuilder {
	fk.onUpdate = a
	return fk
}

// renderInline renders a CONSTRAINT ... FOREIGN KEY column entry.
func (fk *ForeignKeyBuilder) renderInline(b *Builder) {
	if fk.symbol != "" {
		b.WriteString("CONSTRAINT ")
		b.Ident(fk.symbol)
		b.Pad()
	}
	b.WriteString("FOREIGN KEY ")
	fk.renderRef(b)
}

// renderRef renders the (columns) REFERENCES table (columns) tail shared
// by the inline and the ALTER TABLE forms.
func (fk *ForeignKeyBuilder) renderRef(b *Builder) {
	b.Nested(func(b *Builder) {
		b.IdentComma(fk.columns...)
	})
	if fk.ref == nil {
		b.AddError(fmt.Errorf("sql: foreign key %q without reference", fk.symbol))
		return
	}
	b.WriteString(" REFERENCES ")
	b.Ident(fk.ref.table)
	b.Pad().Nested(func(b *Builder) {
		b.IdentComma(fk.ref.columns...)
	})
	if fk.onDelete != "" {
		b.WriteString(" ON DELETE ")
		b.WriteString(string(fk.onDelete))
	}
	if fk.onUpdate != "" {
		b.WriteString(" ON UPDATE ")
		b.WriteString(string(fk.onUpdate))
	}
}

// ReferenceBuilder is the referenced side of a foreign key.
type ReferenceBuilder struct {
	table   string
	columns []string
}

// Reference returns a reference builder.
func Reference() *ReferenceBuilder {
	return &ReferenceBuilder{}
}

// Table sets the referenced table.
func (r *ReferenceBuilder) Table(table string) *ReferenceBuilder {
	r.table = table
	return r
}

// Columns sets the referenced columns.
func (r *ReferenceBuilder) Columns(columns ...string) *ReferenceBuilder {
	r.columns = append(r.columns, columns...)
	return r
}
