package sql

import "strings"

// Predicate is a where-clause predicate built from composable render
// functions over a Builder. Predicates are dialect-agnostic; quoting and
// placeholders are resolved by the render pass.
type Predicate struct {
	fns []func(*Builder)
}

// P creates a new predicate from raw render functions. It is the escape
// hatch for expressions the combinators below do not cover:
//
//	sql.P(func(b *sql.Builder) {
//	    b.WriteString("EXTRACT(YEAR FROM ").Ident("created_at").WriteString(") = ").Arg(2016)
//	})
func P(fns ...func(*Builder)) *Predicate {
	return &Predicate{fns: fns}
}

// Append appends a render function to the predicate.
func (p *Predicate) Append(f func(*Builder)) *Predicate {
	p.fns = append(p.fns, f)
	return p
}

func (p *Predicate) writeExpr(b *Builder) {
	for _, f := range p.fns {
		f(b)
	}
}

// writeValue renders the value side of a comparison: sub-selects render
// parenthesized, expression nodes render themselves, Iden markers render
// as identifiers, and everything else is collected as a parameter.
func (b *Builder) writeValue(v any) {
	switch v := v.(type) {
	case *Selector:
		b.Nested(v.render)
	case expr:
		v.writeExpr(b)
	case Iden:
		b.Ident(v.Name())
	default:
		b.Arg(v)
	}
}

// binary renders "col op arg". The left side follows writeOperand
// semantics, so aggregate calls compare as naturally as plain columns,
// e.g. in HAVING clauses.
func binary(col any, op string, arg any) *Predicate {
	return P(func(b *Builder) {
		b.writeOperand(col)
		b.WriteString(" " + op + " ")
		b.writeValue(arg)
	})
}

// EQ returns a "=" predicate.
func EQ(col, arg any) *Predicate { return binary(col, "=", arg) }

// NEQ returns a "<>" predicate.
func NEQ(col, arg any) *Predicate { return binary(col, "<>", arg) }

// GT returns a ">" predicate.
func GT(col, arg any) *Predicate { return binary(col, ">", arg) }

// GTE returns a ">=" predicate.
func GTE(col, arg any) *Predicate { return binary(col, ">=", arg) }

// LT returns a "<" predicate.
func LT(col, arg any) *Predicate { return binary(col, "<", arg) }

// LTE returns a "<=" predicate.
func LTE(col, arg any) *Predicate { return binary(col, "<=", arg) }

// ColumnsEQ returns a column-to-column "=" predicate, as used in join
// conditions.
func ColumnsEQ(col1, col2 string) *Predicate {
	return P(func(b *Builder) {
		b.Ident(col1).WriteString(" = ").Ident(col2)
	})
}

// compose joins the given predicates with op inside grouping
// parentheses. Nested expressions are always parenthesized, so rendered
// precedence never depends on the dialect.
func compose(op string, preds []*Predicate) *Predicate {
	if len(preds) == 1 {
		return preds[0]
	}
	return P(func(b *Builder) {
		b.Nested(func(b *Builder) {
			for i, p := range preds {
				if i > 0 {
					b.WriteString(" " + op + " ")
				}
				p.writeExpr(b)
			}
		})
	})
}

// And combines the predicates with AND.
func And(preds ...*Predicate) *Predicate { return compose("AND", preds) }

// Or combines the predicates with OR.
func Or(preds ...*Predicate) *Predicate { return compose("OR", preds) }

// Not negates the predicate.
func Not(pred *Predicate) *Predicate {
	return P(func(b *Builder) {
		b.WriteString("NOT ")
		b.Nested(pred.writeExpr)
	})
}

// In returns an IN predicate. A single *Selector argument renders as a
// sub-select; an empty argument list renders as FALSE, matching the
// empty-set semantics of IN.
func In(col string, args ...any) *Predicate {
	return P(func(b *Builder) {
		if len(args) == 0 {
			b.WriteString("FALSE")
			return
		}
		b.Ident(col).WriteString(" IN ")
		if s, ok := args[0].(*Selector); ok && len(args) == 1 {
			b.Nested(s.render)
			return
		}
		b.Nested(func(b *Builder) {
			b.Args(args...)
		})
	})
}

// NotIn returns a NOT IN predicate. An empty argument list renders as
// TRUE.
func NotIn(col string, args ...any) *Predicate {
	return P(func(b *Builder) {
		if len(args) == 0 {
			b.WriteString("TRUE")
			return
		}
		b.Ident(col).WriteString(" NOT IN ")
		if s, ok := args[0].(*Selector); ok && len(args) == 1 {
			b.Nested(s.render)
			return
		}
		b.Nested(func(b *Builder) {
			b.Args(args...)
		})
	})
}

// Like returns a LIKE predicate.
func Like(col, pattern string) *Predicate {
	return P(func(b *Builder) {
		b.Ident(col).WriteString(" LIKE ")
		b.Arg(pattern)
	})
}

// NotLike returns a NOT LIKE predicate.
func NotLike(col, pattern string) *Predicate {
	return P(func(b *Builder) {
		b.Ident(col).WriteString(" NOT LIKE ")
		b.Arg(pattern)
	})
}

// escapeLike escapes the LIKE wildcard characters in a substring match.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	return strings.ReplaceAll(s, "_", `\_`)
}

// HasPrefix returns a prefix-match LIKE predicate.
func HasPrefix(col, prefix string) *Predicate {
	return Like(col, escapeLike(prefix)+"%")
}

// HasSuffix returns a suffix-match LIKE predicate.
func HasSuffix(col, suffix string) *Predicate {
	return Like(col, "%"+escapeLike(suffix))
}

// Contains returns a substring-match LIKE predicate.
func Contains(col, sub string) *Predicate {
	return Like(col, "%"+escapeLike(sub)+"%")
}

// ContainsFold is a case-insensitive Contains.
func ContainsFold(col, sub string) *Predicate {
	return P(func(b *Builder) {
		Lower(col).writeExpr(b)
		b.WriteString(" LIKE ")
		b.Arg("%" + strings.ToLower(escapeLike(sub)) + "%")
	})
}

// EqualFold is a case-insensitive EQ.
func EqualFold(col, s string) *Predicate {
	return P(func(b *Builder) {
		Lower(col).writeExpr(b)
		b.WriteString(" = ")
		b.Arg(strings.ToLower(s))
	})
}

// Between returns a BETWEEN predicate over the inclusive range [lo, hi].
func Between(col string, lo, hi any) *Predicate {
	return P(func(b *Builder) {
		b.Ident(col).WriteString(" BETWEEN ")
		b.writeValue(lo)
		b.WriteString(" AND ")
		b.writeValue(hi)
	})
}

// NotBetween returns a NOT BETWEEN predicate.
func NotBetween(col string, lo, hi any) *Predicate {
	return P(func(b *Builder) {
		b.Ident(col).WriteString(" NOT BETWEEN ")
		b.writeValue(lo)
		b.WriteString(" AND ")
		b.writeValue(hi)
	})
}

// IsNull returns an IS NULL predicate.
func IsNull(col string) *Predicate {
	return P(func(b *Builder) {
		b.Ident(col).WriteString(" IS NULL")
	})
}

// NotNull returns an IS NOT NULL predicate.
func NotNull(col string) *Predicate {
	return P(func(b *Builder) {
		b.Ident(col).WriteString(" IS NOT NULL")
	})
}

// Func is a scalar or aggregate function call. Arguments render
// left-to-right in declaration order: strings and Iden markers as
// identifiers, nested functions and sub-selects as expressions, and
// anything else as collected parameters.
type Func struct {
	name string
	args []any
}

// Fn returns an arbitrary function call expression.
func Fn(name string, args ...any) Func {
	return Func{name: name, args: args}
}

// Count returns a COUNT aggregate call.
func Count(arg any) Func { return Fn("COUNT", arg) }

// Sum returns a SUM aggregate call.
func Sum(arg any) Func { return Fn("SUM", arg) }

// Avg returns an AVG aggregate call.
func Avg(arg any) Func { return Fn("AVG", arg) }

// Min returns a MIN aggregate call.
func Min(arg any) Func { return Fn("MIN", arg) }

// Max returns a MAX aggregate call.
func Max(arg any) Func { return Fn("MAX", arg) }

// Lower returns a LOWER function call.
func Lower(arg any) Func { return Fn("LOWER", arg) }

// Upper returns an UPPER function call.
func Upper(arg any) Func { return Fn("UPPER", arg) }

func (f Func) writeExpr(b *Builder) {
	b.WriteString(f.name)
	b.Nested(func(b *Builder) {
		for i, a := range f.args {
			if i > 0 {
				b.Comma()
			}
			b.writeOperand(a)
		}
	})
}

// CaseExpr is a CASE WHEN ... THEN ... ELSE ... END expression.
type CaseExpr struct {
	whens []caseWhen
	els   any
	has   bool
}

type caseWhen struct {
	cond *Predicate
	then any
}

// Case returns a new CASE expression builder.
func Case() *CaseExpr {
	return &CaseExpr{}
}

// When appends a WHEN cond THEN value branch. The value follows
// writeValue semantics: literals are collected, Iden markers reference
// columns.
func (c *CaseExpr) When(cond *Predicate, value any) *CaseExpr {
	c.whens = append(c.whens, caseWhen{cond: cond, then: value})
	return c
}

// Else sets the ELSE value.
func (c *CaseExpr) Else(value any) *CaseExpr {
	c.els = value
	c.has = true
	return c
}

func (c *CaseExpr) writeExpr(b *Builder) {
	b.WriteString("CASE")
	for _, w := range c.whens {
		b.WriteString(" WHEN ")
		w.cond.writeExpr(b)
		b.WriteString(" THEN ")
		b.writeValue(w.then)
	}
	if c.has {
		b.WriteString(" ELSE ")
		b.writeValue(c.els)
	}
	b.WriteString(" END")
}
