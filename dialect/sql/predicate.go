package sql

// PredicateFunc constrains the predicate types the generic fields below
// produce. Any named type based on func(*Selector) qualifies, so a
// schema package can declare its own predicate type and still share the
// field implementations.
type PredicateFunc interface {
	~func(*Selector)
}

// StringField is a typed string column marker. Declared once per column,
// it yields selector predicates without per-column boilerplate:
//
//	var Email = sql.StringField[UserPredicate]("email")
//	q.Where(...) // Email.Contains("@example.org") applied to the selector
type StringField[P PredicateFunc] string

// Name returns the column name.
func (f StringField[P]) Name() string { return string(f) }

// EQ matches rows where the field equals v.
func (f StringField[P]) EQ(v string) P {
	return P(FieldEQ(string(f), v))
}

// NEQ matches rows where the field differs from v.
func (f StringField[P]) NEQ(v string) P {
	return P(FieldNEQ(string(f), v))
}

// In matches rows where the field is one of vs.
func (f StringField[P]) In(vs ...string) P {
	return P(FieldIn(string(f), vs...))
}

// NotIn matches rows where the field is none of vs.
func (f StringField[P]) NotIn(vs ...string) P {
	return P(FieldNotIn(string(f), vs...))
}

// GT matches rows where the field sorts after v.
func (f StringField[P]) GT(v string) P {
	return P(FieldGT(string(f), v))
}

// GTE matches rows where the field sorts at or after v.
func (f StringField[P]) GTE(v string) P {
	return P(FieldGTE(string(f), v))
}

// LT matches rows where the field sorts before v.
func (f StringField[P]) LT(v string) P {
	return P(FieldLT(string(f), v))
}

// LTE matches rows where the field sorts at or before v.
func (f StringField[P]) LTE(v string) P {
	return P(FieldLTE(string(f), v))
}

// Contains matches rows where the field contains the substring.
func (f StringField[P]) Contains(v string) P {
	return P(FieldContains(string(f), v))
}

// ContainsFold is like Contains, but case-insensitive.
func (f StringField[P]) ContainsFold(v string) P {
	return P(FieldContainsFold(string(f), v))
}

// HasPrefix matches rows where the field starts with v.
func (f StringField[P]) HasPrefix(v string) P {
	return P(FieldHasPrefix(string(f), v))
}

// HasSuffix matches rows where the field ends with v.
func (f StringField[P]) HasSuffix(v string) P {
	return P(FieldHasSuffix(string(f), v))
}

// EqualFold matches rows where the field equals v case-insensitively.
func (f StringField[P]) EqualFold(v string) P {
	return P(FieldEqualFold(string(f), v))
}

// IsNull matches rows where the field is NULL.
func (f StringField[P]) IsNull() P {
	return P(FieldIsNull(string(f)))
}

// NotNull matches rows where the field is not NULL.
func (f StringField[P]) NotNull() P {
	return P(FieldNotNull(string(f)))
}

// IntField is a typed integer column marker.
type IntField[P PredicateFunc] string

// Name returns the column name.
func (f IntField[P]) Name() string { return string(f) }

// EQ matches rows where the field equals v.
func (f IntField[P]) EQ(v int) P {
	return P(FieldEQ(string(f), v))
}

// NEQ matches rows where the field differs from v.
func (f IntField[P]) NEQ(v int) P {
	return P(FieldNEQ(string(f), v))
}

// In matches rows where the field is one of vs.
func (f IntField[P]) In(vs ...int) P {
	return P(FieldIn(string(f), vs...))
}

// NotIn matches rows where the field is none of vs.
func (f IntField[P]) NotIn(vs ...int) P {
	return P(FieldNotIn(string(f), vs...))
}

// GT matches rows where the field is greater than v.
func (f IntField[P]) GT(v int) P {
	return P(FieldGT(string(f), v))
}

// GTE matches rows where the field is greater than or equal to v.
func (f IntField[P]) GTE(v int) P {
	return P(FieldGTE(string(f), v))
}

// LT matches rows where the field is less than v.
func (f IntField[P]) LT(v int) P {
	return P(FieldLT(string(f), v))
}

// LTE matches rows where the field is less than or equal to v.
func (f IntField[P]) LTE(v int) P {
	return P(FieldLTE(string(f), v))
}

// IsNull matches rows where the field is NULL.
func (f IntField[P]) IsNull() P {
	return P(FieldIsNull(string(f)))
}

// NotNull matches rows where the field is not NULL.
func (f IntField[P]) NotNull() P {
	return P(FieldNotNull(string(f)))
}

// Int64Field is a typed 64-bit integer column marker.
type Int64Field[P PredicateFunc] string

// Name returns the column name.
func (f Int64Field[P]) Name() string { return string(f) }

// EQ matches rows where the field equals v.
func (f Int64Field[P]) EQ(v int64) P {
	return P(FieldEQ(string(f), v))
}

// NEQ matches rows where the field differs from v.
func (f Int64Field[P]) NEQ(v int64) P {
	return P(FieldNEQ(string(f), v))
}

// In matches rows where the field is one of vs.
func (f Int64Field[P]) In(vs ...int64) P {
	return P(FieldIn(string(f), vs...))
}

// NotIn matches rows where the field is none of vs.
func (f Int64Field[P]) NotIn(vs ...int64) P {
	return P(FieldNotIn(string(f), vs...))
}

// GT matches rows where the field is greater than v.
func (f Int64Field[P]) GT(v int64) P {
	return P(FieldGT(string(f), v))
}

// GTE matches rows where the field is greater than or equal to v.
func (f Int64Field[P]) GTE(v int64) P {
	return P(FieldGTE(string(f), v))
}

// LT matches rows where the field is less than v.
func (f Int64Field[P]) LT(v int64) P {
	return P(FieldLT(string(f), v))
}

// LTE matches rows where the field is less than or equal to v.
func (f Int64Field[P]) LTE(v int64) P {
	return P(FieldLTE(string(f), v))
}

// IsNull matches rows where the field is NULL.
func (f Int64Field[P]) IsNull() P {
	return P(FieldIsNull(string(f)))
}

// NotNull matches rows where the field is not NULL.
func (f Int64Field[P]) NotNull() P {
	return P(FieldNotNull(string(f)))
}

// Float64Field is a typed double-precision column marker.
type Float64Field[P PredicateFunc] string

// Name returns the column name.
func (f Float64Field[P]) Name() string { return string(f) }

// EQ matches rows where the field equals v.
func (f Float64Field[P]) EQ(v float64) P {
	return P(FieldEQ(string(f), v))
}

// NEQ matches rows where the field differs from v.
func (f Float64Field[P]) NEQ(v float64) P {
	return P(FieldNEQ(string(f), v))
}

// In matches rows where the field is one of vs.
func (f Float64Field[P]) In(vs ...float64) P {
	return P(FieldIn(string(f), vs...))
}

// NotIn matches rows where the field is none of vs.
func (f Float64Field[P]) NotIn(vs ...float64) P {
	return P(FieldNotIn(string(f), vs...))
}

// GT matches rows where the field is greater than v.
func (f Float64Field[P]) GT(v float64) P {
	return P(FieldGT(string(f), v))
}

// GTE matches rows where the field is greater than or equal to v.
func (f Float64Field[P]) GTE(v float64) P {
	return P(FieldGTE(string(f), v))
}

// LT matches rows where the field is less than v.
func (f Float64Field[P]) LT(v float64) P {
	return P(FieldLT(string(f), v))
}

// LTE matches rows where the field is less than or equal to v.
func (f Float64Field[P]) LTE(v float64) P {
	return P(FieldLTE(string(f), v))
}

// IsNull matches rows where the field is NULL.
func (f Float64Field[P]) IsNull() P {
	return P(FieldIsNull(string(f)))
}

// NotNull matches rows where the field is not NULL.
func (f Float64Field[P]) NotNull() P {
	return P(FieldNotNull(string(f)))
}

// BoolField is a typed boolean column marker.
type BoolField[P PredicateFunc] string

// Name returns the column name.
func (f BoolField[P]) Name() string { return string(f) }

// EQ matches rows where the field equals v.
func (f BoolField[P]) EQ(v bool) P {
	return P(FieldEQ(string(f), v))
}

// NEQ matches rows where the field differs from v.
func (f BoolField[P]) NEQ(v bool) P {
	return P(FieldNEQ(string(f), v))
}

// IsNull matches rows where the field is NULL.
func (f BoolField[P]) IsNull() P {
	return P(FieldIsNull(string(f)))
}

// NotNull matches rows where the field is not NULL.
func (f BoolField[P]) NotNull() P {
	return P(FieldNotNull(string(f)))
}

// TimeField is a typed time column marker. T is the concrete time type,
// usually time.Time.
type TimeField[P PredicateFunc, T any] string

// Name returns the column name.
func (f TimeField[P, T]) Name() string { return string(f) }

// EQ matches rows where the field equals v.
func (f TimeField[P, T]) EQ(v T) P {
	return P(FieldEQ(string(f), v))
}

// NEQ matches rows where the field differs from v.
func (f TimeField[P, T]) NEQ(v T) P {
	return P(FieldNEQ(string(f), v))
}

// In matches rows where the field is one of vs.
func (f TimeField[P, T]) In(vs ...T) P {
	return P(FieldIn(string(f), vs...))
}

// NotIn matches rows where the field is none of vs.
func (f TimeField[P, T]) NotIn(vs ...T) P {
	return P(FieldNotIn(string(f), vs...))
}

// GT matches rows where the field is after v.
func (f TimeField[P, T]) GT(v T) P {
	return P(FieldGT(string(f), v))
}

// GTE matches rows where the field is at or after v.
func (f TimeField[P, T]) GTE(v T) P {
	return P(FieldGTE(string(f), v))
}

// LT matches rows where the field is before v.
func (f TimeField[P, T]) LT(v T) P {
	return P(FieldLT(string(f), v))
}

// LTE matches rows where the field is at or before v.
func (f TimeField[P, T]) LTE(v T) P {
	return P(FieldLTE(string(f), v))
}

// IsNull matches rows where the field is NULL.
func (f TimeField[P, T]) IsNull() P {
	return P(FieldIsNull(string(f)))
}

// NotNull matches rows where the field is not NULL.
func (f TimeField[P, T]) NotNull() P {
	return P(FieldNotNull(string(f)))
}

// UUIDField is a typed UUID column marker. T is the concrete UUID type,
// usually uuid.UUID.
type UUIDField[P PredicateFunc, T any] string

// Name returns the column name.
func (f UUIDField[P, T]) Name() string { return string(f) }

// EQ matches rows where the field equals v.
func (f UUIDField[P, T]) EQ(v T) P {
	return P(FieldEQ(string(f), v))
}

// NEQ matches rows where the field differs from v.
func (f UUIDField[P, T]) NEQ(v T) P {
	return P(FieldNEQ(string(f), v))
}

// In matches rows where the field is one of vs.
func (f UUIDField[P, T]) In(vs ...T) P {
	return P(FieldIn(string(f), vs...))
}

// NotIn matches rows where the field is none of vs.
func (f UUIDField[P, T]) NotIn(vs ...T) P {
	return P(FieldNotIn(string(f), vs...))
}

// IsNull matches rows where the field is NULL.
func (f UUIDField[P, T]) IsNull() P {
	return P(FieldIsNull(string(f)))
}

// NotNull matches rows where the field is not NULL.
func (f UUIDField[P, T]) NotNull() P {
	return P(FieldNotNull(string(f)))
}
