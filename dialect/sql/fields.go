package sql

// The Field helpers return selector-level predicates: closures that
// qualify the column with the selector's FROM alias and append to its
// WHERE clause. They are the glue between typed field markers and the
// expression tree.

// FieldEQ returns a predicate matching rows where the field equals v.
func FieldEQ(name string, v any) func(*Selector) {
	return func(s *Selector) {
		s.Where(EQ(s.C(name), v))
	}
}

// FieldNEQ returns a predicate matching rows where the field differs from v.
func FieldNEQ(name string, v any) func(*Selector) {
	return func(s *Selector) {
		s.Where(NEQ(s.C(name), v))
	}
}

// FieldGT returns a predicate matching rows where the field is greater than v.
func FieldGT(name string, v any) func(*Selector) {
	return func(s *Selector) {
		s.Where(GT(s.C(name), v))
	}
}

// FieldGTE returns a predicate matching rows where the field is greater
// than or equal to v.
func FieldGTE(name string, v any) func(*Selector) {
	return func(s *Selector) {
		s.Where(GTE(s.C(name), v))
	}
}

// FieldLT returns a predicate matching rows where the field is less than v.
func FieldLT(name string, v any) func(*Selector) {
	return func(s *Selector) {
		s.Where(LT(s.C(name), v))
	}
}

// FieldLTE returns a predicate matching rows where the field is less
// than or equal to v.
func FieldLTE(name string, v any) func(*Selector) {
	return func(s *Selector) {
		s.Where(LTE(s.C(name), v))
	}
}

// FieldIn returns a predicate matching rows where the field is one of vs.
func FieldIn[T any](name string, vs ...T) func(*Selector) {
	return func(s *Selector) {
		v := make([]any, len(vs))
		for i := range vs {
			v[i] = vs[i]
		}
		s.Where(In(s.C(name), v...))
	}
}

// FieldNotIn returns a predicate matching rows where the field is none of vs.
func FieldNotIn[T any](name string, vs ...T) func(*Selector) {
	return func(s *Selector) {
		v := make([]any, len(vs))
		for i := range vs {
			v[i] = vs[i]
		}
		s.Where(NotIn(s.C(name), v...))
	}
}

// FieldContains returns a predicate matching rows where the field
// contains the substring.
func FieldContains(name, substr string) func(*Selector) {
	return func(s *Selector) {
		s.Where(Contains(s.C(name), substr))
	}
}

// FieldContainsFold is like FieldContains, but case-insensitive.
func FieldContainsFold(name, substr string) func(*Selector) {
	return func(s *Selector) {
		s.Where(ContainsFold(s.C(name), substr))
	}
}

// FieldHasPrefix returns a predicate matching rows where the field
// starts with the prefix.
func FieldHasPrefix(name, prefix string) func(*Selector) {
	return func(s *Selector) {
		s.Where(HasPrefix(s.C(name), prefix))
	}
}

// FieldHasSuffix returns a predicate matching rows where the field ends
// with the suffix.
func FieldHasSuffix(name, suffix string) func(*Selector) {
	return func(s *Selector) {
		s.Where(HasSuffix(s.C(name), suffix))
	}
}

// FieldEqualFold returns a predicate matching rows where the field
// equals v case-insensitively.
func FieldEqualFold(name, v string) func(*Selector) {
	return func(s *Selector) {
		s.Where(EqualFold(s.C(name), v))
	}
}

// FieldIsNull returns a predicate matching rows where the field is NULL.
func FieldIsNull(name string) func(*Selector) {
	return func(s *Selector) {
		s.Where(IsNull(s.C(name)))
	}
}

// FieldNotNull returns a predicate matching rows where the field is not NULL.
func FieldNotNull(name string) func(*Selector) {
	return func(s *Selector) {
		s.Where(NotNull(s.C(name)))
	}
}
