package sql

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Follpvosten/sea-query/dialect"
)

// renderPredicate builds "SELECT * FROM t WHERE p" and returns the WHERE
// tail plus the collected parameters.
func renderPredicate(t *testing.T, d string, p *Predicate) (string, []Value) {
	t.Helper()
	query, params, err := Select().From(Table("t")).Where(p).Build(d)
	require.NoError(t, err)
	prefix := map[string]string{
		dialect.MySQL:    "SELECT * FROM `t` WHERE ",
		dialect.SQLite:   "SELECT * FROM `t` WHERE ",
		dialect.Postgres: `SELECT * FROM "t" WHERE `,
	}[d]
	require.True(t, len(query) > len(prefix), "query too short: %s", query)
	return query[len(prefix):], params
}

func TestComparisons(t *testing.T) {
	tests := []struct {
		name   string
		pred   *Predicate
		want   string
		params int
	}{
		{"eq", EQ("a", 1), "`a` = ?", 1},
		{"neq", NEQ("a", 1), "`a` <> ?", 1},
		{"gt", GT("a", 1), "`a` > ?", 1},
		{"gte", GTE("a", 1), "`a` >= ?", 1},
		{"lt", LT("a", 1), "`a` < ?", 1},
		{"lte", LTE("a", 1), "`a` <= ?", 1},
		{"columns_eq", ColumnsEQ("a", "b"), "`a` = `b`", 0},
		{"between", Between("a", 1, 10), "`a` BETWEEN ? AND ?", 2},
		{"not_between", NotBetween("a", 1, 10), "`a` NOT BETWEEN ? AND ?", 2},
		{"is_null", IsNull("a"), "`a` IS NULL", 0},
		{"not_null", NotNull("a"), "`a` IS NOT NULL", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, params := renderPredicate(t, dialect.MySQL, tt.pred)
			assert.Equal(t, tt.want, got)
			assert.Len(t, params, tt.params)
		})
	}
}

func TestComposition(t *testing.T) {
	t.Run("and", func(t *testing.T) {
		got, _ := renderPredicate(t, dialect.MySQL, And(EQ("a", 1), EQ("b", 2)))
		assert.Equal(t, "(`a` = ? AND `b` = ?)", got)
	})
	t.Run("or", func(t *testing.T) {
		got, _ := renderPredicate(t, dialect.MySQL, Or(EQ("a", 1), EQ("b", 2)))
		assert.Equal(t, "(`a` = ? OR `b` = ?)", got)
	})
	t.Run("single_operand_passthrough", func(t *testing.T) {
		got, _ := renderPredicate(t, dialect.MySQL, And(EQ("a", 1)))
		assert.Equal(t, "`a` = ?", got)
	})
	t.Run("not", func(t *testing.T) {
		got, _ := renderPredicate(t, dialect.MySQL, Not(EQ("a", 1)))
		assert.Equal(t, "NOT (`a` = ?)", got)
	})
	// Nested composition is always parenthesized, so the rendered text
	// never relies on operator precedence.
	t.Run("nested_grouping", func(t *testing.T) {
		got, _ := renderPredicate(t, dialect.MySQL,
			And(EQ("a", 1), Or(EQ("b", 2), EQ("c", 3))))
		assert.Equal(t, "(`a` = ? AND (`b` = ? OR `c` = ?))", got)
	})
}

func TestInPredicates(t *testing.T) {
	t.Run("in_values", func(t *testing.T) {
		got, params := renderPredicate(t, dialect.MySQL, In("a", 1, 2, 3))
		assert.Equal(t, "`a` IN (?, ?, ?)", got)
		assert.Len(t, params, 3)
	})
	t.Run("in_postgres_numbering", func(t *testing.T) {
		got, _ := renderPredicate(t, dialect.Postgres, In("a", 1, 2, 3))
		assert.Equal(t, `"a" IN ($1, $2, $3)`, got)
	})
	t.Run("not_in_values", func(t *testing.T) {
		got, params := renderPredicate(t, dialect.MySQL, NotIn("a", "x", "y"))
		assert.Equal(t, "`a` NOT IN (?, ?)", got)
		assert.Len(t, params, 2)
	})
	t.Run("empty_in_is_false", func(t *testing.T) {
		got, params := renderPredicate(t, dialect.MySQL, In("a"))
		assert.Equal(t, "FALSE", got)
		assert.Empty(t, params)
	})
	t.Run("empty_not_in_is_true", func(t *testing.T) {
		got, params := renderPredicate(t, dialect.MySQL, NotIn("a"))
		assert.Equal(t, "TRUE", got)
		assert.Empty(t, params)
	})
	t.Run("in_subquery", func(t *testing.T) {
		sub := Select("id").From(Table("banned"))
		got, params := renderPredicate(t, dialect.MySQL, In("user_id", sub))
		assert.Equal(t, "`user_id` IN (SELECT `id` FROM `banned`)", got)
		assert.Empty(t, params)
	})
}

func TestStringMatching(t *testing.T) {
	t.Run("like", func(t *testing.T) {
		got, params := renderPredicate(t, dialect.MySQL, Like("name", "jo%"))
		assert.Equal(t, "`name` LIKE ?", got)
		require.Len(t, params, 1)
		assert.True(t, params[0].Equal(String("jo%")))
	})
	t.Run("contains_escapes_wildcards", func(t *testing.T) {
		_, params := renderPredicate(t, dialect.MySQL, Contains("name", "50%_off"))
		require.Len(t, params, 1)
		assert.True(t, params[0].Equal(String(`%50\%\_off%`)))
	})
	t.Run("has_prefix", func(t *testing.T) {
		_, params := renderPredicate(t, dialect.MySQL, HasPrefix("name", "jo"))
		require.Len(t, params, 1)
		assert.True(t, params[0].Equal(String("jo%")))
	})
	t.Run("has_suffix", func(t *testing.T) {
		_, params := renderPredicate(t, dialect.MySQL, HasSuffix("name", "hn"))
		require.Len(t, params, 1)
		assert.True(t, params[0].Equal(String("%hn")))
	})
	t.Run("contains_fold", func(t *testing.T) {
		got, params := renderPredicate(t, dialect.MySQL, ContainsFold("name", "John"))
		assert.Equal(t, "LOWER(`name`) LIKE ?", got)
		require.Len(t, params, 1)
		assert.True(t, params[0].Equal(String("%john%")))
	})
	t.Run("equal_fold", func(t *testing.T) {
		got, params := renderPredicate(t, dialect.MySQL, EqualFold("name", "John"))
		assert.Equal(t, "LOWER(`name`) = ?", got)
		require.Len(t, params, 1)
		assert.True(t, params[0].Equal(String("john")))
	})
}

func TestFunctions(t *testing.T) {
	t.Run("count_star", func(t *testing.T) {
		query, _, err := Select(Count("*")).From(Table("t")).Build(dialect.Postgres)
		require.NoError(t, err)
		assert.Equal(t, `SELECT COUNT(*) FROM "t"`, query)
	})
	t.Run("aggregates", func(t *testing.T) {
		query, _, err := Select(Sum("a"), Avg("b"), Min("c"), Max("d")).From(Table("t")).Build(dialect.MySQL)
		require.NoError(t, err)
		assert.Equal(t, "SELECT SUM(`a`), AVG(`b`), MIN(`c`), MAX(`d`) FROM `t`", query)
	})
	t.Run("nested_call", func(t *testing.T) {
		query, _, err := Select(Upper(Lower("name"))).From(Table("t")).Build(dialect.MySQL)
		require.NoError(t, err)
		assert.Equal(t, "SELECT UPPER(LOWER(`name`)) FROM `t`", query)
	})
	t.Run("custom_fn_with_arg", func(t *testing.T) {
		query, params, err := Select(Fn("COALESCE", "nickname", "anonymous")).From(Table("t")).Build(dialect.MySQL)
		require.NoError(t, err)
		// Both operands are identifiers by writeOperand semantics.
		assert.Equal(t, "SELECT COALESCE(`nickname`, `anonymous`) FROM `t`", query)
		assert.Empty(t, params)
	})
}

func TestCaseExpr(t *testing.T) {
	c := Case().
		When(GT("score", 90), "high").
		When(GT("score", 50), "mid").
		Else("low")
	query, params, err := Select(c).From(Table("t")).Build(dialect.MySQL)
	require.NoError(t, err)
	assert.Equal(t, "SELECT CASE WHEN `score` > ? THEN ? WHEN `score` > ? THEN ? ELSE ? END FROM `t`", query)
	require.Len(t, params, 5)
	assert.True(t, params[0].Equal(Int64(90)))
	assert.True(t, params[1].Equal(String("high")))
	assert.True(t, params[4].Equal(String("low")))
}

func TestCustomPredicate(t *testing.T) {
	p := P(func(b *Builder) {
		b.WriteString("EXTRACT(YEAR FROM ")
		b.Ident("created_at")
		b.WriteString(") = ")
		b.Arg(2016)
	})
	got, params := renderPredicate(t, dialect.Postgres, p)
	assert.Equal(t, `EXTRACT(YEAR FROM "created_at") = $1`, got)
	require.Len(t, params, 1)
}

func TestFieldPredicates(t *testing.T) {
	s := Select("id").From(Table("users").As("u"))
	FieldEQ("name", "a8m")(s)
	FieldGT("age", 30)(s)
	query, params, err := s.Build(dialect.Postgres)
	require.NoError(t, err)
	assert.Equal(t, `SELECT "id" FROM "users" AS "u" WHERE ("u"."name" = $1 AND "u"."age" > $2)`, query)
	require.Len(t, params, 2)
}

type userPredicate func(*Selector)

func TestTypedFields(t *testing.T) {
	var (
		name = StringField[userPredicate]("name")
		age  = IntField[userPredicate]("age")
	)
	assert.Equal(t, "name", name.Name())

	s := Select("id").From(Table("users"))
	name.Contains("gopher")(s)
	age.GTE(21)(s)
	query, params, err := s.Build(dialect.MySQL)
	require.NoError(t, err)
	assert.Equal(t, "SELECT `id` FROM `users` WHERE (`users`.`name` LIKE ? AND `users`.`age` >= ?)", query)
	require.Len(t, params, 2)
}

func TestTypedFieldKinds(t *testing.T) {
	var (
		views   = Int64Field[userPredicate]("views")
		score   = Float64Field[userPredicate]("score")
		active  = BoolField[userPredicate]("active")
		created = TimeField[userPredicate, time.Time]("created_at")
		id      = UUIDField[userPredicate, uuid.UUID]("id")
	)
	assert.Equal(t, "views", views.Name())
	assert.Equal(t, "score", score.Name())
	assert.Equal(t, "active", active.Name())
	assert.Equal(t, "created_at", created.Name())
	assert.Equal(t, "id", id.Name())

	s := Select("id").From(Table("events"))
	views.In(1, 2)(s)
	score.GT(0.5)(s)
	active.EQ(true)(s)
	created.LT(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))(s)
	id.NEQ(uuid.MustParse("11111111-2222-3333-4444-555555555555"))(s)

	query, params, err := s.Build(dialect.Postgres)
	require.NoError(t, err)
	assert.Equal(t,
		`SELECT "id" FROM "events" WHERE (((("events"."views" IN ($1, $2) AND "events"."score" > $3) AND "events"."active" = $4) AND "events"."created_at" < $5) AND "events"."id" <> $6)`,
		query,
	)
	require.Len(t, params, 6)
	assert.Equal(t, KindInt64, params[0].Kind())
	assert.Equal(t, KindDouble, params[2].Kind())
	assert.Equal(t, KindBool, params[3].Kind())
	assert.Equal(t, KindTime, params[4].Kind())
	assert.Equal(t, KindUUID, params[5].Kind())
}
