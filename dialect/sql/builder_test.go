package sql

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/Follpvosten/sea-query/dialect"
)

func TestSelectorPerDialect(t *testing.T) {
	s := Select("id", "name").From(Table("users")).Where(EQ("id", 1))

	query, params, err := s.Build(dialect.MySQL)
	require.NoError(t, err)
	assert.Equal(t, "SELECT `id`, `name` FROM `users` WHERE `id` = ?", query)
	require.Len(t, params, 1)
	assert.True(t, params[0].Equal(Int64(1)))

	query, params, err = s.Build(dialect.Postgres)
	require.NoError(t, err)
	assert.Equal(t, `SELECT "id", "name" FROM "users" WHERE "id" = $1`, query)
	require.Len(t, params, 1)

	query, _, err = s.Build(dialect.SQLite)
	require.NoError(t, err)
	assert.Equal(t, "SELECT `id`, `name` FROM `users` WHERE `id` = ?", query)
}

// Rendering must not mutate the statement: the same tree renders
// identically on repeated and interleaved builds.
func TestSelectorRenderIsPure(t *testing.T) {
	s := Select("id").From(Table("users")).Where(And(EQ("a", 1), EQ("b", 2)))
	first, _, err := s.Build(dialect.Postgres)
	require.NoError(t, err)
	_, _, err = s.Build(dialect.MySQL)
	require.NoError(t, err)
	again, params, err := s.Build(dialect.Postgres)
	require.NoError(t, err)
	assert.Equal(t, first, again)
	assert.Equal(t, `SELECT "id" FROM "users" WHERE ("a" = $1 AND "b" = $2)`, again)
	require.Len(t, params, 2)
}

func TestSelectorClauses(t *testing.T) {
	t.Run("order_limit_offset", func(t *testing.T) {
		query, params := Dialect(dialect.Postgres).
			Select("id").
			From(Table("users")).
			OrderBy(Desc("created_at"), Asc("name")).
			Limit(10).
			Offset(20).
			Query()
		assert.Equal(t, `SELECT "id" FROM "users" ORDER BY "created_at" DESC, "name" ASC LIMIT 10 OFFSET 20`, query)
		assert.Empty(t, params)
	})
	t.Run("group_by_having", func(t *testing.T) {
		query, params := Dialect(dialect.MySQL).
			Select("role", Count("id")).
			From(Table("users")).
			GroupBy("role").
			Having(GT(Count("id"), 5)).
			Query()
		assert.Equal(t, "SELECT `role`, COUNT(`id`) FROM `users` GROUP BY `role` HAVING COUNT(`id`) > ?", query)
		require.Len(t, params, 1)
		assert.True(t, params[0].Equal(Int64(5)))
	})
	t.Run("distinct", func(t *testing.T) {
		query, _ := Dialect(dialect.MySQL).Select("role").Distinct().From(Table("users")).Query()
		assert.Equal(t, "SELECT DISTINCT `role` FROM `users`", query)
	})
	t.Run("select_star", func(t *testing.T) {
		query, _ := Dialect(dialect.MySQL).Select().From(Table("users")).Query()
		assert.Equal(t, "SELECT * FROM `users`", query)
	})
	t.Run("where_accumulates_with_and", func(t *testing.T) {
		query, _ := Dialect(dialect.MySQL).
			Select("id").
			From(Table("users")).
			Where(EQ("a", 1)).
			Where(EQ("b", 2)).
			Query()
		assert.Equal(t, "SELECT `id` FROM `users` WHERE (`a` = ? AND `b` = ?)", query)
	})
}

func TestSelectorJoins(t *testing.T) {
	users := Table("users").As("u")
	posts := Table("posts").As("p")
	query, params := Dialect(dialect.Postgres).
		Select("u.id", "u.name", "p.title").
		From(users).
		Join(posts).On(users.C("id"), posts.C("user_id")).
		Where(EQ("u.active", true)).
		Query()
	assert.Equal(t, `SELECT "u"."id", "u"."name", "p"."title" FROM "users" AS "u" JOIN "posts" AS "p" ON "u"."id" = "p"."user_id" WHERE "u"."active" = $1`, query)
	require.Len(t, params, 1)
	assert.True(t, params[0].Equal(Bool(true)))

	query, _ = Dialect(dialect.MySQL).
		Select("u.id").
		From(users).
		LeftJoin(posts).On(users.C("id"), posts.C("user_id")).
		Query()
	assert.Equal(t, "SELECT `u`.`id` FROM `users` AS `u` LEFT JOIN `posts` AS `p` ON `u`.`id` = `p`.`user_id`", query)
}

// Placeholder numbering continues across sub-queries, so a Postgres
// statement with a nested select never reuses an index.
func TestSubqueryPlaceholderContinuity(t *testing.T) {
	inner := Select("user_id").From(Table("posts")).Where(GT("likes", 100))
	query, params, err := Select("name").
		From(Table("users")).
		Where(And(EQ("active", true), In("id", inner))).
		Build(dialect.Postgres)
	require.NoError(t, err)
	assert.Equal(t, `SELECT "name" FROM "users" WHERE ("active" = $1 AND "id" IN (SELECT "user_id" FROM "posts" WHERE "likes" > $2))`, query)
	require.Len(t, params, 2)
	assert.True(t, params[0].Equal(Bool(true)))
	assert.True(t, params[1].Equal(Int64(100)))
}

func TestSelectorFromSubquery(t *testing.T) {
	inner := Select("user_id", Count("id")).From(Table("posts")).GroupBy("user_id").As("t")
	query, _, err := Select("user_id").From(inner).Build(dialect.Postgres)
	require.NoError(t, err)
	assert.Equal(t, `SELECT "user_id" FROM (SELECT "user_id", COUNT("id") FROM "posts" GROUP BY "user_id") AS "t"`, query)
}

func TestIdentQuoting(t *testing.T) {
	t.Run("embedded_quote_is_doubled", func(t *testing.T) {
		query, _, err := Select("na`me").From(Table("users")).Build(dialect.MySQL)
		require.NoError(t, err)
		assert.Equal(t, "SELECT `na``me` FROM `users`", query)
	})
	t.Run("postgres_embedded_quote", func(t *testing.T) {
		b := &Builder{bk: backends[dialect.Postgres]}
		assert.Equal(t, `"na""me"`, b.Quote(`na"me`))
	})
	t.Run("qualified_star", func(t *testing.T) {
		query, _, err := Select("u.*").From(Table("users").As("u")).Build(dialect.Postgres)
		require.NoError(t, err)
		assert.Equal(t, `SELECT "u".* FROM "users" AS "u"`, query)
	})
	t.Run("embedded_quote_in_select_column", func(t *testing.T) {
		query, _, err := Select("a`b").From(Table("t")).Build(dialect.MySQL)
		require.NoError(t, err)
		assert.Equal(t, "SELECT `a``b` FROM `t`", query)

		query, _, err = Select(`a"b`).From(Table("t")).Build(dialect.Postgres)
		require.NoError(t, err)
		assert.Equal(t, `SELECT "a""b" FROM "t"`, query)
	})
	t.Run("prequoted_passthrough", func(t *testing.T) {
		b := &Builder{bk: backends[dialect.Postgres]}
		b.Ident(`"already"`)
		assert.Equal(t, `"already"`, b.String())
	})
	t.Run("embedded_quote_in_qualified_name", func(t *testing.T) {
		b := &Builder{bk: backends[dialect.MySQL]}
		b.Ident("u.a`b")
		assert.Equal(t, "`u`.`a``b`", b.String())
	})
}

func TestBuildUnsupportedDialect(t *testing.T) {
	_, _, err := Select("id").From(Table("users")).Build("oracle")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedDialect)

	assert.Panics(t, func() {
		Select("id").From(Table("users")).BuildX("oracle")
	})
}

func TestBuildCollect(t *testing.T) {
	var collected []Value
	query, err := Select("id").
		From(Table("users")).
		Where(And(EQ("a", 1), EQ("b", "x"))).
		BuildCollect(dialect.MySQL, func(v Value) {
			collected = append(collected, v)
		})
	require.NoError(t, err)
	assert.Equal(t, "SELECT `id` FROM `users` WHERE (`a` = ? AND `b` = ?)", query)
	require.Len(t, collected, 2)
	assert.True(t, collected[0].Equal(Int64(1)))
	assert.True(t, collected[1].Equal(String("x")))
}

func TestRawFragment(t *testing.T) {
	query, params, err := Select("id").
		From(Table("users")).
		Where(EQ("created_at", Raw("NOW()"))).
		Build(dialect.MySQL)
	require.NoError(t, err)
	assert.Equal(t, "SELECT `id` FROM `users` WHERE `created_at` = NOW()", query)
	assert.Empty(t, params)
}

func TestDebugString(t *testing.T) {
	s := Select("id").From(Table("users")).Where(And(EQ("name", "O'Brien"), GT("age", 30)))
	assert.Equal(t,
		`SELECT "id" FROM "users" WHERE ("name" = 'O''Brien' AND "age" > 30)`,
		s.DebugString(dialect.Postgres),
	)
	assert.Equal(t,
		"SELECT `id` FROM `users` WHERE (`name` = 'O''Brien' AND `age` > 30)",
		s.DebugString(dialect.MySQL),
	)
}

func TestTableIden(t *testing.T) {
	query, _, err := Select("id").From(TableIden(Alias("users"))).Build(dialect.MySQL)
	require.NoError(t, err)
	assert.Equal(t, "SELECT `id` FROM `users`", query)
}

// One statement tree, many concurrent render passes. The race detector
// guards this test.
func TestConcurrentBuilds(t *testing.T) {
	s := Select("id", "name").
		From(Table("users")).
		Where(And(EQ("status", "active"), GT("age", 18))).
		OrderBy(Asc("id")).
		Limit(5)
	want := map[string]string{
		dialect.MySQL:    "SELECT `id`, `name` FROM `users` WHERE (`status` = ? AND `age` > ?) ORDER BY `id` ASC LIMIT 5",
		dialect.SQLite:   "SELECT `id`, `name` FROM `users` WHERE (`status` = ? AND `age` > ?) ORDER BY `id` ASC LIMIT 5",
		dialect.Postgres: `SELECT "id", "name" FROM "users" WHERE ("status" = $1 AND "age" > $2) ORDER BY "id" ASC LIMIT 5`,
	}
	var g errgroup.Group
	for i := 0; i < 64; i++ {
		d := []string{dialect.MySQL, dialect.SQLite, dialect.Postgres}[i%3]
		g.Go(func() error {
			query, params, err := s.Build(d)
			if err != nil {
				return err
			}
			if query != want[d] {
				return fmt.Errorf("unexpected query for %s: %s", d, query)
			}
			if len(params) != 2 {
				return fmt.Errorf("expected 2 params, got %d", len(params))
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
