package executor

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golobby/sqlbuilder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Account struct {
	ID     int64
	Name   string
	Status string
}

func mockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return db, mock
}

func TestToList(t *testing.T) {
	ctx := context.Background()

	t.Run("binds every row", func(t *testing.T) {
		db, mock := mockDB(t)
		mock.ExpectQuery("SELECT id,name FROM accounts WHERE status = @p1 ORDER BY id ASC").
			WithArgs(sql.Named("p1", "active")).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
				AddRow(int64(1), "amirreza").
				AddRow(int64(2), "milad"))

		q, err := sqlbuilder.New(db).Select("id", "name").From("accounts").
			Search("status", sqlbuilder.String("active")).
			SortBy("id").
			BuildQuery()
		require.NoError(t, err)

		accounts, err := ToList[Account](ctx, q)
		require.NoError(t, err)
		require.Len(t, accounts, 2)
		assert.Equal(t, "milad", accounts[1].Name)
	})

	t.Run("expands lists", func(t *testing.T) {
		db, mock := mockDB(t)
		mock.ExpectQuery("SELECT id FROM accounts WHERE id IN (@p1_1,@p1_2) AND name = @p2").
			WithArgs(sql.Named("p1_1", int64(4)), sql.Named("p1_2", int64(5)), sql.Named("p2", "x")).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(4)))

		q, err := sqlbuilder.New(db).Select("id").From("accounts").
			WhereIn("id", sqlbuilder.Int(4), sqlbuilder.Int(5)).
			WhereEqual("name", sqlbuilder.String("x")).
			BuildQuery()
		require.NoError(t, err)

		ids, err := ToList[int64](ctx, q)
		require.NoError(t, err)
		assert.Equal(t, []int64{4}, ids)
	})

	t.Run("query error", func(t *testing.T) {
		db, mock := mockDB(t)
		mock.ExpectQuery("SELECT id FROM accounts").WillReturnError(sql.ErrConnDone)

		q, err := sqlbuilder.New(db).Select("id").From("accounts").BuildQuery()
		require.NoError(t, err)

		_, err = ToList[Account](ctx, q)
		assert.ErrorIs(t, err, sql.ErrConnDone)
	})

	t.Run("no connection", func(t *testing.T) {
		q, err := sqlbuilder.New(nil).Select("id").From("accounts").BuildQuery()
		require.NoError(t, err)

		_, err = ToList[Account](ctx, q)
		assert.ErrorIs(t, err, ErrNoConnection)
	})
}

func TestFirstAndSingle(t *testing.T) {
	ctx := context.Background()
	stmt := "SELECT TOP 2 id,name FROM accounts"
	build := func(db *sql.DB) *sqlbuilder.DataQuery {
		q, err := sqlbuilder.New(db).Select("id", "name").From("accounts").BuildTopQuery(2)
		require.NoError(t, err)
		return q
	}

	t.Run("first", func(t *testing.T) {
		db, mock := mockDB(t)
		mock.ExpectQuery(stmt).WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(int64(1), "a").
			AddRow(int64(2), "b"))

		a, err := FirstOrDefault[Account](ctx, build(db))
		require.NoError(t, err)
		assert.Equal(t, Account{ID: 1, Name: "a"}, a)
	})

	t.Run("first without rows", func(t *testing.T) {
		db, mock := mockDB(t)
		mock.ExpectQuery(stmt).WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

		a, err := FirstOrDefault[Account](ctx, build(db))
		require.NoError(t, err)
		assert.Equal(t, Account{}, a)
	})

	t.Run("first into a pointer", func(t *testing.T) {
		db, mock := mockDB(t)
		mock.ExpectQuery(stmt).WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(int64(1), "a"))

		a, err := FirstOrDefault[*Account](ctx, build(db))
		require.NoError(t, err)
		require.NotNil(t, a)
		assert.Equal(t, &Account{ID: 1, Name: "a"}, a)
	})

	t.Run("first into a pointer without rows", func(t *testing.T) {
		db, mock := mockDB(t)
		mock.ExpectQuery(stmt).WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

		a, err := FirstOrDefault[*Account](ctx, build(db))
		require.NoError(t, err)
		assert.Nil(t, a)
	})

	t.Run("single", func(t *testing.T) {
		db, mock := mockDB(t)
		mock.ExpectQuery(stmt).WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(int64(1), "a"))

		a, err := SingleOrDefault[Account](ctx, build(db))
		require.NoError(t, err)
		assert.Equal(t, "a", a.Name)
	})

	t.Run("single without rows", func(t *testing.T) {
		db, mock := mockDB(t)
		mock.ExpectQuery(stmt).WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

		a, err := SingleOrDefault[Account](ctx, build(db))
		require.NoError(t, err)
		assert.Equal(t, Account{}, a)
	})

	t.Run("more than one row", func(t *testing.T) {
		db, mock := mockDB(t)
		mock.ExpectQuery(stmt).WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(int64(1), "a").
			AddRow(int64(2), "b"))

		_, err := SingleOrDefault[Account](ctx, build(db))
		assert.ErrorIs(t, err, ErrMoreThanOneRow)
	})
}

func TestExecute(t *testing.T) {
	ctx := context.Background()
	stmt := "SELECT COUNT(*) FROM accounts WHERE status = @p1\n" +
		"SELECT id,name FROM accounts WHERE status = @p1 ORDER BY name DESC OFFSET 2 ROWS FETCH NEXT 2 ROWS ONLY"
	build := func(db *sql.DB) *sqlbuilder.PagedQuery {
		q, err := sqlbuilder.New(db).Select("id", "name").From("accounts").
			Search("status", sqlbuilder.String("active")).
			SortByDescending("name").
			BuildPagedQuery(sqlbuilder.SearchCriteria{PageNumber: 2, PageSize: 2, OrderBy: "name"})
		require.NoError(t, err)
		return q
	}

	t.Run("page", func(t *testing.T) {
		db, mock := mockDB(t)
		mock.ExpectQuery(stmt).
			WithArgs(sql.Named("p1", "active")).
			WillReturnRows(
				sqlmock.NewRows([]string{"total"}).AddRow(int64(5)),
				sqlmock.NewRows([]string{"id", "name"}).AddRow(int64(3), "c").AddRow(int64(4), "b"),
			)

		page, err := Execute[Account](ctx, build(db))
		require.NoError(t, err)
		assert.Equal(t, int64(5), page.Total)
		assert.Equal(t, 2, page.PageNumber)
		assert.Equal(t, 2, page.PageSize)
		assert.Equal(t, "name", page.OrderedBy)
		require.Len(t, page.Records, 2)
		assert.Equal(t, "c", page.Records[0].Name)
	})

	t.Run("missing data result set", func(t *testing.T) {
		db, mock := mockDB(t)
		mock.ExpectQuery(stmt).WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(int64(5)))

		_, err := Execute[Account](ctx, build(db))
		assert.ErrorIs(t, err, ErrMissingResultSet)
	})

	t.Run("no connection", func(t *testing.T) {
		q, err := sqlbuilder.New(nil).Select("id").From("accounts").SortBy("id").BuildPage(1, 10)
		require.NoError(t, err)

		_, err = Execute[Account](ctx, q)
		assert.ErrorIs(t, err, ErrNoConnection)
	})
}
