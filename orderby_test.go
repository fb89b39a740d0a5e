package sqlbuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortBy(t *testing.T) {
	t.Run("directions", func(t *testing.T) {
		q := build(t, New(nil).Select("a").From("t").
			SortBy("a").
			SortByDescending("b").
			SortByDirection("c", true))
		assert.Equal(t, "SELECT a FROM t ORDER BY a ASC,b DESC,c ASC", q.SelectQuery)
	})

	t.Run("empty column is ignored", func(t *testing.T) {
		q := build(t, New(nil).Select("a").From("t").SortBy(""))
		assert.Equal(t, "SELECT a FROM t", q.SelectQuery)
	})

	t.Run("allowed columns", func(t *testing.T) {
		q := build(t, New(nil).Select("a").From("t").
			WithSortableColumns("a").
			WithSortableColumns("b").
			SortBy("b").
			SortByDescending("a"))
		assert.Equal(t, "SELECT a FROM t ORDER BY b ASC,a DESC", q.SelectQuery)
	})

	t.Run("column not allowed", func(t *testing.T) {
		_, err := New(nil).Select("a").From("t").WithSortableColumns("a").SortBy("password").BuildQuery()
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.EqualError(t, err, "column is not allowed: password")
	})

	t.Run("allow list is case sensitive", func(t *testing.T) {
		_, err := New(nil).Select("a").From("t").WithSortableColumns("Name").SortBy("name").BuildQuery()
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("empty allow list", func(t *testing.T) {
		_, err := New(nil).Select("a").From("t").WithSortableColumns().BuildQuery()
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}
