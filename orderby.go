package sqlbuilder

import "fmt"

const (
	OrderASC  = "ASC"
	OrderDESC = "DESC"
)

// WithSortableColumns restricts the columns accepted by SortBy. Calls add up.
func (b *QueryBuilder) WithSortableColumns(columns ...string) *QueryBuilder {
	if b.err != nil {
		return b
	}
	if err := atLeastOneElement("columns", len(columns)); err != nil {
		return b.fail(err)
	}
	for _, c := range columns {
		b.sortable[c] = struct{}{}
	}
	return b
}

func (b *QueryBuilder) SortBy(column string) *QueryBuilder {
	return b.SortByDirection(column, true)
}

func (b *QueryBuilder) SortByDescending(column string) *QueryBuilder {
	return b.SortByDirection(column, false)
}

// SortByDirection appends an ORDER BY key. An empty column is ignored.
func (b *QueryBuilder) SortByDirection(column string, ascending bool) *QueryBuilder {
	if b.err != nil || column == "" {
		return b
	}
	if len(b.sortable) > 0 {
		if _, ok := b.sortable[column]; !ok {
			return b.fail(&ArgumentError{Argument: "column", Reason: "is not allowed: " + column})
		}
	}
	order := OrderASC
	if !ascending {
		order = OrderDESC
	}
	b.orderings = append(b.orderings, fmt.Sprintf("%s %s", column, order))
	return b
}
