package sqlbuilder

import (
	"fmt"
	"math"
	"strings"
)

const (
	clauseSelect  = "SELECT"
	clauseFrom    = "FROM"
	clauseWhere   = "WHERE"
	clauseGroupBy = "GROUP BY"
	clauseOrderBy = "ORDER BY"
)

// Select appends columns to the projection. Repeated calls accumulate.
func (b *QueryBuilder) Select(columns ...string) *QueryBuilder {
	if b.err != nil {
		return b
	}
	if err := atLeastOneElement("columns", len(columns)); err != nil {
		return b.fail(err)
	}
	b.columns = append(b.columns, columns...)
	return b
}

// SelectOf selects the columns mapped from the fields of record.
func (b *QueryBuilder) SelectOf(record any) *QueryBuilder {
	if b.err != nil {
		return b
	}
	columns, err := Columns(record)
	if err != nil {
		return b.fail(err)
	}
	return b.Select(columns...)
}

func (b *QueryBuilder) From(table string) *QueryBuilder {
	if b.err != nil {
		return b
	}
	if err := notEmpty("table", table); err != nil {
		return b.fail(err)
	}
	if b.table != "" {
		return b.fail(&StateError{Message: "From clause already specified"})
	}
	b.table = table
	return b
}

// FromOf uses the table name derived from the type of record.
func (b *QueryBuilder) FromOf(record any) *QueryBuilder {
	if b.err != nil {
		return b
	}
	table, err := TableName(record)
	if err != nil {
		return b.fail(err)
	}
	return b.From(table)
}

func (b *QueryBuilder) BuildQuery() (*DataQuery, error) {
	defer b.Clear()
	if err := b.validate(); err != nil {
		return nil, err
	}
	return b.dataQuery(b.selectSQL(0)), nil
}

// BuildTopQuery builds a query limited to the first n rows.
func (b *QueryBuilder) BuildTopQuery(n int) (*DataQuery, error) {
	defer b.Clear()
	if err := b.validate(); err != nil {
		return nil, err
	}
	if err := greaterThanZero("elementsCount", n); err != nil {
		return nil, err
	}
	return b.dataQuery(b.selectSQL(n)), nil
}

// BuildPage is BuildPagedQuery for the given page number and size.
func (b *QueryBuilder) BuildPage(pageNumber, pageSize int) (*PagedQuery, error) {
	return b.BuildPagedQuery(SearchCriteria{PageNumber: pageNumber, PageSize: pageSize})
}

// BuildPagedQuery builds a page of data plus a count of all matching rows.
// Grouped queries cannot be paged.
func (b *QueryBuilder) BuildPagedQuery(criteria SearchCriteria) (*PagedQuery, error) {
	defer b.Clear()
	if err := b.validate(); err != nil {
		return nil, err
	}
	if len(b.orderings) == 0 {
		return nil, &StateError{Message: "sortings should have at least one element"}
	}
	if err := greaterThanZero("pageSize", criteria.PageSize); err != nil {
		return nil, err
	}
	if err := greaterThanZero("pageNumber", criteria.PageNumber); err != nil {
		return nil, err
	}
	if criteria.PageNumber-1 > math.MaxInt/criteria.PageSize {
		return nil, &ArgumentError{
			Argument: "pageNumber",
			Reason:   fmt.Sprintf("%d overflows the offset for page size %d", criteria.PageNumber, criteria.PageSize),
		}
	}
	if len(b.groupings) > 0 {
		return nil, &StateError{Message: "Could not page grouped query"}
	}

	data := b.selectSQL(0) + fmt.Sprintf(" OFFSET %d ROWS FETCH NEXT %d ROWS ONLY", criteria.offset(), criteria.PageSize)
	count := b.countSQL()
	b.logger.Debugf("built paged query %q, count %q, %d parameters", data, count, len(b.params))
	return &PagedQuery{
		Conn:           b.conn,
		DataQuery:      data,
		CountQuery:     count,
		Parameters:     b.params,
		SearchCriteria: criteria,
		logger:         b.logger,
	}, nil
}

func (b *QueryBuilder) validate() error {
	if b.err != nil {
		return b.err
	}
	if err := atLeastOneElement("columns", len(b.columns)); err != nil {
		return err
	}
	if b.table == "" {
		return &StateError{Message: "table is not specified"}
	}
	return nil
}

func (b *QueryBuilder) dataQuery(q string) *DataQuery {
	b.logger.Debugf("built query %q, %d parameters", q, len(b.params))
	return &DataQuery{
		Conn:        b.conn,
		SelectQuery: q,
		Parameters:  b.params,
		logger:      b.logger,
	}
}

func (b *QueryBuilder) selectSQL(top int) string {
	sections := []string{clauseSelect}
	if top > 0 {
		sections = append(sections, fmt.Sprintf("TOP %d", top))
	}
	sections = append(sections, join(b.columns, ","), clauseFrom, b.table)
	sections = append(sections, b.whereSections()...)
	if len(b.groupings) > 0 {
		sections = append(sections, clauseGroupBy, join(b.groupings, ","))
	}
	if len(b.orderings) > 0 {
		sections = append(sections, clauseOrderBy, join(b.orderings, ","))
	}
	return strings.Join(sections, " ")
}

func (b *QueryBuilder) countSQL() string {
	sections := []string{clauseSelect, "COUNT(*)", clauseFrom, b.table}
	sections = append(sections, b.whereSections()...)
	return strings.Join(sections, " ")
}

func (b *QueryBuilder) whereSections() []string {
	if len(b.conditions) == 0 {
		return nil
	}
	return []string{clauseWhere, join(b.conditions, " AND ")}
}
