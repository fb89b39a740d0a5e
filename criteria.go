package sqlbuilder

const (
	DefaultPageSize   = 10
	DefaultPageNumber = 1
)

type SearchCriteria struct {
	PageSize   int
	PageNumber int
	// OrderBy is a label echoed back with the page, it does not affect the SQL.
	OrderBy string
}

func NewSearchCriteria() SearchCriteria {
	return SearchCriteria{PageSize: DefaultPageSize, PageNumber: DefaultPageNumber}
}

func (c SearchCriteria) offset() int {
	return (c.PageNumber - 1) * c.PageSize
}
