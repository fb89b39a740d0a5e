package sqlbuilder

import (
	"context"
	"database/sql"
	"sort"
	"strconv"
)

// Querier is the connection handle a built query carries to its executor.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Parameters maps placeholder names (without the @ prefix) to their values.
type Parameters map[string]Value

// Names returns the parameter names in placeholder order: p1, p2, ..., p10.
func (p Parameters) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		oi, oj := ordinal(names[i]), ordinal(names[j])
		if oi != oj {
			return oi < oj
		}
		return names[i] < names[j]
	})
	return names
}

// NamedArgs returns the parameters as sql.NamedArg values in placeholder order.
func (p Parameters) NamedArgs() []any {
	args := make([]any, 0, len(p))
	for _, name := range p.Names() {
		args = append(args, sql.Named(name, p[name].Any()))
	}
	return args
}

func ordinal(name string) int {
	if len(name) < 2 {
		return -1
	}
	n, err := strconv.Atoi(name[1:])
	if err != nil {
		return -1
	}
	return n
}

type DataQuery struct {
	Conn        Querier
	SelectQuery string
	Parameters  Parameters
	logger      Logger
}

// Logger returns the logger of the builder that produced q.
func (q *DataQuery) Logger() Logger {
	if q.logger == nil {
		return nopLogger()
	}
	return q.logger
}

// PagedQuery is a data query and a count query sharing one WHERE clause and
// one parameter map.
type PagedQuery struct {
	Conn           Querier
	DataQuery      string
	CountQuery     string
	Parameters     Parameters
	SearchCriteria SearchCriteria
	logger         Logger
}

func (q *PagedQuery) Logger() Logger {
	if q.logger == nil {
		return nopLogger()
	}
	return q.logger
}
