package sqlbuilder

import (
	"strings"

	"github.com/jedib0t/go-pretty/table"
)

func (q *DataQuery) Describe() string {
	return describe([]string{q.SelectQuery}, q.Parameters)
}

func (q *PagedQuery) Describe() string {
	return describe([]string{q.DataQuery, q.CountQuery}, q.Parameters)
}

func describe(statements []string, params Parameters) string {
	var sb strings.Builder
	for _, s := range statements {
		sb.WriteString(s)
		sb.WriteString("\n")
	}
	w := table.NewWriter()
	w.AppendHeader(table.Row{"Parameter", "Kind", "Value"})
	for _, name := range params.Names() {
		v := params[name]
		w.AppendRow(table.Row{placeholder(name), v.Kind(), v.String()})
	}
	sb.WriteString(w.Render())
	return sb.String()
}
