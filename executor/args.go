package executor

import (
	"database/sql"
	"fmt"
	"regexp"
	"strings"

	"github.com/golobby/sqlbuilder"
)

// emptyList keeps `x IN @p` valid when the bound list is empty: nothing matches.
const emptyList = "(SELECT NULL WHERE 1 = 0)"

// expand binds params as sql.NamedArg values in placeholder order. A list
// parameter is spread into one placeholder per item: `IN @p1` becomes
// `IN (@p1_1,@p1_2)`.
func expand(query string, params sqlbuilder.Parameters) (string, []any) {
	args := make([]any, 0, len(params))
	for _, name := range params.Names() {
		v := params[name]
		if v.Kind() != sqlbuilder.KindList {
			args = append(args, sql.Named(name, v.Any()))
			continue
		}
		items := v.Items()
		replacement := emptyList
		if len(items) > 0 {
			phs := make([]string, 0, len(items))
			for i, item := range items {
				itemName := fmt.Sprintf("%s_%d", name, i+1)
				phs = append(phs, "@"+itemName)
				args = append(args, sql.Named(itemName, item.Any()))
			}
			replacement = "(" + strings.Join(phs, ",") + ")"
		}
		token := regexp.MustCompile("@" + regexp.QuoteMeta(name) + `\b`)
		query = token.ReplaceAllLiteralString(query, replacement)
	}
	return query, args
}
