package sqlbuilder

import (
	"fmt"
	"strings"
)

// join concatenates the non-empty values with sep.
func join(values []string, sep string) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, sep)
}

func parameterName(n int) string {
	return fmt.Sprintf("p%d", n)
}

func placeholder(name string) string {
	return "@" + name
}
