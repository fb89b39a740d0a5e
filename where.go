package sqlbuilder

import (
	"fmt"
	"strings"
)

// Search adds `column = value` unless value is NULL.
func (b *QueryBuilder) Search(column string, value Value) *QueryBuilder {
	if b.err != nil || value.IsNull() {
		return b
	}
	return b.addCondition(column, OpEq, value)
}

// SearchValueOnMultipleColumns matches value against any of columns. All
// columns share a single parameter.
func (b *QueryBuilder) SearchValueOnMultipleColumns(value Value, columns ...string) *QueryBuilder {
	if b.err != nil {
		return b
	}
	if err := atLeastOneElement("columns", len(columns)); err != nil {
		return b.fail(err)
	}
	if value.IsNull() {
		return b
	}
	ph := b.bind(value)
	parts := make([]string, 0, len(columns))
	for _, column := range columns {
		parts = append(parts, fmt.Sprintf("%s %s %s", column, OpEq, ph))
	}
	b.conditions = append(b.conditions, "("+strings.Join(parts, " OR ")+")")
	return b
}

// SearchColumnDoBeWithinDatePeriod keeps rows where start <= column < end.
// Either bound may be NULL to leave that side open.
func (b *QueryBuilder) SearchColumnDoBeWithinDatePeriod(column string, start, end Value) *QueryBuilder {
	if b.err != nil {
		return b
	}
	if !start.IsNull() {
		b.addCondition(column, OpGe, start)
	}
	if !end.IsNull() {
		b.addCondition(column, OpLt, end)
	}
	return b
}

// SearchDateToBeWithinColumnPeriod keeps rows where startColumn <= date < endColumn.
func (b *QueryBuilder) SearchDateToBeWithinColumnPeriod(startColumn, endColumn string, date Value) *QueryBuilder {
	if b.err != nil || date.IsNull() {
		return b
	}
	ph := b.bind(date)
	b.conditions = append(b.conditions,
		fmt.Sprintf("%s %s %s", startColumn, OpLe, ph),
		fmt.Sprintf("%s %s %s", endColumn, OpGt, ph),
	)
	return b
}

// SearchTextToBeLike matches value anywhere in column. The wildcards are
// concatenated in SQL, the bound value is the raw text.
func (b *QueryBuilder) SearchTextToBeLike(column string, value string) *QueryBuilder {
	if b.err != nil || value == "" {
		return b
	}
	ph := b.bind(String(value))
	b.conditions = append(b.conditions, fmt.Sprintf("%s %s '%%' + %s + '%%'", column, OpLike, ph))
	return b
}

func (b *QueryBuilder) SearchTextToBeEqual(column string, value string) *QueryBuilder {
	if b.err != nil || value == "" {
		return b
	}
	return b.addCondition(column, OpEq, String(value))
}

// WhereEqual adds `column = value`, NULL values included.
func (b *QueryBuilder) WhereEqual(column string, value Value) *QueryBuilder {
	if b.err != nil {
		return b
	}
	return b.addCondition(column, OpEq, value)
}

// Where applies every condition to column, in order.
func (b *QueryBuilder) Where(column string, conds ...Condition) *QueryBuilder {
	if b.err != nil {
		return b
	}
	if err := atLeastOneElement("conditions", len(conds)); err != nil {
		return b.fail(err)
	}
	for _, c := range conds {
		if err := notEmpty("operator", c.Operator); err != nil {
			return b.fail(err)
		}
		if c.HasValue && c.Value.IsNull() {
			return b.fail(&ArgumentError{Argument: "value", Reason: "should not be null"})
		}
	}
	for _, c := range conds {
		if c.HasValue {
			b.addCondition(column, c.Operator, c.Value)
			continue
		}
		b.conditions = append(b.conditions, fmt.Sprintf("%s %s", column, c.Operator))
	}
	return b
}

func (b *QueryBuilder) WhereIn(column string, values ...Value) *QueryBuilder {
	return b.Where(column, Is.In(values...))
}

func (b *QueryBuilder) WhereNotIn(column string, values ...Value) *QueryBuilder {
	return b.Where(column, Is.NotIn(values...))
}

func (b *QueryBuilder) WhereIsNull(column string) *QueryBuilder {
	return b.Where(column, Is.Null())
}

func (b *QueryBuilder) WhereIsNotNull(column string) *QueryBuilder {
	return b.Where(column, Is.NotNull())
}

func (b *QueryBuilder) addCondition(column, op string, value Value) *QueryBuilder {
	b.conditions = append(b.conditions, fmt.Sprintf("%s %s %s", column, op, b.bind(value)))
	return b
}
