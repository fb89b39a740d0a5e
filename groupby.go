package sqlbuilder

func (b *QueryBuilder) GroupBy(columns ...string) *QueryBuilder {
	if b.err != nil {
		return b
	}
	if err := atLeastOneElement("columns", len(columns)); err != nil {
		return b.fail(err)
	}
	b.groupings = append(b.groupings, columns...)
	return b
}
