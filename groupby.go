package sequel

// GroupBy adds grouping columns.
func (b *SqlBuilder) GroupBy(columns ...string) *SqlBuilder {
	return b.AddClause(KeywordGroupBy, groupByFormat, NewClause(", ", "", columns...))
}
