package sequel

var (
	orderByFormat = Format{Glue: ", ", Pre: "ORDER BY "}
	groupByFormat = Format{Glue: ", ", Pre: "GROUP BY "}
)

// OrderBy adds ascending sort columns.
func (b *SqlBuilder) OrderBy(columns ...string) *SqlBuilder {
	return b.AddClause(KeywordOrderBy, orderByFormat, NewClause(", ", "", columns...))
}

// OrderByDesc adds columns with a DESC suffix. columns itself is left untouched.
func (b *SqlBuilder) OrderByDesc(columns ...string) *SqlBuilder {
	return b.OrderBy(withSuffix(" DESC", columns)...)
}

func (b *SqlBuilder) OrderByWithAlias(alias string, columns ...string) *SqlBuilder {
	return b.OrderBy(withAlias(alias, columns)...)
}

func (b *SqlBuilder) OrderByDescWithAlias(alias string, columns ...string) *SqlBuilder {
	return b.OrderByDesc(withAlias(alias, columns)...)
}
