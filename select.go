package sequel

var (
	selectFormat = Format{Pre: "SELECT "}
	fieldsFormat = Format{Glue: ", "}
	fromFormat   = Format{Pre: "FROM "}
)

// Select adds columns to the select list.
func (b *SqlBuilder) Select(columns ...string) *SqlBuilder {
	b.AddClause(KeywordSelect, selectFormat, NewClause("", "", ""))
	return b.AddClause(KeywordFields, fieldsFormat, NewClause(", ", "", columns...))
}

// SelectWithAlias adds columns prefixed with alias, e.g. "t" and "Id" give "t.Id".
func (b *SqlBuilder) SelectWithAlias(alias string, columns ...string) *SqlBuilder {
	return b.Select(withAlias(alias, columns)...)
}

// From sets the table to read from.
func (b *SqlBuilder) From(table string) *SqlBuilder {
	return b.AddClause(KeywordFrom, fromFormat, NewClause("", "", table))
}

// FromAs sets an aliased table, rendered as "FROM table AS alias".
func (b *SqlBuilder) FromAs(table, alias string) *SqlBuilder {
	return b.From(table + " AS " + alias)
}

// FromSub reads from a derived table. sub is rendered right away, so changing it
// later does not affect b.
func (b *SqlBuilder) FromSub(sub *SqlBuilder, alias string) *SqlBuilder {
	return b.From(subquery(sub) + " as " + alias)
}
