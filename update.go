package sequel

var (
	updateFormat = Format{Pre: "UPDATE "}
	setFormat    = Format{Glue: ", ", Pre: "SET "}
)

// Update switches the builder to an UPDATE of table. The update template has no
// FROM, so a table alias cannot be declared here.
func (b *SqlBuilder) Update(table string) *SqlBuilder {
	b.use(KindUpdate)
	return b.AddClause(KeywordUpdate, updateFormat, NewClause("", "", table))
}

// Set adds "column = value" assignments.
func (b *SqlBuilder) Set(pairs ...string) *SqlBuilder {
	return b.AddClause(KeywordSet, setFormat, NewClause(", ", "", pairs...))
}
