package sequel

var deleteFormat = Format{Pre: "DELETE "}

// Delete switches the builder to a DELETE statement. Pair it with From.
func (b *SqlBuilder) Delete() *SqlBuilder {
	return b.DeleteAlias("")
}

// DeleteAlias renders "DELETE alias", for deletes that join other tables.
func (b *SqlBuilder) DeleteAlias(alias string) *SqlBuilder {
	b.use(KindDelete)
	return b.AddClause(KeywordDelete, deleteFormat, NewClause("", "", alias))
}
