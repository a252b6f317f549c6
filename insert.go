package sequel

var (
	insertFormat  = Format{Pre: "INSERT INTO "}
	columnsFormat = Format{Glue: ", ", Pre: "(", Post: ")"}
	valuesFormat  = Format{Glue: "), (", Pre: "VALUES (", Post: ")"}
	valueFormat   = Format{Glue: ", ", Pre: "VALUES (", Post: ")"}
)

// Insert switches the builder to an INSERT statement into table.
func (b *SqlBuilder) Insert(table string) *SqlBuilder {
	b.use(KindInsert)
	return b.AddClause(KeywordInsert, insertFormat, NewClause("", "", table))
}

// Columns adds target columns of an INSERT.
func (b *SqlBuilder) Columns(columns ...string) *SqlBuilder {
	return b.AddClause(KeywordColumns, columnsFormat, NewClause(", ", "", columns...))
}

// Into is an alias of Columns.
func (b *SqlBuilder) Into(columns ...string) *SqlBuilder {
	return b.Columns(columns...)
}

// Values adds one row. Every call becomes its own tuple, so calling it again
// makes a multi row insert.
func (b *SqlBuilder) Values(values ...string) *SqlBuilder {
	return b.AddClause(KeywordValues, valuesFormat, NewClause(", ", "", values...))
}

// Value adds values to a single row; repeated calls extend the same tuple.
// Value and Values share the values keyword, so whichever comes first decides
// whether later calls open new rows.
func (b *SqlBuilder) Value(values ...string) *SqlBuilder {
	return b.AddClause(KeywordValues, valueFormat, NewClause(", ", "", values...))
}
