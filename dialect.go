package sequel

import "strconv"

// Formats of keywords outside ANSI SQL: SQL Server TOP, OFFSET/FETCH and CROSS
// APPLY, and LIMIT/OFFSET of sqlite, MySQL and Postgres.
var (
	topFormat    = Format{Pre: "TOP"}
	limitFormat  = Format{Pre: "LIMIT "}
	offsetFormat = Format{Pre: "OFFSET "}
)

// Top limits the row count the SQL Server way, rendered as "TOP(n)".
func (b *SqlBuilder) Top(n int) *SqlBuilder {
	return b.AddClause(KeywordTop, topFormat, NewClause("", "", "("+strconv.Itoa(n)+")"))
}

// Limit renders "LIMIT n".
func (b *SqlBuilder) Limit(n int) *SqlBuilder {
	return b.AddClause(KeywordLimit, limitFormat, NewClause("", "", strconv.Itoa(n)))
}

// Offset renders "OFFSET n".
func (b *SqlBuilder) Offset(n int) *SqlBuilder {
	return b.AddClause(KeywordOffset, offsetFormat, NewClause("", "", strconv.Itoa(n)))
}

// OffsetFetch renders "OFFSET o ROWS FETCH NEXT f ROWS ONLY". It needs an ORDER BY.
func (b *SqlBuilder) OffsetFetch(offset, fetch int) *SqlBuilder {
	return b.AddClause(KeywordOffset, offsetFormat,
		NewClause("", "", strconv.Itoa(offset)+" ROWS FETCH NEXT "+strconv.Itoa(fetch)+" ROWS ONLY"))
}

// CrossApply adds a CROSS APPLY of a table valued function, aliased.
func (b *SqlBuilder) CrossApply(tvf, alias string) *SqlBuilder {
	return b.join(crossApply, as(tvf, alias))
}

// CrossApplySub applies the rendered sub builder, aliased.
func (b *SqlBuilder) CrossApplySub(sub *SqlBuilder, alias string) *SqlBuilder {
	return b.CrossApply(subquery(sub), alias)
}
