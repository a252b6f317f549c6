package sequel

const (
	innerJoin  = "INNER JOIN"
	leftJoin   = "LEFT JOIN"
	rightJoin  = "RIGHT JOIN"
	crossJoin  = "CROSS JOIN"
	crossApply = "CROSS APPLY"
)

// Joins of every kind share one predicate mode set, so they render in call order.
var joinFormat = Format{Mode: Predicate}

func (b *SqlBuilder) join(kind, target string) *SqlBuilder {
	return b.AddClause(KeywordJoin, joinFormat, NewClause(" "+kind+" ", kind+" ", target))
}

func on(table, predicate string) string {
	return table + " ON " + predicate
}

func as(table, alias string) string {
	return table + " AS " + alias
}

// Join adds an INNER JOIN from a "table on predicate" fragment.
func (b *SqlBuilder) Join(tableAndPredicate string) *SqlBuilder {
	return b.join(innerJoin, tableAndPredicate)
}

// JoinOn adds "INNER JOIN table ON predicate".
func (b *SqlBuilder) JoinOn(table, predicate string) *SqlBuilder {
	return b.Join(on(table, predicate))
}

// JoinAs adds "INNER JOIN table AS alias ON predicate".
func (b *SqlBuilder) JoinAs(table, alias, predicate string) *SqlBuilder {
	return b.Join(on(as(table, alias), predicate))
}

// JoinSub joins the rendered sub builder as a derived table.
func (b *SqlBuilder) JoinSub(sub *SqlBuilder, alias, predicate string) *SqlBuilder {
	return b.JoinAs(subquery(sub), alias, predicate)
}

// LeftJoin adds a LEFT JOIN from a "table on predicate" fragment.
func (b *SqlBuilder) LeftJoin(tableAndPredicate string) *SqlBuilder {
	return b.join(leftJoin, tableAndPredicate)
}

func (b *SqlBuilder) LeftJoinOn(table, predicate string) *SqlBuilder {
	return b.LeftJoin(on(table, predicate))
}

func (b *SqlBuilder) LeftJoinAs(table, alias, predicate string) *SqlBuilder {
	return b.LeftJoin(on(as(table, alias), predicate))
}

func (b *SqlBuilder) LeftJoinSub(sub *SqlBuilder, alias, predicate string) *SqlBuilder {
	return b.LeftJoinAs(subquery(sub), alias, predicate)
}

// RightJoin adds a RIGHT JOIN from a "table on predicate" fragment.
func (b *SqlBuilder) RightJoin(tableAndPredicate string) *SqlBuilder {
	return b.join(rightJoin, tableAndPredicate)
}

func (b *SqlBuilder) RightJoinOn(table, predicate string) *SqlBuilder {
	return b.RightJoin(on(table, predicate))
}

func (b *SqlBuilder) RightJoinAs(table, alias, predicate string) *SqlBuilder {
	return b.RightJoin(on(as(table, alias), predicate))
}

func (b *SqlBuilder) RightJoinSub(sub *SqlBuilder, alias, predicate string) *SqlBuilder {
	return b.RightJoinAs(subquery(sub), alias, predicate)
}

// CrossJoin adds a CROSS JOIN, which takes no predicate.
func (b *SqlBuilder) CrossJoin(table string) *SqlBuilder {
	return b.join(crossJoin, table)
}

func (b *SqlBuilder) CrossJoinAs(table, alias string) *SqlBuilder {
	return b.CrossJoin(as(table, alias))
}

func (b *SqlBuilder) CrossJoinSub(sub *SqlBuilder, alias string) *SqlBuilder {
	return b.CrossJoinAs(subquery(sub), alias)
}
