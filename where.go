package sequel

const (
	and = " AND "
	or  = " OR "
)

var (
	whereFormat  = Format{Pre: "WHERE ", Mode: Predicate}
	havingFormat = Format{Pre: "HAVING ", Mode: Predicate}
)

// Where adds predicates joined with AND. The call itself is AND-ed to earlier
// predicates.
func (b *SqlBuilder) Where(predicates ...string) *SqlBuilder {
	return b.AddClause(KeywordWhere, whereFormat, NewClause(and, "", predicates...))
}

// WhereOr adds predicates joined with OR. The call itself is OR-ed to earlier
// predicates.
func (b *SqlBuilder) WhereOr(predicates ...string) *SqlBuilder {
	return b.AddClause(KeywordWhere, whereFormat, NewClause(or, "", predicates...))
}

// Exists adds an EXISTS (predicate) condition.
func (b *SqlBuilder) Exists(predicate string) *SqlBuilder {
	return b.Where("EXISTS (" + predicate + ")")
}

// ExistsSub adds an EXISTS condition over the rendered sub builder.
func (b *SqlBuilder) ExistsSub(sub *SqlBuilder) *SqlBuilder {
	return b.Where("EXISTS " + subquery(sub))
}

// Having adds group predicates joined with AND.
func (b *SqlBuilder) Having(predicates ...string) *SqlBuilder {
	return b.AddClause(KeywordHaving, havingFormat, NewClause(and, "", predicates...))
}

// HavingOr adds group predicates joined with OR.
func (b *SqlBuilder) HavingOr(predicates ...string) *SqlBuilder {
	return b.AddClause(KeywordHaving, havingFormat, NewClause(or, "", predicates...))
}
