package sequel

import "strings"

// Aggregate wraps a column or expression in an SQL aggregate function.
type Aggregate func(expr string) string

func aggregate(name string) Aggregate {
	return func(expr string) string {
		return name + "(" + expr + ")"
	}
}

// SelectHelpers builds aggregate columns, e.g. SelectHelpers.Count("*").
var SelectHelpers = struct {
	Min, Max, Count, Avg, Sum Aggregate
}{
	Min:   aggregate("MIN"),
	Max:   aggregate("MAX"),
	Count: aggregate("COUNT"),
	Avg:   aggregate("AVG"),
	Sum:   aggregate("SUM"),
}

// WhereHelpers builds predicate fragments for Where, WhereOr, Having and HavingOr.
var WhereHelpers = struct {
	Compare func(column, op, value string) string
	Equal   func(column, value string) string
	Like    func(column, pattern string) string
	In      func(column string, values ...string) string
	Between func(column, lower, upper string) string
	Not     func(cond ...string) string
}{
	Compare: compare,
	Equal: func(column, value string) string {
		return compare(column, "=", value)
	},
	Like: func(column, pattern string) string {
		return compare(column, "LIKE", pattern)
	},
	In: func(column string, values ...string) string {
		return compare(column, "IN", "("+strings.Join(values, ", ")+")")
	},
	Between: func(column, lower, upper string) string {
		return compare(column, "BETWEEN", lower+" AND "+upper)
	},
	Not: func(cond ...string) string {
		return "NOT " + strings.Join(cond, " ")
	},
}

func compare(column, op, value string) string {
	return column + " " + op + " " + value
}

// Placeholder returns the named parameter for name, e.g. "@Id".
func Placeholder(name string) string {
	return "@" + name
}

// Placeholders returns one named parameter per name.
func Placeholders(names ...string) []string {
	output := make([]string, 0, len(names))
	for _, name := range names {
		output = append(output, Placeholder(name))
	}
	return output
}

// withAlias returns a new slice, columns are never changed in place.
func withAlias(alias string, columns []string) []string {
	if !strings.HasSuffix(alias, ".") {
		alias += "."
	}
	output := make([]string, 0, len(columns))
	for _, c := range columns {
		output = append(output, alias+c)
	}
	return output
}

func withSuffix(suffix string, columns []string) []string {
	output := make([]string, 0, len(columns))
	for _, c := range columns {
		output = append(output, c+suffix)
	}
	return output
}

// subquery renders sub at call time and parenthesizes it.
func subquery(sub *SqlBuilder) string {
	return "(" + sub.ToSql() + ")"
}
