package mapper

import (
	"github.com/gertd/go-pluralize"
	"github.com/iancoleman/strcase"
)

// Naming decides how Go names become table and column names.
type Naming int

const (
	// Verbatim uses the type name as table and field names as columns.
	Verbatim Naming = iota
	// SnakePlural uses snake_case columns and a pluralized snake_case table,
	// e.g. type BlogPost maps to blog_posts.
	SnakePlural
)

func (n Naming) String() string {
	switch n {
	case Verbatim:
		return "verbatim"
	case SnakePlural:
		return "snake_plural"
	default:
		return "unknown"
	}
}

var plurals = pluralize.NewClient()

func tableName(typeName string, naming Naming) string {
	if naming == SnakePlural {
		return plurals.Plural(strcase.ToSnake(typeName))
	}
	return typeName
}
