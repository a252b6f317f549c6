package sequel

import "strings"

// Mode selects how a ClauseSet flattens its clauses.
type Mode int

const (
	// Joined renders every clause the same way and joins them with the set glue.
	Joined Mode = iota
	// Predicate lets each clause bring its own operator, so AND/OR or several join
	// kinds can be mixed inside one keyword in call order.
	Predicate
)

func (m Mode) String() string {
	switch m {
	case Joined:
		return "joined"
	case Predicate:
		return "predicate"
	default:
		return "unknown"
	}
}

// Format is the set level formatting of a keyword. It is fixed by the first
// registration of the keyword.
type Format struct {
	Glue string
	Pre  string
	Post string
	Mode Mode
}

// Clause is the contribution of a single builder call.
type Clause struct {
	tokens []string
	glue   string
	pre    string
}

// NewClause copies tokens, so the caller keeps ownership of its slice.
// glue joins the tokens together and, in predicate mode, joins the clause to the
// one before it. pre replaces glue when the clause comes first in a predicate set.
func NewClause(glue, pre string, tokens ...string) Clause {
	cp := make([]string, len(tokens))
	copy(cp, tokens)
	return Clause{tokens: cp, glue: glue, pre: pre}
}

func (c Clause) Tokens() []string {
	cp := make([]string, len(c.tokens))
	copy(cp, c.tokens)
	return cp
}

func (c Clause) Glue() string { return c.glue }

func (c Clause) Pre() string { return c.pre }

func (c Clause) String() string {
	return strings.Join(c.tokens, c.glue)
}

func (c Clause) empty() bool {
	for _, t := range c.tokens {
		if t != "" {
			return false
		}
	}
	return true
}

// ClauseSet holds every clause registered under one keyword, in call order.
type ClauseSet struct {
	keyword string
	format  Format
	clauses []Clause
}

func newClauseSet(keyword string, f Format) *ClauseSet {
	return &ClauseSet{keyword: keyword, format: f}
}

func (s *ClauseSet) Keyword() string { return s.keyword }

func (s *ClauseSet) Format() Format { return s.format }

func (s *ClauseSet) Len() int { return len(s.clauses) }

func (s *ClauseSet) add(c Clause) {
	s.clauses = append(s.clauses, c)
}

func (s *ClauseSet) empty() bool {
	for _, c := range s.clauses {
		if !c.empty() {
			return false
		}
	}
	return true
}

// String renders the set. A set without clauses renders as "", a set whose clauses
// carry no text renders as its trimmed pre and post (the SELECT and DELETE markers).
func (s *ClauseSet) String() string {
	if len(s.clauses) == 0 {
		return ""
	}
	if s.empty() {
		return strings.TrimSpace(s.format.Pre + s.format.Post)
	}

	var sb strings.Builder
	sb.WriteString(s.format.Pre)
	switch s.format.Mode {
	case Predicate:
		for i, c := range s.clauses {
			if i == 0 {
				sb.WriteString(c.pre)
			} else {
				sb.WriteString(c.glue)
			}
			sb.WriteString(c.String())
		}
	default:
		for i, c := range s.clauses {
			if i > 0 {
				sb.WriteString(s.format.Glue)
			}
			sb.WriteString(c.pre)
			sb.WriteString(c.String())
		}
	}
	sb.WriteString(s.format.Post)
	return sb.String()
}
