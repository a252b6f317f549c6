// Package sequel assembles SQL statements from clause fragments.
//
// Builder calls can come in any order: every fragment is filed under a keyword and
// the active template decides where each keyword lands in the output. Inside a
// keyword, fragments keep their call order.
//
//	sql := sequel.New().
//		Select("*").
//		From("dbo.Test").
//		Where("Id = 1").
//		WhereOr("Id = 2").
//		ToSql()
//
// A SqlBuilder is not safe for concurrent mutation. Once callers stop mutating it,
// ToSql may be called from any number of goroutines.
package sequel

import (
	"fmt"
	"strings"
)

// SqlBuilder accumulates clauses and renders them through its active template.
// Every clause method mutates the builder and returns the same pointer.
type SqlBuilder struct {
	tmpl    Template
	clauses map[string]*ClauseSet
	order   []string
	pre     string
	post    string
}

// Option configures a builder at construction.
type Option func(*SqlBuilder)

// WithPre sets text written verbatim before the statement, e.g. a CTE prologue.
func WithPre(pre string) Option {
	return func(b *SqlBuilder) {
		b.pre = pre
	}
}

// WithPost sets text written verbatim after the statement.
func WithPost(post string) Option {
	return func(b *SqlBuilder) {
		b.post = post
	}
}

// New returns an empty builder using the select template.
func New(opts ...Option) *SqlBuilder {
	return newBuilder(canonical[KindSelect], opts)
}

// NewCustom returns an empty builder rendering through the given keyword order.
func NewCustom(keywords []string, opts ...Option) (*SqlBuilder, error) {
	t, err := CustomTemplate("custom", keywords...)
	if err != nil {
		logger.Errorf("creating builder: %v", err)
		return nil, err
	}
	return newBuilder(t, opts), nil
}

func newBuilder(t Template, opts []Option) *SqlBuilder {
	b := &SqlBuilder{
		tmpl:    t,
		clauses: map[string]*ClauseSet{},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Template returns the active template.
func (b *SqlBuilder) Template() Template {
	return b.tmpl
}

// Keywords lists registered keywords in first registration order.
func (b *SqlBuilder) Keywords() []string {
	cp := make([]string, len(b.order))
	copy(cp, b.order)
	return cp
}

// ClauseSet returns the set registered under keyword, if any.
func (b *SqlBuilder) ClauseSet(keyword string) (*ClauseSet, bool) {
	s, ok := b.clauses[keyword]
	return s, ok
}

// AddClause files c under keyword. f only applies when the keyword is new; an
// existing set keeps the format it was created with.
func (b *SqlBuilder) AddClause(keyword string, f Format, c Clause) *SqlBuilder {
	s, ok := b.clauses[keyword]
	if !ok {
		s = newClauseSet(keyword, f)
		b.clauses[keyword] = s
		b.order = append(b.order, keyword)
	}
	s.add(c)
	return b
}

func (b *SqlBuilder) use(kind Kind) {
	t := canonical[kind]
	if b.tmpl.name != t.name {
		logger.Debugf("template switched from %s to %s", b.tmpl.name, t.name)
	}
	b.tmpl = t
}

// ToSql renders the statement. It does not change the builder, so it can be
// called any number of times.
func (b *SqlBuilder) ToSql() string {
	sections := make([]string, 0, len(b.tmpl.keywords))
	for _, kw := range b.tmpl.keywords {
		s, ok := b.clauses[kw]
		if !ok {
			continue
		}
		if frag := s.String(); frag != "" {
			sections = append(sections, frag)
		}
	}
	return b.pre + strings.Join(sections, " ") + b.post
}

func (b *SqlBuilder) String() string {
	return b.ToSql()
}

// GoString helps when a builder shows up in test failures.
func (b *SqlBuilder) GoString() string {
	return fmt.Sprintf("sequel.SqlBuilder{template: %q, sql: %q}", b.tmpl.name, b.ToSql())
}
