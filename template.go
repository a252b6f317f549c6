package sequel

import (
	"fmt"
	"sort"
	"strings"
)

// Kind is a statement kind with a canonical template.
type Kind string

const (
	KindSelect Kind = "select"
	KindInsert Kind = "insert"
	KindUpdate Kind = "update"
	KindDelete Kind = "delete"
)

// Keywords the builder registers clauses under.
const (
	KeywordSelect  = "select"
	KeywordTop     = "top"
	KeywordFields  = "fields"
	KeywordFrom    = "from"
	KeywordJoin    = "join"
	KeywordWhere   = "where"
	KeywordGroupBy = "groupby"
	KeywordHaving  = "having"
	KeywordOrderBy = "orderby"
	KeywordLimit   = "limit"
	KeywordOffset  = "offset"
	KeywordInsert  = "insert"
	KeywordColumns = "columns"
	KeywordValues  = "values"
	KeywordUpdate  = "update"
	KeywordSet     = "set"
	KeywordDelete  = "delete"
)

// Template is an ordered list of keywords. The order decides where each keyword
// lands in the rendered statement, whatever order the builder calls came in.
type Template struct {
	name     string
	keywords []string
}

func newTemplate(name string, keywords ...string) Template {
	cp := make([]string, len(keywords))
	copy(cp, keywords)
	return Template{name: name, keywords: cp}
}

func (t Template) Name() string { return t.name }

func (t Template) Keywords() []string {
	cp := make([]string, len(t.keywords))
	copy(cp, t.keywords)
	return cp
}

func (t Template) String() string {
	return t.name + ": " + strings.Join(t.keywords, ", ")
}

var canonical = map[Kind]Template{
	KindSelect: newTemplate(string(KindSelect),
		KeywordSelect, KeywordTop, KeywordFields, KeywordFrom, KeywordJoin, KeywordWhere,
		KeywordGroupBy, KeywordHaving, KeywordOrderBy, KeywordLimit, KeywordOffset),
	KindInsert: newTemplate(string(KindInsert), KeywordInsert, KeywordColumns, KeywordValues),
	KindUpdate: newTemplate(string(KindUpdate), KeywordUpdate, KeywordSet, KeywordWhere),
	KindDelete: newTemplate(string(KindDelete), KeywordDelete, KeywordFrom, KeywordJoin, KeywordWhere),
}

// TemplateFor returns the canonical template of a statement kind.
func TemplateFor(kind Kind) (Template, bool) {
	t, ok := canonical[kind]
	return t, ok
}

// Templates is a read-only set of named custom templates. Lookups of the four
// statement kinds fall back to their canonical templates.
type Templates struct {
	custom map[string]Template
}

// NewTemplates validates and freezes a set of custom templates.
func NewTemplates(custom map[string][]string) (*Templates, error) {
	ts := &Templates{custom: make(map[string]Template, len(custom))}
	for name, keywords := range custom {
		t, err := CustomTemplate(name, keywords...)
		if err != nil {
			logger.Errorf("registering template %q: %v", name, err)
			return nil, err
		}
		ts.custom[name] = t
	}
	return ts, nil
}

// CustomTemplate builds a template from a keyword list. Blank keywords are ignored.
func CustomTemplate(name string, keywords ...string) (Template, error) {
	var kws []string
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		kws = append(kws, kw)
	}
	if len(kws) == 0 {
		return Template{}, fmt.Errorf("%w: %q has no keywords", ErrEmptyTemplate, name)
	}
	return newTemplate(name, kws...), nil
}

// Lookup finds a template by name.
func (ts *Templates) Lookup(name string) (Template, error) {
	if ts != nil {
		if t, ok := ts.custom[name]; ok {
			return t, nil
		}
	}
	if t, ok := canonical[Kind(name)]; ok {
		return t, nil
	}
	return Template{}, fmt.Errorf("%w: %q", ErrInvalidTemplate, name)
}

// Names lists the custom template names in sorted order.
func (ts *Templates) Names() []string {
	if ts == nil {
		return nil
	}
	names := make([]string, 0, len(ts.custom))
	for name := range ts.custom {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New creates a builder using the named template.
func (ts *Templates) New(name string, opts ...Option) (*SqlBuilder, error) {
	t, err := ts.Lookup(name)
	if err != nil {
		logger.Errorf("selecting template: %v", err)
		return nil, err
	}
	return newBuilder(t, opts), nil
}
