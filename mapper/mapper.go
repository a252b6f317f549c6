// Package mapper derives CRUD statements for a Go struct type.
//
// The table is named after the type and every exported field that fits in a
// single column becomes a column:
//
//	type Employee struct {
//		Id     int
//		Name   string
//		Salary int `sql:"col=Pay"`
//		Notes  string `sql:"col=_"`
//	}
//
//	m := mapper.MustNew[Employee]()
//	m.UpdateSql().ToSql() // UPDATE Employee SET Name = @Name, Pay = @Pay WHERE Id = @Id
//
// Statements use @name parameters and are fresh builders on every call, so they
// can be extended with more clauses.
package mapper

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/mitranim/refut"
	"github.com/nhlpa/sequel"
)

// Order is the sort direction of PageSql.
type Order string

const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

func (o Order) desc() bool {
	return strings.EqualFold(string(o), string(Desc))
}

type options struct {
	naming Naming
	table  string
	key    string
}

type Option func(*options)

func WithNaming(n Naming) Option {
	return func(o *options) {
		o.naming = n
	}
}

// WithTable overrides the table name.
func WithTable(table string) Option {
	return func(o *options) {
		o.table = table
	}
}

// WithKey names the key column, overriding pk tags and Id fields.
func WithKey(column string) Option {
	return func(o *options) {
		o.key = column
	}
}

// Mapper holds the table, key and columns of T. It is immutable and safe for
// concurrent use.
type Mapper[T any] struct {
	table  string
	key    string
	fields []string
}

type cacheKey struct {
	rtype  reflect.Type
	naming Naming
}

var metadata sync.Map

func metadataOf(rtype reflect.Type, naming Naming) ([]*field, error) {
	k := cacheKey{rtype, naming}
	if cached, ok := metadata.Load(k); ok {
		return cached.([]*field), nil
	}
	fms, err := fieldsOf(rtype, naming)
	if err != nil {
		return nil, err
	}
	sequel.Log().Debugf("mapper: computed %d fields of %s", len(fms), rtype)
	cached, _ := metadata.LoadOrStore(k, fms)
	return cached.([]*field), nil
}

// New reads the mapping of T, which must be a struct or a pointer to one.
func New[T any](opts ...Option) (*Mapper[T], error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var zero T
	rtype := refut.RtypeDeref(reflect.TypeOf(&zero).Elem())
	if rtype.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s", ErrNotStruct, rtype)
	}

	fms, err := metadataOf(rtype, o.naming)
	if err != nil {
		return nil, err
	}

	var columns []string
	var tagged, named string
	for _, fm := range fms {
		if fm.Virtual {
			continue
		}
		columns = append(columns, fm.Name)
		if fm.IsPK && tagged == "" {
			tagged = fm.Name
		}
		if strings.EqualFold(fm.GoName, "id") && named == "" {
			named = fm.Name
		}
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoFields, rtype)
	}

	key := o.key
	if key == "" {
		key = tagged
	}
	if key == "" {
		key = named
	}
	if key == "" || !contains(columns, key) {
		return nil, fmt.Errorf("%w: %s", ErrNoKey, rtype)
	}

	table := o.table
	if table == "" {
		table = tableName(rtype.Name(), o.naming)
	}
	return NewWithFields[T](table, key, columns...), nil
}

// MustNew is like New but panics on error.
func MustNew[T any](opts ...Option) *Mapper[T] {
	m, err := New[T](opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// NewWithFields maps T to an explicit table, key and column list without
// reflection. The key is moved in front of the other fields, and added when
// missing.
func NewWithFields[T any](table, key string, fields ...string) *Mapper[T] {
	ordered := make([]string, 0, len(fields)+1)
	ordered = append(ordered, key)
	for _, f := range fields {
		if f != key {
			ordered = append(ordered, f)
		}
	}
	return &Mapper[T]{table: table, key: key, fields: ordered}
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

func (m *Mapper[T]) Table() string { return m.table }

func (m *Mapper[T]) Key() string { return m.key }

func (m *Mapper[T]) KeyQualified() string { return m.qualify(m.key) }

// Fields returns every column, key first.
func (m *Mapper[T]) Fields() []string {
	return append([]string(nil), m.fields...)
}

func (m *Mapper[T]) FieldsQualified() []string {
	return m.qualifyAll(m.fields)
}

func (m *Mapper[T]) NonKeyFields() []string {
	return append([]string(nil), m.fields[1:]...)
}

func (m *Mapper[T]) NonKeyFieldsQualified() []string {
	return m.qualifyAll(m.fields[1:])
}

func (m *Mapper[T]) qualify(column string) string {
	return m.table + "." + column
}

func (m *Mapper[T]) qualifyAll(columns []string) []string {
	output := make([]string, 0, len(columns))
	for _, c := range columns {
		output = append(output, m.qualify(c))
	}
	return output
}

func assign(column string) string {
	return sequel.WhereHelpers.Equal(column, sequel.Placeholder(column))
}

// CreateSql inserts every column but the key, which the database assigns.
func (m *Mapper[T]) CreateSql() *sequel.SqlBuilder {
	fields := m.NonKeyFields()
	return sequel.New().
		Insert(m.table).
		Columns(fields...).
		Values(sequel.Placeholders(fields...)...)
}

func (m *Mapper[T]) ReadSql() *sequel.SqlBuilder {
	return sequel.New().
		Select(m.FieldsQualified()...).
		From(m.table)
}

// CountSql counts the rows of the table. Add Where clauses to narrow it.
func (m *Mapper[T]) CountSql() *sequel.SqlBuilder {
	return sequel.New().
		Select(sequel.SelectHelpers.Count("*")).
		From(m.table)
}

func (m *Mapper[T]) UpdateSql() *sequel.SqlBuilder {
	fields := m.NonKeyFields()
	pairs := make([]string, 0, len(fields))
	for _, f := range fields {
		pairs = append(pairs, assign(f))
	}
	return sequel.New().
		Update(m.table).
		Set(pairs...).
		Where(assign(m.key))
}

func (m *Mapper[T]) DeleteSql() *sequel.SqlBuilder {
	return sequel.New().
		Delete().
		From(m.table).
		Where(assign(m.key))
}

// PageSql reads n rows sorted by key. When since is not nil only rows after the
// @key parameter are read, in the direction of order. since itself is not
// rendered, bind it to the key parameter.
func (m *Mapper[T]) PageSql(n int, since any, order Order) *sequel.SqlBuilder {
	b := m.ReadSql().Top(n)
	key := m.KeyQualified()
	if since != nil {
		op := ">"
		if order.desc() {
			op = "<"
		}
		b.Where(sequel.WhereHelpers.Compare(key, op, sequel.Placeholder(m.key)))
	}
	if order.desc() {
		return b.OrderByDesc(key)
	}
	return b.OrderBy(key)
}
