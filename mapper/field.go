package mapper

import (
	"database/sql/driver"
	"reflect"
	"strings"
	"time"

	"github.com/iancoleman/strcase"
	"github.com/mitranim/refut"
)

type field struct {
	Name    string
	GoName  string
	IsPK    bool
	Virtual bool
	Type    reflect.Type
}

type fieldTag struct {
	Name    string
	Virtual bool
	PK      bool
}

// fieldMetadataFromTag parses tags like `sql:"col=Name pk=true"`.
func fieldMetadataFromTag(t string) fieldTag {
	var tag fieldTag
	for _, tuple := range strings.Fields(t) {
		key, value, _ := strings.Cut(tuple, "=")
		switch key {
		case "col":
			tag.Name = value
		case "pk":
			tag.PK = value == "" || value == "true"
		}
	}
	if tag.Name == "_" {
		tag.Virtual = true
	}
	return tag
}

var (
	valuerType = reflect.TypeOf((*driver.Valuer)(nil)).Elem()
	timeType   = reflect.TypeOf(time.Time{})
	bytesType  = reflect.TypeOf([]byte(nil))
)

// isColumnType reports whether values of t fit in a single column. Pointers are
// allowed for nullable columns.
func isColumnType(t reflect.Type) bool {
	if t.Implements(valuerType) || reflect.PtrTo(t).Implements(valuerType) {
		return true
	}
	// []byte is a blob, the one slice kept as a column.
	if t == bytesType {
		return true
	}
	t = refut.RtypeDeref(t)
	if t == timeType {
		return true
	}
	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func columnName(goName string, naming Naming) string {
	if naming == SnakePlural {
		return strcase.ToSnake(goName)
	}
	return goName
}

// fieldsOf lists the fields of a struct type in declaration order, with the
// fields of embedded structs in place of the embedded field.
func fieldsOf(rtype reflect.Type, naming Naming) ([]*field, error) {
	var fms []*field
	err := refut.TraverseStructRtype(rtype, func(sfield reflect.StructField, _ []int) error {
		if sfield.PkgPath != "" {
			return nil
		}
		if sfield.Anonymous && refut.RtypeDeref(sfield.Type).Kind() == reflect.Struct {
			return nil
		}
		tag := fieldMetadataFromTag(sfield.Tag.Get("sql"))
		fm := &field{
			GoName:  sfield.Name,
			Type:    sfield.Type,
			IsPK:    tag.PK,
			Virtual: tag.Virtual || !isColumnType(sfield.Type),
		}
		if tag.Name != "" && !tag.Virtual {
			fm.Name = tag.Name
		} else {
			fm.Name = columnName(sfield.Name, naming)
		}
		fms = append(fms, fm)
		return nil
	})
	return fms, err
}
