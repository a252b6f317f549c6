package mapper

import (
	"database/sql"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFieldTag(t *testing.T) {
	t.Run("column and key", func(t *testing.T) {
		tag := fieldMetadataFromTag("col=Title pk=true")
		assert.Equal(t, fieldTag{Name: "Title", PK: true}, tag)
	})

	t.Run("skipped column", func(t *testing.T) {
		assert.True(t, fieldMetadataFromTag("col=_").Virtual)
	})

	t.Run("empty tag", func(t *testing.T) {
		assert.Equal(t, fieldTag{}, fieldMetadataFromTag(""))
	})
}

func TestColumnTypes(t *testing.T) {
	for _, v := range []any{0, int64(0), uint8(0), 1.5, "", true, time.Time{}, []byte(nil), sql.NullString{}, new(int)} {
		assert.True(t, isColumnType(reflect.TypeOf(v)), "%T", v)
	}
	for _, v := range []any{[]int(nil), map[string]int(nil), MockChild{}, &MockChild{}, func() {}} {
		assert.False(t, isColumnType(reflect.TypeOf(v)), "%T", v)
	}
}
