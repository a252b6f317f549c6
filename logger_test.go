package sequel

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	lines []string
}

func (r *recordingLogger) record(level, format string, args ...any) {
	r.lines = append(r.lines, level+" "+fmt.Sprintf(format, args...))
}

func (r *recordingLogger) Debugf(format string, args ...any) { r.record("debug", format, args...) }
func (r *recordingLogger) Infof(format string, args ...any)  { r.record("info", format, args...) }
func (r *recordingLogger) Warnf(format string, args ...any)  { r.record("warn", format, args...) }
func (r *recordingLogger) Errorf(format string, args ...any) { r.record("error", format, args...) }

func TestLogger(t *testing.T) {
	t.Run("parse log level", func(t *testing.T) {
		l, err := ParseLogLevel("PROD")
		require.NoError(t, err)
		assert.Equal(t, LogLevelProd, l)

		l, err = ParseLogLevel("dev")
		require.NoError(t, err)
		assert.Equal(t, LogLevelDev, l)
		assert.Equal(t, "dev", l.String())

		_, err = ParseLogLevel("verbose")
		assert.ErrorIs(t, err, ErrInvalidLogLevel)
	})

	t.Run("new logger", func(t *testing.T) {
		l, err := NewLogger(LogLevelDev)
		require.NoError(t, err)
		assert.NotNil(t, l)

		_, err = NewLogger(LogLevel(7))
		assert.ErrorIs(t, err, ErrInvalidLogLevel)
	})

	t.Run("template switches and errors are logged", func(t *testing.T) {
		rec := &recordingLogger{}
		SetLogger(rec)
		defer SetLogger(nil)

		New().Update("dbo.Test")
		ts, err := NewTemplates(nil)
		require.NoError(t, err)
		_, err = ts.New("merge")
		require.Error(t, err)

		require.Len(t, rec.lines, 2)
		assert.Equal(t, "debug template switched from select to update", rec.lines[0])
		assert.Contains(t, rec.lines[1], "error selecting template")
		assert.Same(t, Logger(rec), Log())
	})
}
