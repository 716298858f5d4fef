package util

import (
	"bytes"
	"strings"
	"testing"
	"time"

	alog "github.com/apex/log"
	"github.com/stretchr/testify/assert"
)

func TestParseTime(t *testing.T) {
	tm, err := ParseTime("2017-08-17T18:55:26Z")
	assert.Nil(t, err)
	assert.True(t, tm.Before(time.Now()))

	tm, err = ParseTime("2017-08-17T18:55:26.554544Z")
	assert.Nil(t, err)
	assert.True(t, tm.Before(time.Now()))

	now := time.Now().UTC()
	then, err := ParseTime(Thens(now))
	assert.Nil(t, err)
	assert.Equal(t, now, then)
}

func TestFileExists(t *testing.T) {
	ok, err := FileExists("/this/path/does/not/exist")
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = FileExists("util_test.go")
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryUsage(t *testing.T) {
	m := MemoryUsage()
	assert.True(t, strings.HasSuffix(m, " MB"))
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Writer: &buf}

	err := h.HandleLog(&alog.Entry{
		Level:   alog.InfoLevel,
		Message: "hello",
		Fields:  alog.Fields{"count": 3},
	})
	assert.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "count")
	assert.Contains(t, out, "=3")
}

func TestNewLogger(t *testing.T) {
	l := NewLogger("warn")
	assert.NotNil(t, l)
}
