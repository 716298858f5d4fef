package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func run(t *testing.T, s *session, line string) string {
	t.Helper()
	var buf bytes.Buffer
	s.out = &buf
	err := s.execute(strings.Fields(line))
	assert.NoError(t, err)
	return buf.String()
}

func TestReplBasics(t *testing.T) {
	s := newSession(nil)

	out := run(t, s, "insert 10 a")
	assert.Equal(t, "item 1\n", out)
	run(t, s, "insert 5 b")
	run(t, s, "insert 20 c")

	out = run(t, s, "min")
	assert.Contains(t, out, "key=5")
	assert.Contains(t, out, "value=b")

	out = run(t, s, "size")
	assert.Equal(t, "3\n", out)

	out = run(t, s, "pop")
	assert.Contains(t, out, "key=5")

	out = run(t, s, "min")
	assert.Contains(t, out, "key=10")

	out = run(t, s, "trees")
	assert.Equal(t, "1\n", out)
}

func TestReplDecreaseDelete(t *testing.T) {
	s := newSession(nil)
	run(t, s, "insert 100")
	run(t, s, "insert 50")
	run(t, s, "insert 75")

	out := run(t, s, "decrease 1 90")
	assert.Contains(t, out, "key=10")
	out = run(t, s, "min")
	assert.Contains(t, out, "item 1")

	out = run(t, s, "delete 2")
	assert.Equal(t, "OK\n", out)
	out = run(t, s, "size")
	assert.Equal(t, "2\n", out)

	var buf bytes.Buffer
	s.out = &buf
	err := s.execute(strings.Fields("delete 2"))
	assert.Error(t, err)
}

func TestReplFillFlush(t *testing.T) {
	s := newSession(nil)
	out := run(t, s, "fill 100")
	assert.Contains(t, out, "100 total")

	out = run(t, s, "flush")
	assert.Equal(t, "OK\n", out)
	out = run(t, s, "size")
	assert.Equal(t, "0\n", out)
	out = run(t, s, "min")
	assert.Equal(t, "heap is empty\n", out)
}

func TestReplErrors(t *testing.T) {
	s := newSession(nil)

	err := s.execute([]string{"bogus"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")

	err = s.execute([]string{"insert", "notanumber"})
	assert.Error(t, err)

	err = s.execute([]string{"pop"})
	assert.Error(t, err)

	err = s.execute([]string{"decrease", "1", "5"})
	assert.Error(t, err)
}
