package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefixWriter(t *testing.T) {
	var out bytes.Buffer
	pw := NewPrefixWriter("| ", &out)

	n, err := pw.Write([]byte("one\ntwo\n"))
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.Equal(t, "| one\n| two\n", out.String())
}

func TestPrefixWriterBuffersPartialLines(t *testing.T) {
	var out bytes.Buffer
	pw := NewPrefixWriter("> ", &out)

	_, err := pw.Write([]byte("hel"))
	require.NoError(t, err)
	assert.Empty(t, out.String())

	_, err = pw.Write([]byte("lo\n"))
	require.NoError(t, err)
	assert.Equal(t, "> hello\n", out.String())
}
