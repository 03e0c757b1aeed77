package hostlist

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	merged := Merge(
		[]string{"z.example.com", "a.example.com"},
		[]string{"a.example.com", "m.example.com"},
	)
	assert.Equal(t, []string{"a.example.com", "m.example.com", "z.example.com"}, merged)
}

func TestMergeEmpty(t *testing.T) {
	assert.Empty(t, Merge())
	assert.Empty(t, Merge(nil, nil))
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	base := []string{"127.0.0.1 localhost", "::1 localhost"}
	domains := []string{"a.example.com", "b.example.com"}
	require.NoError(t, Render(&buf, base, "0.0.0.0", domains, 3))

	out := buf.String()
	lines := strings.Split(out, "\n")

	assert.True(t, strings.HasPrefix(lines[0], "# Generated by update-hosts on "))
	assert.Equal(t, "# Sources: 3, blocked domains: 2", lines[1])
	assert.Contains(t, out, "\n127.0.0.1 localhost\n::1 localhost\n")
	assert.Contains(t, out, "0.0.0.0\ta.example.com\n0.0.0.0\tb.example.com\n")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestRenderNoBase(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, nil, "127.0.0.1", []string{"a.example.com"}, 1))
	assert.Contains(t, buf.String(), "127.0.0.1\ta.example.com\n")
}
