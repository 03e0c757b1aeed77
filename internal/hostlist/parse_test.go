package hostlist

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseList(t *testing.T) {
	input := strings.Join([]string{
		"# AdServers blocklist",
		"",
		"127.0.0.1 localhost",
		"0.0.0.0 ads.example.com",
		"0.0.0.0 tracker.example.net # telemetry endpoint",
		"0.0.0.0\tbanner.example.org",
		"0.0.0.0example.com",
		"0.0.0.0",
		"ads.bare-domain.example",
		"::1 ip6.example.com",
		"0.0.0.0 cdn.localhost.example.com",
	}, "\n")

	domains, err := ParseList(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"ads.example.com",
		"tracker.example.net",
		"banner.example.org",
	}, domains)
}

func TestParseListCommentGluedToDomain(t *testing.T) {
	domains, err := ParseList(strings.NewReader("0.0.0.0 ads.example.com#comment\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"ads.example.com"}, domains)
}

func TestParseListOctetsNotRangeChecked(t *testing.T) {
	domains, err := ParseList(strings.NewReader("999.1.1.1 odd.example.com\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"odd.example.com"}, domains)
}

func TestParseListEmptyAndHTMLBodies(t *testing.T) {
	domains, err := ParseList(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, domains)

	domains, err = ParseList(strings.NewReader("<html><body>not found</body></html>"))
	require.NoError(t, err)
	assert.Empty(t, domains)
}
