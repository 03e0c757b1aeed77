package update

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Willsatroyd/Update-Hosts/internal/config"
	"github.com/Willsatroyd/Update-Hosts/internal/netcheck"
)

const listBody = "# test list\n127.0.0.1 localhost\n0.0.0.0 b.example.com\n0.0.0.0 a.example.com # ad server\n0.0.0.0 b.example.com\n"

func testConfig(t *testing.T, ts *httptest.Server) *config.Config {
	t.Helper()
	dir := t.TempDir()
	base := filepath.Join(dir, "base-hosts")
	require.NoError(t, os.WriteFile(base, []byte("127.0.0.1 localhost\n"), 0644))
	return &config.Config{
		BlockIP:        "0.0.0.0",
		Sources:        []string{ts.URL},
		BaseHostsFile:  base,
		HostsFile:      filepath.Join(dir, "hosts"),
		ProbeURL:       ts.URL,
		TimeoutSeconds: 5,
		UserAgent:      "update-hosts-test/1.0",
	}
}

func TestRunDryRun(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, listBody)
	}))
	defer ts.Close()

	cfg := testConfig(t, ts)
	report, err := Run(cfg, Options{DryRun: true})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Sources)
	assert.Equal(t, 2, report.Domains)
	assert.Equal(t, 1, report.Duplicates)
	assert.False(t, report.Written)
	assert.NotEmpty(t, report.Fingerprint)

	_, err = os.Stat(cfg.HostsFile)
	assert.True(t, os.IsNotExist(err), "dry run must not write the hosts file")
}

func TestRunSkipFingerprint(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, listBody)
	}))
	defer ts.Close()

	cfg := testConfig(t, ts)
	first, err := Run(cfg, Options{DryRun: true})
	require.NoError(t, err)

	second, err := Run(cfg, Options{SkipFingerprint: first.Fingerprint})
	require.NoError(t, err)
	assert.False(t, second.Written)

	_, err = os.Stat(cfg.HostsFile)
	assert.True(t, os.IsNotExist(err), "unchanged lists must not be rewritten")
}

func TestRunFetchFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/list" {
			http.Error(w, "gone", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	cfg := testConfig(t, ts)
	cfg.Sources = []string{ts.URL + "/list"}
	_, err := Run(cfg, Options{DryRun: true})
	require.Error(t, err)
	assert.Equal(t, 3, ExitCode(err))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 2, ExitCode(netcheck.ErrNoConnectivity))
	assert.Equal(t, 2, ExitCode(fmt.Errorf("preflight: %w", netcheck.ErrNoConnectivity)))
	assert.Equal(t, 3, ExitCode(errors.New("boom")))
}
