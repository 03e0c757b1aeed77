package fetch

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch(t *testing.T) {
	var gotAgent string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		w.Write([]byte("0.0.0.0 ads.example.com\n"))
	}))
	defer ts.Close()

	f := NewFetcher(5*time.Second, "update-hosts-test/1.0")
	list, err := f.Fetch(ts.URL)
	require.NoError(t, err)

	assert.Equal(t, "update-hosts-test/1.0", gotAgent)
	assert.Equal(t, ts.URL, list.URL)
	assert.Equal(t, []byte("0.0.0.0 ads.example.com\n"), list.Body)
	assert.Equal(t, Fingerprint(list.Body), list.Fingerprint)
}

func TestFetchNon200(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer ts.Close()

	f := NewFetcher(5*time.Second, "update-hosts-test/1.0")
	_, err := f.Fetch(ts.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}

func TestFingerprintStable(t *testing.T) {
	a := Fingerprint([]byte("same"))
	b := Fingerprint([]byte("same"))
	c := Fingerprint([]byte("different"))
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}

func TestCombineFingerprints(t *testing.T) {
	one := CombineFingerprints([]string{"aa", "bb"})
	two := CombineFingerprints([]string{"aa", "bb"})
	other := CombineFingerprints([]string{"bb", "aa"})
	assert.Equal(t, one, two)
	assert.NotEqual(t, one, other)
}
