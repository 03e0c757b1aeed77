package fetch

import (
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/crypto/blake2b"
)

// List is the raw body of one downloaded blocklist.
type List struct {
	URL         string
	Body        []byte
	Fingerprint string
}

type Fetcher struct {
	client    *http.Client
	userAgent string
}

func NewFetcher(timeout time.Duration, userAgent string) *Fetcher {
	return &Fetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Fetch downloads one blocklist. Callers fetch sources one at a time,
// in configured order.
func (f *Fetcher) Fetch(url string) (*List, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &List{URL: url, Body: body, Fingerprint: Fingerprint(body)}, nil
}

// Fingerprint returns the hex BLAKE2b-256 digest of a list body.
func Fingerprint(body []byte) string {
	sum := blake2b.Sum256(body)
	return hex.EncodeToString(sum[:])
}

// CombineFingerprints collapses per-source fingerprints into a single
// digest for the whole run.
func CombineFingerprints(fingerprints []string) string {
	sum := blake2b.Sum256([]byte(strings.Join(fingerprints, "\n")))
	return hex.EncodeToString(sum[:])
}
