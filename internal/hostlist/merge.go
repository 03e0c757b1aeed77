package hostlist

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"time"
)

// Merge combines domain lists into a unique, sorted set.
func Merge(lists ...[]string) []string {
	seen := make(map[string]struct{})
	merged := []string{}
	for _, list := range lists {
		for _, domain := range list {
			if _, ok := seen[domain]; ok {
				continue
			}
			seen[domain] = struct{}{}
			merged = append(merged, domain)
		}
	}
	sort.Strings(merged)
	return merged
}

// Render writes the complete hosts file: generated header, the user's
// base entries verbatim, then one "IP<tab>domain" line per blocked
// domain.
func Render(w io.Writer, baseLines []string, blockIP string, domains []string, sourceCount int) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# Generated by update-hosts on %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(bw, "# Sources: %d, blocked domains: %d\n", sourceCount, len(domains))
	fmt.Fprintln(bw, "# Do not edit; changes are overwritten on the next update.")
	fmt.Fprintln(bw)

	for _, line := range baseLines {
		fmt.Fprintln(bw, line)
	}
	if len(baseLines) > 0 {
		fmt.Fprintln(bw)
	}

	for _, domain := range domains {
		fmt.Fprintf(bw, "%s\t%s\n", blockIP, domain)
	}

	return bw.Flush()
}
