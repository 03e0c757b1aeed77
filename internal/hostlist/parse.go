package hostlist

import (
	"bufio"
	"io"
	"regexp"
	"strings"
)

// entryPattern matches hosts-format lines: an IPv4-looking token at
// the start of the line. Octets are deliberately not range-checked.
var entryPattern = regexp.MustCompile(`^\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}\b`)

// ParseList extracts blocked domains from a plaintext hosts-format
// blocklist. A line yields a domain when it starts with an IPv4
// address, does not mention localhost anywhere, and has a second
// whitespace-separated token once inline comments are stripped.
// Anything else is skipped, never fatal.
func ParseList(r io.Reader) ([]string, error) {
	var domains []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || !entryPattern.MatchString(line) {
			continue
		}
		if strings.Contains(line, "localhost") {
			continue
		}
		if i := strings.Index(line, "#"); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		domains = append(domains, fields[1])
	}
	return domains, scanner.Err()
}
