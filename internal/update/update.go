package update

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Willsatroyd/Update-Hosts/internal/config"
	"github.com/Willsatroyd/Update-Hosts/internal/fetch"
	"github.com/Willsatroyd/Update-Hosts/internal/flush"
	"github.com/Willsatroyd/Update-Hosts/internal/hostlist"
	"github.com/Willsatroyd/Update-Hosts/internal/hostsfile"
	"github.com/Willsatroyd/Update-Hosts/internal/netcheck"
)

type Options struct {
	// DryRun renders the hosts file but writes and flushes nothing.
	DryRun bool
	// SkipFingerprint, when it matches the combined fingerprint of the
	// fetched lists, skips the write and flush. The daemon uses it to
	// avoid rewriting identical output between refreshes.
	SkipFingerprint string
}

type Report struct {
	HostsPath   string
	Sources     int
	Domains     int
	Duplicates  int
	Fingerprint string
	Written     bool
}

// Run executes the whole pipeline: connectivity check, base load,
// sequential fetch, parse, merge, render, write, flush. Any failure
// aborts the run.
func Run(cfg *config.Config, opts Options) (*Report, error) {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second

	if err := netcheck.Check(netcheck.Options{
		ProbeHost: cfg.ProbeHost,
		ProbeURL:  cfg.ProbeURL,
		Timeout:   timeout,
	}); err != nil {
		return nil, err
	}

	baseLines, err := hostsfile.ReadLines(cfg.BaseHostsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read base hosts file: %v", err)
	}

	fetcher := fetch.NewFetcher(timeout, cfg.UserAgent)
	var (
		lists        [][]string
		fingerprints []string
		raw          int
	)
	for _, url := range cfg.Sources {
		list, err := fetcher.Fetch(url)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %s: %v", url, err)
		}
		domains, err := hostlist.ParseList(bytes.NewReader(list.Body))
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %v", url, err)
		}
		log.Printf("Fetched %s: %d entries", url, len(domains))
		lists = append(lists, domains)
		fingerprints = append(fingerprints, list.Fingerprint)
		raw += len(domains)
	}

	merged := hostlist.Merge(lists...)
	report := &Report{
		HostsPath:   hostsfile.Path(cfg.HostsFile),
		Sources:     len(cfg.Sources),
		Domains:     len(merged),
		Duplicates:  raw - len(merged),
		Fingerprint: fetch.CombineFingerprints(fingerprints),
	}

	if opts.SkipFingerprint != "" && opts.SkipFingerprint == report.Fingerprint {
		log.Println("Blocklists unchanged since last run, skipping rewrite")
		return report, nil
	}

	var buf bytes.Buffer
	if err := hostlist.Render(&buf, baseLines, cfg.BlockIP, merged, len(cfg.Sources)); err != nil {
		return nil, err
	}

	if opts.DryRun {
		return report, nil
	}

	if err := hostsfile.Write(report.HostsPath, buf.Bytes()); err != nil {
		return nil, err
	}
	if err := flush.Flush(); err != nil {
		return nil, err
	}
	report.Written = true
	log.Printf("Wrote %s: %d blocked domains from %d sources", report.HostsPath, report.Domains, report.Sources)
	return report, nil
}

// ExitCode maps a pipeline error to the process exit code: 0 success,
// 2 no connectivity, 3 anything else.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, netcheck.ErrNoConnectivity):
		return 2
	default:
		return 3
	}
}
