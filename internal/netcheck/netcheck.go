package netcheck

import (
	"errors"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/miekg/dns"
	gnet "github.com/shirou/gopsutil/v3/net"
)

// ErrNoConnectivity is returned when neither DNS nor HTTP probes get a
// response. Callers map it to the dedicated exit code.
var ErrNoConnectivity = errors.New("no network connectivity")

type Options struct {
	ProbeHost string
	ProbeURL  string
	Timeout   time.Duration
}

// Check verifies the machine can reach the network before an update
// run starts. Interface and route checks are advisory (logged only);
// the run is aborted only when both the DNS and HTTP probes fail.
func Check(opts Options) error {
	if opts.Timeout == 0 {
		opts.Timeout = 10 * time.Second
	}

	if !hasActiveInterface() {
		log.Println("Warning: no non-loopback interface reports up")
	}
	if !defaultRoutePresent() {
		log.Println("Warning: no default route found")
	}

	dnsOK := probeDNS(opts.ProbeHost, opts.Timeout)
	httpOK := probeHTTP(opts.ProbeURL, opts.Timeout)
	if !dnsOK && !httpOK {
		return ErrNoConnectivity
	}
	return nil
}

func hasActiveInterface() bool {
	ifaces, err := gnet.Interfaces()
	if err != nil {
		// Can't tell; don't block the run on an inspection failure.
		return true
	}
	for _, iface := range ifaces {
		up, loopback := false, false
		for _, flag := range iface.Flags {
			switch flag {
			case "up":
				up = true
			case "loopback":
				loopback = true
			}
		}
		if up && !loopback {
			return true
		}
	}
	return false
}

// probeDNS resolves host against the system resolvers, preferring a
// direct miekg/dns query and falling back to the Go resolver. Any
// response from a server counts: a reachable resolver is proof of
// connectivity even if it answers NXDOMAIN.
func probeDNS(host string, timeout time.Duration) bool {
	if host == "" {
		return false
	}
	if cc, err := dns.ClientConfigFromFile("/etc/resolv.conf"); err == nil {
		client := &dns.Client{Timeout: timeout}
		msg := new(dns.Msg)
		msg.SetQuestion(dns.Fqdn(host), dns.TypeA)
		for _, server := range cc.Servers {
			if in, _, err := client.Exchange(msg, net.JoinHostPort(server, cc.Port)); err == nil && in != nil {
				return true
			}
		}
	}
	ips, err := net.LookupIP(host)
	return err == nil && len(ips) > 0
}

// probeHTTP considers any HTTP response proof of reachability; the
// status code is irrelevant.
func probeHTTP(url string, timeout time.Duration) bool {
	if url == "" {
		return false
	}
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(url)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return true
}
