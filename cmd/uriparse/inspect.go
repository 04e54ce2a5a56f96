package main

import (
	"net/netip"
	"strconv"
	"strings"

	"github.com/miekg/dns"
)

// describeHost classifies a host for display. It never rejects anything;
// hosts the parser kept verbatim are reported as opaque.
func describeHost(host string) string {
	if host == "" {
		return "empty"
	}
	if addr, err := netip.ParseAddr(strings.TrimSuffix(strings.TrimPrefix(host, "["), "]")); err == nil {
		if addr.Is4() {
			return "ipv4"
		}
		return "ipv6"
	}
	if labels, ok := dns.IsDomainName(host); ok && isHostname(host) {
		return "domain, " + strconv.Itoa(labels) + " labels"
	}
	return "opaque"
}

// isHostname reports whether s contains only letters, digits, '-' and '.',
// the characters of a registered name that IsDomainName does not restrict.
func isHostname(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9', c == '-', c == '.':
		default:
			return false
		}
	}
	return true
}
