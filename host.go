package uri

import (
	"net"
	"strings"

	"braces.dev/errtrace"

	"github.com/urikit/uri/internal/grammar"
)

// HostKind classifies a host into one of the three RFC 3986 host forms.
type HostKind int

const (
	// HostName is a registered name, anything that is not an IP literal.
	HostName HostKind = iota
	// HostIPv4 is a dotted-decimal IPv4 address.
	HostIPv4
	// HostIPv6 is an IPv6 address, bracketed in the URI text.
	HostIPv6
)

func (k HostKind) String() string {
	switch k {
	case HostIPv4:
		return "ipv4"
	case HostIPv6:
		return "ipv6"
	default:
		return "name"
	}
}

// HostInfo is the classified form of a host component.
// Exactly one interpretation applies: IP is non-nil for the address kinds,
// Name is meaningful for [HostName].
type HostInfo struct {
	Kind HostKind
	Name string
	IP   net.IP
}

// Host returns the raw host, brackets included for IPv6 literals, or ""
// when the URI has no authority.
func (c *core[S]) Host() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	start, end, ok := c.hostRange()
	if !ok {
		return ""
	}
	return c.substr(start, end)
}

// HostDecoded returns the percent-decoded host. IPv6 literals are returned
// unchanged, brackets are not subject to percent-encoding.
func (c *core[S]) HostDecoded() (string, error) {
	h := c.Host()
	if strings.HasPrefix(h, "[") {
		return h, nil
	}
	return errtrace.Wrap2(DecodeComponent(h, RegNameSet))
}

// HasHost reports whether the URI has a non-empty host.
func (c *core[S]) HasHost() bool {
	return c.Host() != ""
}

// HostInfo classifies the host. An absent or unparsable host comes back as
// [HostName] with the raw text in Name.
func (c *core[S]) HostInfo() HostInfo {
	h := c.Host()
	if inner, ok := strings.CutPrefix(h, "["); ok {
		if inner, ok = strings.CutSuffix(inner, "]"); ok && grammar.IsIPv6(inner) {
			return HostInfo{Kind: HostIPv6, Name: inner, IP: net.ParseIP(inner)}
		}
		return HostInfo{Kind: HostName, Name: h}
	}
	if grammar.IsIPv4(h) {
		return HostInfo{Kind: HostIPv4, Name: h, IP: net.ParseIP(h)}
	}
	if grammar.IsIPv6(h) {
		return HostInfo{Kind: HostIPv6, Name: h, IP: net.ParseIP(h)}
	}
	name := h
	if dec, err := DecodeComponent(h, RegNameSet); err == nil {
		name = dec
	}
	return HostInfo{Kind: HostName, Name: name}
}

// IsIP reports whether the host is an IPv4 or IPv6 literal.
func (c *core[S]) IsIP() bool {
	return c.HostInfo().Kind != HostName
}

// SetHost replaces, inserts or, given "", removes the host. Registered names
// are percent-encoded, IPv6 literals are bracketed and kept verbatim.
// Inserting into a URI without an authority also materializes the "//"
// authority prefix.
func (u *URI) SetHost(host string) error {
	var enc string
	switch {
	case host == "":
	case strings.HasPrefix(host, "[") && strings.HasSuffix(host, "]"):
		enc = host
	case grammar.IsIPv6(host):
		enc = "[" + host + "]"
	default:
		enc = EncodeComponent(host, RegNameSet)
	}
	u.setRawHost(enc)
	return nil
}

// ClearHost removes the host, keeping the rest of the authority.
func (u *URI) ClearHost() {
	u.setRawHost("")
}

// setRawHost splices an already-encoded host into place.
func (u *URI) setRawHost(enc string) {
	u.mu.Lock()
	defer u.mu.Unlock()

	start, end, ok := u.hostRange()
	if ok {
		u.replaceRange(start, end, enc)
		return
	}
	if enc == "" {
		return
	}
	n := len(u.data)
	if u.offs.schemeEnd != n {
		u.replaceRange(u.offs.schemeEnd+1, u.offs.schemeEnd+1, "//"+enc)
	} else {
		u.replaceRange(0, 0, "//"+enc)
	}
}
