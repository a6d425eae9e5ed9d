package uri

import (
	"strings"

	"braces.dev/errtrace"
	"github.com/miekg/dns"

	"github.com/urikit/uri/internal/errorutil"
	"github.com/urikit/uri/internal/grammar"
)

// Domains returns the dot separated labels of the decoded host, left to
// right, or nil when the host is empty or an IP literal.
func (c *core[S]) Domains() []string {
	h, err := c.HostDecoded()
	if err != nil || h == "" || c.IsIP() {
		return nil
	}
	return dns.SplitDomainName(h)
}

// TopLevelDomain returns the last label of the host, or "" for empty hosts
// and IP literals.
func (c *core[S]) TopLevelDomain() string {
	labels := c.Domains()
	if len(labels) == 0 {
		return ""
	}
	return labels[len(labels)-1]
}

// HasTopLevelDomain reports whether the host has at least one domain label.
func (c *core[S]) HasTopLevelDomain() bool {
	return c.TopLevelDomain() != ""
}

// SecondLevelDomain returns the label left of the top-level domain, or ""
// when the host has fewer than two labels.
func (c *core[S]) SecondLevelDomain() string {
	labels := c.Domains()
	if len(labels) < 2 {
		return ""
	}
	return labels[len(labels)-2]
}

// HasSecondLevelDomain reports whether the host has at least two labels.
func (c *core[S]) HasSecondLevelDomain() bool {
	return c.SecondLevelDomain() != ""
}

// Subdomains returns everything left of the second-level domain, dots
// preserved, or "" when the host has fewer than three labels.
func (c *core[S]) Subdomains() string {
	labels := c.Domains()
	if len(labels) < 3 {
		return ""
	}
	return strings.Join(labels[:len(labels)-2], ".")
}

// HasSubdomains reports whether the host has more than two labels.
func (c *core[S]) HasSubdomains() bool {
	return c.Subdomains() != ""
}

// SetTopLevelDomain replaces the last label of the host, or sets the whole
// host when it is empty. IP literal hosts and IP-shaped arguments are
// rejected, an address has no domain structure.
func (u *URI) SetTopLevelDomain(tld string) error {
	if err := checkDomainArg(tld); err != nil {
		return errtrace.Wrap(err)
	}
	labels := u.Domains()
	if len(labels) == 0 {
		if u.IsIP() {
			return errtrace.Wrap(errorutil.NewInvalidArgumentError("host is an ip literal"))
		}
		return errtrace.Wrap(u.SetHost(tld))
	}
	labels[len(labels)-1] = tld
	return errtrace.Wrap(u.SetHost(strings.Join(labels, ".")))
}

// SetSecondLevelDomain replaces the label left of the top-level domain,
// inserting one when the host is a bare top-level domain.
func (u *URI) SetSecondLevelDomain(sld string) error {
	if err := checkDomainArg(sld); err != nil {
		return errtrace.Wrap(err)
	}
	labels := u.Domains()
	switch {
	case len(labels) == 0:
		if u.IsIP() {
			return errtrace.Wrap(errorutil.NewInvalidArgumentError("host is an ip literal"))
		}
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("host has no top-level domain"))
	case len(labels) == 1:
		return errtrace.Wrap(u.SetHost(sld + "." + labels[0]))
	default:
		labels[len(labels)-2] = sld
		return errtrace.Wrap(u.SetHost(strings.Join(labels, ".")))
	}
}

// SetSubdomains replaces everything left of the second-level domain. The
// host must already have at least two labels.
func (u *URI) SetSubdomains(sub string) error {
	if sub != "" {
		if err := checkDomainArg(sub); err != nil {
			return errtrace.Wrap(err)
		}
	}
	labels := u.Domains()
	if len(labels) < 2 {
		if u.IsIP() {
			return errtrace.Wrap(errorutil.NewInvalidArgumentError("host is an ip literal"))
		}
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("host has no second-level domain"))
	}
	base := strings.Join(labels[len(labels)-2:], ".")
	if sub == "" {
		return errtrace.Wrap(u.SetHost(base))
	}
	return errtrace.Wrap(u.SetHost(sub + "." + base))
}

// ClearSubdomains reduces the host to its last two labels.
func (u *URI) ClearSubdomains() error {
	return errtrace.Wrap(u.SetSubdomains(""))
}

// checkDomainArg rejects empty and IP-shaped domain arguments.
func checkDomainArg(s string) error {
	switch {
	case s == "":
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("empty domain"))
	case grammar.IsIPv4(s), grammar.IsIPv6(s):
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("domain %q is an ip literal", s))
	}
	return nil
}
