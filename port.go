package uri

import (
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/urikit/uri/internal/errorutil"
	"github.com/urikit/uri/internal/grammar"
)

// defaultPorts maps well-known schemes to their registered ports.
var defaultPorts = map[string]uint16{
	"ftp":    21,
	"ssh":    22,
	"telnet": 23,
	"http":   80,
	"ws":     80,
	"https":  443,
	"wss":    443,
	"ftps":   990,
}

// Port returns the port digits after the host, or "" when absent. A ':'
// with no digits after it yields an empty but present port.
func (c *core[S]) Port() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensurePort()
	if c.offs.portStart == len(c.data) {
		return ""
	}
	return c.substr(c.offs.portStart+1, c.authorityUpper())
}

// HasPort reports whether the authority carries a port separator.
func (c *core[S]) HasPort() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensurePort()
	return c.offs.portStart != len(c.data)
}

// PortUint16 returns the port as an integer, falling back to the scheme's
// default when the port is absent or empty. Zero means no port is known.
func (c *core[S]) PortUint16() uint16 {
	if p := c.Port(); p != "" {
		if v, err := strconv.ParseUint(p, 10, 16); err == nil {
			return uint16(v)
		}
		return 0
	}
	return c.DefaultPort()
}

// DefaultPort returns the registered default port of the scheme, or zero for
// schemes without one.
func (c *core[S]) DefaultPort() uint16 {
	return defaultPorts[c.Scheme()]
}

// SetPort replaces, inserts or, given "", removes the port. A leading ':' on
// the argument is ignored. The port must be decimal digits in [1, 65535].
// Setting a port on a URI without an authority is rejected.
func (u *URI) SetPort(port string) error {
	port = strings.TrimPrefix(port, ":")
	if port != "" {
		if !grammar.IsDigits(port) {
			return errtrace.Wrap(errorutil.NewInvalidArgumentError("port %q", port))
		}
		v, err := strconv.ParseUint(port, 10, 16)
		if err != nil || v == 0 {
			return errtrace.Wrap(errorutil.NewInvalidArgumentError("port %q out of range", port))
		}
	}
	return errtrace.Wrap(u.setRawPort(port))
}

// SetPortUint16 sets the port from an integer. Zero is rejected, use
// [URI.ClearPort] to remove the port.
func (u *URI) SetPortUint16(port uint16) error {
	if port == 0 {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("port 0"))
	}
	return errtrace.Wrap(u.setRawPort(strconv.FormatUint(uint64(port), 10)))
}

// ClearPort removes the port and its ':' separator, if any.
func (u *URI) ClearPort() {
	u.setRawPort("") //nolint:errcheck
}

// setRawPort splices validated port digits into place.
func (u *URI) setRawPort(port string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.ensurePort()

	n := len(u.data)
	if u.offs.portStart != n {
		if port == "" {
			u.replaceRange(u.offs.portStart, u.authorityUpper(), "")
		} else {
			u.replaceRange(u.offs.portStart+1, u.authorityUpper(), port)
		}
		return nil
	}
	if port == "" {
		return nil
	}
	if u.offs.authorityStart == n {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("port without authority"))
	}
	pos := u.authorityUpper()
	u.replaceRange(pos, pos, ":"+port)
	return nil
}
