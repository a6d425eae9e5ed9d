package uri

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/urikit/uri/internal/errorutil"
	"github.com/urikit/uri/internal/grammar"
	"github.com/urikit/uri/internal/util"
)

// Scheme returns the scheme without the trailing ':', lowercased per the
// case-insensitivity rule of RFC 3986 section 3.1, or "" when absent.
func (c *core[S]) Scheme() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureScheme()
	if c.offs.schemeEnd == len(c.data) {
		return ""
	}
	return util.LCase(c.substr(0, c.offs.schemeEnd))
}

// HasScheme reports whether the URI carries a scheme.
func (c *core[S]) HasScheme() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureScheme()
	return c.offs.schemeEnd != len(c.data)
}

// SetScheme replaces, inserts or, given "", removes the scheme. A trailing
// ':' on the argument is ignored. Anything that does not match the scheme
// rule of RFC 3986 is rejected.
func (u *URI) SetScheme(scheme string) error {
	scheme = strings.TrimSuffix(scheme, ":")
	if scheme != "" && !grammar.IsScheme(scheme) {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("scheme %q", scheme))
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	u.ensureScheme()

	n := len(u.data)
	if u.offs.schemeEnd != n {
		if scheme == "" {
			u.replaceRange(0, u.offs.schemeEnd+1, "")
		} else {
			u.replaceRange(0, u.offs.schemeEnd, scheme)
		}
		return nil
	}
	if scheme != "" {
		u.replaceRange(0, 0, scheme+":")
	}
	return nil
}

// ClearScheme removes the scheme and its ':' separator, if any.
func (u *URI) ClearScheme() {
	u.SetScheme("") //nolint:errcheck
}
