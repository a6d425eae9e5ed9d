package uri

import (
	"strings"

	"braces.dev/errtrace"
)

// Fragment returns the raw fragment without the leading '#', or "" when
// absent.
func (c *core[S]) Fragment() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureFragment()
	if c.offs.fragmentStart == len(c.data) {
		return ""
	}
	return c.substr(c.offs.fragmentStart+1, len(c.data))
}

// FragmentDecoded returns the percent-decoded fragment.
func (c *core[S]) FragmentDecoded() (string, error) {
	return errtrace.Wrap2(DecodeComponent(c.Fragment(), QueryOrFragmentSet))
}

// HasFragment reports whether the URI carries a '#' fragment separator.
func (c *core[S]) HasFragment() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureFragment()
	return c.offs.fragmentStart != len(c.data)
}

// SetFragment percent-encodes f and replaces, inserts or, given "", removes
// the fragment. A leading '#' on the argument is ignored.
func (u *URI) SetFragment(f string) error {
	f = strings.TrimPrefix(f, "#")
	u.setRawFragment(EncodeComponent(f, QueryOrFragmentSet))
	return nil
}

// ClearFragment removes the fragment and its '#' separator, if any.
func (u *URI) ClearFragment() {
	u.setRawFragment("")
}

// setRawFragment splices an already-encoded fragment into place.
func (u *URI) setRawFragment(enc string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.ensureFragment()

	n := len(u.data)
	if u.offs.fragmentStart != n {
		if enc == "" {
			u.replaceRange(u.offs.fragmentStart, n, "")
		} else {
			u.replaceRange(u.offs.fragmentStart+1, n, enc)
		}
		return
	}
	if enc != "" {
		u.replaceRange(n, n, "#"+enc)
	}
}
