package uri

import (
	"sync"

	"github.com/urikit/uri/internal/constraints"
)

// unparsed marks an offset that has not been derived yet. A derived offset is
// either a position in [0, len(data)] or len(data) itself, which means the
// component is absent.
const unparsed = -1

// offsets is the cache of the seven component boundaries.
//
//	scheme    :  [0, schemeEnd)
//	user-info :  [authorityStart, userInfoEnd)
//	host      :  [userInfoEnd+1 | authorityStart, portStart | authorityEnd)
//	port      :  (portStart, authorityEnd)
//	path      :  [authorityEnd, min(queryStart, fragmentStart))
//	query     :  (queryStart, fragmentStart)
//	fragment  :  (fragmentStart, len)
type offsets struct {
	schemeEnd      int
	authorityStart int
	userInfoEnd    int
	portStart      int
	authorityEnd   int
	queryStart     int
	fragmentStart  int
}

func newOffsets() offsets {
	return offsets{
		schemeEnd:      unparsed,
		authorityStart: unparsed,
		userInfoEnd:    unparsed,
		portStart:      unparsed,
		authorityEnd:   unparsed,
		queryStart:     unparsed,
		fragmentStart:  unparsed,
	}
}

// core implements the lazy parser over a generic text source. The owned [URI]
// instantiates it over []byte, the borrowed [View] over string; mutating
// methods exist only on [URI].
//
// The offset cache is guarded by mu, so accessors are safe for concurrent use
// as long as no goroutine mutates the instance at the same time. Every ensure
// step is a pure function of (data, prerequisite offsets) and is idempotent.
type core[S constraints.Byteseq] struct {
	mu   sync.Mutex
	data S
	offs offsets
}

// unparse resets all seven offsets back to unparsed. Mutations always
// invalidate the whole cache, never a subset.
func (c *core[S]) unparse() { c.offs = newOffsets() }

// ensureScheme derives schemeEnd and authorityStart.
func (c *core[S]) ensureScheme() {
	if c.offs.schemeEnd != unparsed {
		return
	}

	n := len(c.data)
	if n >= 2 && c.data[0] == '/' && c.data[1] == '/' {
		// Authority without a scheme.
		c.offs.schemeEnd = n
		c.offs.authorityStart = 2
		return
	}

	if colon := indexByteIn(c.data, ':', 0, n); colon > 0 &&
		Alpha.Contains(c.data[0]) && allIn(c.data, SchemeNotFirst, 1, colon) {
		c.offs.schemeEnd = colon
		if colon+2 < n && c.data[colon+1] == '/' && c.data[colon+2] == '/' {
			c.offs.authorityStart = colon + 3
		} else {
			// URN-like, no authority.
			c.offs.authorityStart = n
		}
		return
	}

	c.offs.schemeEnd = n
	c.offs.authorityStart = n
}

// ensureFragment derives fragmentStart: the first '#' in the whole text.
func (c *core[S]) ensureFragment() {
	if c.offs.fragmentStart != unparsed {
		return
	}
	n := len(c.data)
	if i := indexByteIn(c.data, '#', 0, n); i >= 0 {
		c.offs.fragmentStart = i
	} else {
		c.offs.fragmentStart = n
	}
}

// ensureQuery derives queryStart: the first '?' strictly before the fragment.
func (c *core[S]) ensureQuery() {
	if c.offs.queryStart != unparsed {
		return
	}
	c.ensureFragment()

	if i := indexByteIn(c.data, '?', 0, c.offs.fragmentStart); i >= 0 {
		c.offs.queryStart = i
	} else {
		c.offs.queryStart = len(c.data)
	}
}

// ensureAuthorityEnd derives authorityEnd, the start of the path: the first
// '/' between the authority (or scheme) and the query.
func (c *core[S]) ensureAuthorityEnd() {
	if c.offs.authorityEnd != unparsed {
		return
	}
	c.ensureScheme()
	c.ensureQuery()

	n := len(c.data)
	start := 0
	switch {
	case c.offs.authorityStart != n:
		start = c.offs.authorityStart
	case c.offs.schemeEnd != n:
		start = c.offs.schemeEnd
	}
	if i := indexByteIn(c.data, '/', start, c.offs.queryStart); i >= 0 {
		c.offs.authorityEnd = i
	} else {
		c.offs.authorityEnd = n
	}
}

// authorityUpper returns the exclusive upper bound of the authority text:
// authorityEnd when a path follows, otherwise the query or fragment start.
// ensureAuthorityEnd must have run.
func (c *core[S]) authorityUpper() int {
	if c.offs.authorityEnd != len(c.data) {
		return c.offs.authorityEnd
	}
	return min2(c.offs.queryStart, c.offs.fragmentStart)
}

// ensureUserInfo derives userInfoEnd: the '@' terminating the user-info
// inside the authority.
func (c *core[S]) ensureUserInfo() {
	if c.offs.userInfoEnd != unparsed {
		return
	}
	c.ensureScheme()

	n := len(c.data)
	if c.offs.authorityStart == n {
		// No user-info without an authority.
		c.offs.userInfoEnd = n
		return
	}
	c.ensureAuthorityEnd()

	if i := indexByteIn(c.data, '@', c.offs.authorityStart, c.authorityUpper()); i >= 0 {
		c.offs.userInfoEnd = i
	} else {
		c.offs.userInfoEnd = n
	}
}

// ensurePort derives portStart: the last ':' inside the host-port region
// whose suffix up to authorityEnd is all digits.
func (c *core[S]) ensurePort() {
	if c.offs.portStart != unparsed {
		return
	}
	c.ensureUserInfo()

	n := len(c.data)
	if c.offs.authorityStart == n {
		c.offs.portStart = n
		return
	}
	c.ensureAuthorityEnd()

	start := c.offs.authorityStart
	if c.offs.userInfoEnd != n {
		start = c.offs.userInfoEnd + 1
	}
	end := c.authorityUpper()
	i := lastIndexByteIn(c.data, ':', start, end)
	if i >= 0 && digitsIn(c.data, i+1, end) {
		c.offs.portStart = i
	} else {
		c.offs.portStart = n
	}
}

// hostRange derives the [start, end) byte range of the host. The upper bound
// is len(data) when neither port nor path follows; see the design notes on
// the off-by-one the original carried there.
func (c *core[S]) hostRange() (start, end int, ok bool) {
	c.ensureUserInfo()
	c.ensurePort()
	c.ensureAuthorityEnd()

	n := len(c.data)
	if c.offs.authorityStart == n {
		return 0, 0, false
	}

	start = c.offs.authorityStart
	if c.offs.userInfoEnd != n {
		start = c.offs.userInfoEnd + 1
	}
	if c.offs.portStart != n {
		end = c.offs.portStart
	} else {
		end = c.authorityUpper()
	}
	return start, end, true
}

// substr returns the [start, end) range of the backing text as a string,
// clamped to the current length.
func (c *core[S]) substr(start, end int) string {
	n := len(c.data)
	if start < 0 {
		start = 0
	}
	if end > n {
		end = n
	}
	if start >= end {
		return ""
	}
	return string(c.data[start:end])
}

// String returns the literal, still percent-encoded form of the URI.
func (c *core[S]) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return string(c.data)
}

// Len returns the length of the backing text in bytes.
func (c *core[S]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.data)
}

// indexByteIn returns the position of the first b in s[from:to], or -1.
func indexByteIn[S constraints.Byteseq](s S, b byte, from, to int) int {
	for i := from; i < to && i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}

// lastIndexByteIn returns the position of the last b in s[from:to], or -1.
func lastIndexByteIn[S constraints.Byteseq](s S, b byte, from, to int) int {
	if to > len(s) {
		to = len(s)
	}
	for i := to - 1; i >= from && i >= 0; i-- {
		if s[i] == b {
			return i
		}
	}
	return -1
}

// allIn reports whether every byte of s[from:to] is a member of cs.
func allIn[S constraints.Byteseq](s S, cs Charset, from, to int) bool {
	for i := from; i < to && i < len(s); i++ {
		if !cs.Contains(s[i]) {
			return false
		}
	}
	return true
}

// digitsIn reports whether s[from:to] consists of decimal digits.
// An empty range counts as digits, matching the port rule *DIGIT.
func digitsIn[S constraints.Byteseq](s S, from, to int) bool {
	return allIn(s, Digit, from, to)
}

func min2(a, b int) int {
	if a < b {
		return a
	}
	return b
}
