package uri

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/urikit/uri/internal/util"
)

// Path returns the raw, still percent-encoded path, leading '/' included,
// or "" when absent.
func (c *core[S]) Path() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rawPath()
}

// rawPath returns the path text, c.mu must be held.
func (c *core[S]) rawPath() string {
	c.ensureAuthorityEnd()
	if c.offs.authorityEnd == len(c.data) {
		return ""
	}
	return c.substr(c.offs.authorityEnd, min2(c.offs.queryStart, c.offs.fragmentStart))
}

// PathDecoded returns the percent-decoded path.
func (c *core[S]) PathDecoded() (string, error) {
	return errtrace.Wrap2(DecodeComponent(c.Path(), PathSet))
}

// HasPath reports whether the URI carries a path.
func (c *core[S]) HasPath() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureAuthorityEnd()
	return c.offs.authorityEnd != len(c.data)
}

// PathSegments splits the raw path on '/'. An absolute path yields a leading
// empty segment, so "/a/b" comes back as ["", "a", "b"]. An absent path
// yields nil.
func (c *core[S]) PathSegments() []string {
	p := c.Path()
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

// PathSegmentsDecoded splits the path and percent-decodes every segment.
func (c *core[S]) PathSegmentsDecoded() ([]string, error) {
	segs := c.PathSegments()
	for i, s := range segs {
		d, err := DecodeComponent(s, PCharSet)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		segs[i] = d
	}
	return segs, nil
}

// IsAbsolutePath reports whether the path starts with '/'.
func (c *core[S]) IsAbsolutePath() bool {
	return strings.HasPrefix(c.Path(), "/")
}

// IsRelativePath reports whether the path does not start with '/'.
func (c *core[S]) IsRelativePath() bool {
	return !c.IsAbsolutePath()
}

// IsNormalized reports whether the path is free of "." and ".." segments.
func (c *core[S]) IsNormalized() bool {
	for _, s := range c.PathSegments() {
		if s == "." || s == ".." {
			return false
		}
	}
	return true
}

// SetPath percent-encodes p and replaces, inserts or, given "", removes the
// path. A missing leading '/' is supplied when the URI has an authority, a
// relative path cannot follow one.
func (u *URI) SetPath(p string) error {
	enc := EncodeComponent(p, PathSet)
	if enc != "" && !strings.HasPrefix(enc, "/") && u.HasHost() {
		enc = "/" + enc
	}
	u.setRawPath(enc)
	return nil
}

// SetPathSegments joins the segments with '/' and sets the result as the
// path. Each segment is percent-encoded individually, so a '/' inside a
// segment stays escaped.
func (u *URI) SetPathSegments(segs ...string) error {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	for i, s := range segs {
		if i > 0 {
			sb.WriteByte('/')
		}
		sb.WriteString(EncodeComponent(s, PCharSet))
	}
	enc := sb.String()
	if enc != "" && !strings.HasPrefix(enc, "/") && u.HasHost() {
		enc = "/" + enc
	}
	u.setRawPath(enc)
	return nil
}

// ClearPath removes the path.
func (u *URI) ClearPath() {
	u.setRawPath("")
}

// NormalizePath removes "." and ".." segments from the path using the
// remove_dot_segments algorithm of RFC 3986 section 5.2.4.
func (u *URI) NormalizePath() {
	u.mu.Lock()
	p := u.rawPath()
	u.mu.Unlock()
	if p == "" {
		return
	}
	u.setRawPath(removeDotSegments(p))
}

// setRawPath splices an already-encoded path into place.
func (u *URI) setRawPath(enc string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.ensureAuthorityEnd()

	n := len(u.data)
	end := min2(u.offs.queryStart, u.offs.fragmentStart)
	start := end
	if u.offs.authorityEnd != n {
		start = u.offs.authorityEnd
	}
	u.replaceRange(start, end, enc)
}
