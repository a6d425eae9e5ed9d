package uri

import (
	"strings"

	"github.com/urikit/uri/internal/util"
)

// Reference is the read surface the resolver needs from a base or relative
// reference. Both [URI] and [View] satisfy it.
type Reference interface {
	HasScheme() bool
	Scheme() string
	HasUserInfo() bool
	UserInfo() string
	HasHost() bool
	Host() string
	HasPort() bool
	Port() string
	HasPath() bool
	Path() string
	HasQuery() bool
	Query() string
	HasFragment() bool
	Fragment() string
	String() string
}

var (
	_ Reference = (*URI)(nil)
	_ Reference = (*View)(nil)
)

// ResolveReference resolves rel against the receiver as the base, applying
// the transform of RFC 3986 section 5.2.2. Raw component text is carried
// over verbatim, resolution never re-encodes, and the merged path is always
// run through remove_dot_segments.
func (c *core[S]) ResolveReference(rel Reference) *URI {
	if rel.HasScheme() {
		t := Parse(rel.String())
		t.NormalizePath()
		return t
	}

	t := New()
	if s := c.Scheme(); s != "" {
		t.SetScheme(s) //nolint:errcheck
	}

	if rel.HasHost() || rel.HasUserInfo() || rel.HasPort() {
		copyAuthority(t, rel)
		t.setRawPath(removeDotSegments(rel.Path()))
		if rel.HasQuery() {
			t.setRawQuery(rel.Query())
		}
	} else {
		copyAuthority(t, c)
		relPath := refPath(rel)
		switch {
		case relPath == "":
			t.setRawPath(c.Path())
			if rel.HasQuery() {
				t.setRawQuery(rel.Query())
			} else if q := c.Query(); q != "" || c.HasQuery() {
				t.setRawQuery(q)
			}
		case strings.HasPrefix(relPath, "/"):
			t.setRawPath(removeDotSegments(relPath))
			if rel.HasQuery() {
				t.setRawQuery(rel.Query())
			}
		default:
			t.setRawPath(removeDotSegments(mergePaths(c.HasHost(), c.Path(), relPath)))
			if rel.HasQuery() {
				t.setRawQuery(rel.Query())
			}
		}
	}

	if rel.HasFragment() {
		t.setRawFragment(rel.Fragment())
	}
	return t
}

// copyAuthority copies the userinfo, host and port of src into t raw.
func copyAuthority(t *URI, src interface {
	HasUserInfo() bool
	UserInfo() string
	HasHost() bool
	Host() string
	HasPort() bool
	Port() string
}) {
	if !src.HasHost() && !src.HasUserInfo() && !src.HasPort() {
		return
	}
	t.setRawHost(src.Host())
	if src.HasPort() {
		t.setRawPort(src.Port()) //nolint:errcheck
	}
	if src.HasUserInfo() {
		t.setRawUserInfo(src.UserInfo())
	}
}

// refPath returns the path text of a relative reference. The lazy parser
// only recognizes a path from its first '/', so for authority-less
// references like "g" the path is the literal text before the query or
// fragment.
func refPath(rel Reference) string {
	if rel.HasHost() || rel.HasUserInfo() || rel.HasPort() {
		return rel.Path()
	}
	s := rel.String()
	if i := strings.IndexByte(s, '#'); i >= 0 {
		s = s[:i]
	}
	if i := strings.IndexByte(s, '?'); i >= 0 {
		s = s[:i]
	}
	if strings.HasPrefix(s, "//") {
		return rel.Path()
	}
	return s
}

// mergePaths merges a relative path with the base path per RFC 3986
// section 5.2.3.
func mergePaths(baseHasAuthority bool, basePath, relPath string) string {
	if baseHasAuthority && basePath == "" {
		return "/" + relPath
	}
	if i := strings.LastIndexByte(basePath, '/'); i >= 0 {
		return basePath[:i+1] + relPath
	}
	return relPath
}

// removeDotSegments applies the remove_dot_segments algorithm of RFC 3986
// section 5.2.4 to an already-encoded path.
func removeDotSegments(p string) string {
	if p == "" {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	var out []string
	for p != "" {
		switch {
		case strings.HasPrefix(p, "../"):
			p = p[3:]
		case strings.HasPrefix(p, "./"):
			p = p[2:]
		case strings.HasPrefix(p, "/./"):
			p = p[2:]
		case p == "/.":
			p = "/"
		case strings.HasPrefix(p, "/../"):
			p = p[3:]
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
		case p == "/..":
			p = "/"
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
		case p == "." || p == "..":
			p = ""
		default:
			end := len(p)
			if i := strings.IndexByte(p[1:], '/'); i >= 0 {
				end = i + 1
			}
			out = append(out, p[:end])
			p = p[end:]
		}
	}
	for _, seg := range out {
		sb.WriteString(seg)
	}
	return sb.String()
}
