package uri

import (
	"slices"
	"strings"

	"braces.dev/errtrace"

	"github.com/urikit/uri/internal/util"
)

// Query returns the raw query without the leading '?', or "" when absent.
func (c *core[S]) Query() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureQuery()
	if c.offs.queryStart == len(c.data) {
		return ""
	}
	return c.substr(c.offs.queryStart+1, c.offs.fragmentStart)
}

// QueryDecoded returns the percent-decoded query.
func (c *core[S]) QueryDecoded() (string, error) {
	return errtrace.Wrap2(DecodeComponent(c.Query(), QueryOrFragmentSet))
}

// HasQuery reports whether the URI carries a '?' query separator.
func (c *core[S]) HasQuery() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureQuery()
	return c.offs.queryStart != len(c.data)
}

// QueryValues parses the query as '&' separated name=value pairs into a
// multimap. Pairs with an empty or undecodable name are skipped, a pair
// without '=' yields an empty value.
func (c *core[S]) QueryValues() Values {
	q := c.Query()
	if q == "" {
		return nil
	}
	var vals Values
	for pair := range strings.SplitSeq(q, "&") {
		name, value, _ := strings.Cut(pair, "=")
		if name == "" {
			continue
		}
		dn, err := DecodeComponent(name, QueryOrFragmentSet)
		if err != nil || dn == "" {
			continue
		}
		dv, err := DecodeComponent(value, QueryOrFragmentSet)
		if err != nil {
			dv = ""
		}
		if vals == nil {
			vals = make(Values)
		}
		vals.Append(dn, dv)
	}
	return vals
}

// SetQuery percent-encodes q and replaces, inserts or, given "", removes the
// query. A leading '?' on the argument is ignored.
func (u *URI) SetQuery(q string) error {
	q = strings.TrimPrefix(q, "?")
	u.setRawQuery(EncodeComponent(q, QueryOrFragmentSet))
	return nil
}

// SetQueryValues renders the multimap as the query. Keys are emitted in
// sorted order so the result is deterministic, empty names are skipped and
// an empty value renders as a bare name.
func (u *URI) SetQueryValues(vals Values) error {
	keys := make([]string, 0, len(vals))
	for k := range vals {
		if k != "" {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	for _, k := range keys {
		for _, v := range vals.Get(k) {
			if sb.Len() > 0 {
				sb.WriteByte('&')
			}
			sb.WriteString(EncodeComponent(k, QueryArgSet))
			if v != "" {
				sb.WriteByte('=')
				sb.WriteString(EncodeComponent(v, QueryArgSet))
			}
		}
	}
	u.setRawQuery(sb.String())
	return nil
}

// ClearQuery removes the query and its '?' separator, if any.
func (u *URI) ClearQuery() {
	u.setRawQuery("")
}

// setRawQuery splices an already-encoded query into place.
func (u *URI) setRawQuery(enc string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.ensureQuery()

	n := len(u.data)
	if u.offs.queryStart != n {
		if enc == "" {
			u.replaceRange(u.offs.queryStart, u.offs.fragmentStart, "")
		} else {
			u.replaceRange(u.offs.queryStart+1, u.offs.fragmentStart, enc)
		}
		return
	}
	if enc == "" {
		return
	}
	u.replaceRange(u.offs.fragmentStart, u.offs.fragmentStart, "?"+enc)
}
