package uri

// Charset is an immutable set of byte values.
// The zero value is the empty set.
type Charset struct {
	mask [4]uint64
}

// NewCharset returns a set containing every byte of chars.
func NewCharset(chars string) Charset {
	var cs Charset
	for i := 0; i < len(chars); i++ {
		c := chars[i]
		cs.mask[c>>6] |= 1 << (c & 63)
	}
	return cs
}

// CharsetRange returns a set containing every byte in [lo, hi].
func CharsetRange(lo, hi byte) Charset {
	var cs Charset
	for c := int(lo); c <= int(hi); c++ {
		cs.mask[c>>6] |= 1 << (c & 63)
	}
	return cs
}

// Contains reports whether c is a member of the set.
func (cs Charset) Contains(c byte) bool {
	return cs.mask[c>>6]&(1<<(c&63)) != 0
}

// Union returns the union of the set with all the given sets.
func (cs Charset) Union(others ...Charset) Charset {
	for _, o := range others {
		for i := range cs.mask {
			cs.mask[i] |= o.mask[i]
		}
	}
	return cs
}

// Named charsets for the RFC 3986 productions.
// Each component's "not pct-encoded" set lists the bytes that survive
// percent-encoding untouched.
var (
	// Alpha is the ALPHA rule.
	Alpha = CharsetRange('A', 'Z').Union(CharsetRange('a', 'z'))
	// Digit is the DIGIT rule.
	Digit = CharsetRange('0', '9')
	// SchemeNotFirst covers every scheme byte after the first.
	SchemeNotFirst = Alpha.Union(Digit, NewCharset("+-."))
	// Unreserved is the unreserved rule.
	Unreserved = Alpha.Union(Digit, NewCharset("-._~"))
	// SubDelims is the sub-delims rule.
	SubDelims = NewCharset("!$&'()*+,;=")
	// UserInfoSet is the userinfo rule, leaving out pct-encoded.
	UserInfoSet = Unreserved.Union(SubDelims, NewCharset(":"))

	// UserInfoPartSet covers a single username or password, where a ':'
	// would be ambiguous and must stay encoded.
	UserInfoPartSet = Unreserved.Union(SubDelims)
	// RegNameSet is the reg-name rule, leaving out pct-encoded.
	RegNameSet = Unreserved.Union(SubDelims)
	// PCharSet is the pchar rule, leaving out pct-encoded.
	PCharSet = Unreserved.Union(SubDelims, NewCharset(":@"))
	// PathSet is pchar plus the segment separator.
	PathSet = PCharSet.Union(NewCharset("/"))
	// QueryOrFragmentSet is the query and fragment rules, leaving out pct-encoded.
	QueryOrFragmentSet = PCharSet.Union(NewCharset("/?"))

	// QueryArgSet covers a single query parameter name or value, where a
	// raw '&' or '=' would be ambiguous and must stay encoded.
	QueryArgSet = Unreserved.Union(NewCharset("!$'()*+,;:@/?"))
	// URIAllowed is the full set of bytes allowed somewhere in a URI,
	// the encodeURI set.
	URIAllowed = Alpha.Union(Digit, NewCharset(";,/?:@&=+$-_.!~*'()#"))
)
