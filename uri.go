package uri

//go:generate go tool errtrace -w .

import (
	"fmt"
	"strconv"
)

// URI is a generic URI in owned storage mode.
//
// The URI owns a private, mutable copy of its text, so both accessor and
// mutator methods are available. Component accessors parse lazily and cache
// boundary offsets, any mutation invalidates the whole cache.
//
// A URI is safe for concurrent reads. Mutations require external
// synchronization against concurrent readers, like the standard library
// map and slice types.
type URI struct {
	core[[]byte]
}

// New returns a new empty URI.
func New() *URI {
	return &URI{core[[]byte]{offs: newOffsets()}}
}

// Parse returns a URI holding its own copy of the given text.
//
// Parse never fails: component boundaries are discovered lazily on access,
// and syntactically invalid input simply yields absent or non-validating
// components. Use [URI.IsValid] or the validate package to check syntax.
func Parse[T ~string | ~[]byte](s T) *URI {
	return &URI{core[[]byte]{
		data: []byte(string(s)),
		offs: newOffsets(),
	}}
}

// Clone returns a deep copy of the URI with an unparsed component cache.
func (u *URI) Clone() *URI {
	if u == nil {
		return nil
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	c := New()
	c.data = append([]byte(nil), u.data...)
	return c
}

// View returns a borrowed read-only view over the current text of the URI.
// The view holds its own immutable copy, so later mutations of u are not
// observed through it.
func (u *URI) View() *View {
	return &View{core[string]{data: u.String(), offs: newOffsets()}}
}

// Equal compares the URI with another URI, View or string by exact text.
func (u *URI) Equal(val any) bool {
	switch v := val.(type) {
	case *URI:
		if u == v {
			return true
		} else if u == nil || v == nil {
			return false
		}
		return u.String() == v.String()
	case *View:
		if u == nil || v == nil {
			return false
		}
		return u.String() == v.String()
	case string:
		return u.String() == v
	default:
		return false
	}
}

// Format implements fmt.Formatter for custom formatting of the URI.
func (u *URI) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	default:
		type hideMethods URI
		type URI hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*URI)(u))
		return
	}
}

// MarshalText implements the encoding.TextMarshaler interface.
func (u *URI) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// It replaces the URI text with its own copy of the input.
func (u *URI) UnmarshalText(text []byte) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.data = append(u.data[:0], text...)
	u.unparse()
	return nil
}

// replaceRange splices repl over data[start:end] and drops the cached
// offsets. All mutators funnel through here, u.mu must be held.
func (u *URI) replaceRange(start, end int, repl string) {
	if start < 0 {
		start = 0
	}
	if end > len(u.data) {
		end = len(u.data)
	}
	if end < start {
		end = start
	}
	buf := make([]byte, 0, len(u.data)-(end-start)+len(repl))
	buf = append(buf, u.data[:start]...)
	buf = append(buf, repl...)
	buf = append(buf, u.data[end:]...)
	u.data = buf
	u.unparse()
}

var _ interface {
	fmt.Stringer
	fmt.Formatter
} = (*URI)(nil)
