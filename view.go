package uri

import (
	"fmt"
	"strconv"

	"braces.dev/errtrace"

	"github.com/urikit/uri/internal/grammar"
)

// View is a URI in borrowed storage mode.
//
// A View wraps an immutable string and exposes only the accessor half of the
// URI API, so read-only usage is enforced at compile time. Like [URI], a View
// parses lazily and caches component boundaries, and is safe for concurrent
// reads.
type View struct {
	core[string]
}

// NewView returns a read-only View over the given text.
// Empty input is rejected, an empty URI only makes sense in owned mode.
func NewView(s string) (*View, error) {
	if s == "" {
		return nil, errtrace.Wrap(grammar.ErrEmptyInput)
	}
	return &View{core[string]{data: s, offs: newOffsets()}}, nil
}

// ToOwned returns an owned, mutable URI holding a copy of the view's text.
func (v *View) ToOwned() *URI {
	if v == nil {
		return nil
	}
	return Parse(v.String())
}

// Equal compares the View with another View, URI or string by exact text.
func (v *View) Equal(val any) bool {
	switch o := val.(type) {
	case *View:
		if v == o {
			return true
		} else if v == nil || o == nil {
			return false
		}
		return v.String() == o.String()
	case *URI:
		if v == nil || o == nil {
			return false
		}
		return v.String() == o.String()
	case string:
		return v.String() == o
	default:
		return false
	}
}

// Format implements fmt.Formatter for custom formatting of the View.
func (v *View) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, v.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(v.String()))
		return
	default:
		type hideMethods View
		type View hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*View)(v))
		return
	}
}

// MarshalText implements the encoding.TextMarshaler interface.
func (v *View) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

var _ interface {
	fmt.Stringer
	fmt.Formatter
} = (*View)(nil)
