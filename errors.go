package uri

import "github.com/urikit/uri/internal/errorutil"

// Common errors.
const (
	ErrInvalidArgument = errorutil.ErrInvalidArgument
	// ErrMalformedEscape is returned by [DecodeComponent] for inputs that are
	// not valid percent-encoded text against the given charset.
	ErrMalformedEscape Error = "malformed percent-encoding"
)

// Error represents a URI error.
// See [errorutil.Error].
type Error = errorutil.Error
