package uri

import (
	"braces.dev/errtrace"

	"github.com/urikit/uri/internal/errorutil"
	"github.com/urikit/uri/internal/util"
)

const upperhex = "0123456789ABCDEF"

// EncodeComponent escapes s against the allowed charset: every byte in the
// set is copied verbatim, every other byte is replaced by "%" followed by two
// uppercase hex digits. It never fails.
func EncodeComponent[T ~string | ~[]byte](s T, allowed Charset) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	for i := 0; i < len(s); i++ {
		c := s[i]
		if allowed.Contains(c) {
			sb.WriteByte(c)
			continue
		}
		sb.WriteByte('%')
		sb.WriteByte(upperhex[c>>4])
		sb.WriteByte(upperhex[c&15])
	}
	return sb.String()
}

// DecodeComponent unescapes s against the allowed charset. A '%' starts a
// two-hex-digit escape whose decoded byte is appended verbatim; every raw
// byte must be a member of the set. Truncated escapes, non-hex digits and
// out-of-set raw bytes fail the whole operation with [ErrMalformedEscape];
// there is no partial result.
func DecodeComponent[T ~string | ~[]byte](s T, allowed Charset) (string, error) {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '%' {
			if i+2 >= len(s) {
				return "", errtrace.Wrap(errorutil.NewWrapperError(ErrMalformedEscape, "truncated escape at %d", i))
			}
			hi, lo := s[i+1], s[i+2]
			if !ishex(hi) || !ishex(lo) {
				return "", errtrace.Wrap(errorutil.NewWrapperError(ErrMalformedEscape, "bad hex digits at %d", i))
			}
			sb.WriteByte(unhex(hi)<<4 | unhex(lo))
			i += 2
			continue
		}
		if !allowed.Contains(c) {
			return "", errtrace.Wrap(errorutil.NewWrapperError(ErrMalformedEscape, "byte %q not allowed at %d", c, i))
		}
		sb.WriteByte(c)
	}
	return sb.String(), nil
}

// EncodeURI escapes a complete URI, keeping every structural delimiter in
// place: only bytes outside [URIAllowed] are escaped.
func EncodeURI[T ~string | ~[]byte](s T) string {
	return EncodeComponent(s, URIAllowed)
}

// DecodeURI unescapes a complete URI encoded with [EncodeURI].
func DecodeURI[T ~string | ~[]byte](s T) (string, error) {
	return errtrace.Wrap2(DecodeComponent(s, URIAllowed))
}

func ishex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
