// Package uri provides parsing, inspection and manipulation of generic
// Uniform Resource Identifiers according to RFC 3986.
//
// # Overview
//
// The package is built around two types sharing one lazy parser:
//
//   - [URI]: the owned, mutable form. It holds a private copy of the URI
//     text and exposes both accessors and mutators. Construct one with
//     [New] or [Parse].
//
//   - [View]: the borrowed, read-only form over an immutable string. Only
//     accessors are available, so read-only usage is enforced at compile
//     time. Construct one with [NewView].
//
// Parsing is lazy: constructing a URI never scans the text. Each component
// boundary is derived on first access and cached, later accesses reuse the
// cache. Any mutation drops the whole cache. Because of that, construction
// never fails, malformed input simply yields absent or non-validating
// components, which [URI.IsValid] and the validate package can report.
//
//	u := uri.Parse("https://user@www.example.com:8080/a/b?x=1#top")
//	u.Scheme()   // "https"
//	u.Host()     // "www.example.com"
//	u.Port()     // "8080"
//	u.Path()     // "/a/b"
//
// # Encoding
//
// Accessors come in pairs: the plain form returns the raw, still
// percent-encoded text, the Decoded form applies percent-decoding and can
// fail on malformed escapes. Mutators take decoded text and encode it with
// the [Charset] appropriate for the component. [EncodeComponent] and
// [DecodeComponent] expose the codec directly.
//
// # Resolution
//
// ResolveReference implements the reference resolution algorithm of
// RFC 3986 section 5.2, available on both [URI] and [View]:
//
//	base := uri.Parse("http://a/b/c/d;p?q")
//	abs := base.ResolveReference(uri.Parse("../g"))
//	// abs.String() == "http://a/b/g"
//
// # Concurrency
//
// Accessors synchronize on an internal mutex and are safe for concurrent
// use. Mutating a URI concurrently with readers requires external
// synchronization, as with the built-in map type.
package uri
