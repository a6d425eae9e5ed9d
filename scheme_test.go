package uri_test

import (
	"errors"
	"testing"

	"github.com/urikit/uri"
	"github.com/urikit/uri/internal/errorutil"
)

func TestScheme(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
		has  bool
	}{
		{"http", "http://example.com", "http", true},
		{"uppercase lowered", "HTTP://example.com", "http", true},
		{"urn", "urn:isbn:0451450523", "urn", true},
		{"plus and dot", "view-source.v1+x://example.com", "view-source.v1+x", true},
		{"scheme relative", "//example.com", "", false},
		{"relative path", "/a/b", "", false},
		{"colon in path only", "./a:b", "", false},
		{"leading digit not a scheme", "1http://example.com", "", false},
		{"empty", "", "", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			u := uri.Parse(c.in)
			if got := u.Scheme(); got != c.want {
				t.Errorf("u.Scheme() = %q, want %q", got, c.want)
			}
			if got := u.HasScheme(); got != c.has {
				t.Errorf("u.HasScheme() = %v, want %v", got, c.has)
			}
		})
	}
}

func TestURI_SetScheme(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		scheme  string
		want    string
		wantErr bool
	}{
		{"replace", "http://example.com", "https", "https://example.com", false},
		{"insert before authority", "//example.com", "https", "https://example.com", false},
		{"insert into empty", "", "https", "https:", false},
		{"trailing colon ignored", "http://example.com", "ftp:", "ftp://example.com", false},
		{"clear", "http://example.com", "", "//example.com", false},
		{"clear urn", "urn:isbn:1", "", "isbn:1", false},
		{"invalid char", "http://example.com", "ht tp", "http://example.com", true},
		{"leading digit", "http://example.com", "1http", "http://example.com", true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			u := uri.Parse(c.in)
			err := u.SetScheme(c.scheme)
			if c.wantErr {
				if !errors.Is(err, errorutil.ErrInvalidArgument) {
					t.Fatalf("u.SetScheme(%q) error = %v, want invalid argument", c.scheme, err)
				}
			} else if err != nil {
				t.Fatalf("u.SetScheme(%q) error = %v", c.scheme, err)
			}
			if got := u.String(); got != c.want {
				t.Errorf("u.String() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestURI_ClearScheme(t *testing.T) {
	t.Parallel()

	u := uri.Parse("https://example.com/a")
	u.ClearScheme()
	if got := u.String(); got != "//example.com/a" {
		t.Errorf("u.String() = %q, want %q", got, "//example.com/a")
	}
	u.ClearScheme()
	if got := u.String(); got != "//example.com/a" {
		t.Errorf("second clear changed text: %q", got)
	}
}
