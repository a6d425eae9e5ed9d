package uri_test

import (
	"testing"

	"github.com/urikit/uri"
)

func TestFragment(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
		has  bool
	}{
		{"simple", "http://e.com/a#top", "top", true},
		{"empty but present", "http://e.com/a#", "", true},
		{"absent", "http://e.com/a", "", false},
		{"after query", "http://e.com/a?x=1#frag", "frag", true},
		{"encoded", "http://e.com/a#fr%20ag", "fr%20ag", true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			u := uri.Parse(c.in)
			if got := u.Fragment(); got != c.want {
				t.Errorf("u.Fragment() = %q, want %q", got, c.want)
			}
			if got := u.HasFragment(); got != c.has {
				t.Errorf("u.HasFragment() = %v, want %v", got, c.has)
			}
		})
	}
}

func TestFragmentDecoded(t *testing.T) {
	t.Parallel()

	got, err := uri.Parse("http://e.com/a#fr%20ag").FragmentDecoded()
	if err != nil {
		t.Fatalf("u.FragmentDecoded() error = %v", err)
	}
	if got != "fr ag" {
		t.Errorf("u.FragmentDecoded() = %q, want %q", got, "fr ag")
	}
}

func TestURI_SetFragment(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		in       string
		fragment string
		want     string
	}{
		{"insert", "http://e.com/a", "top", "http://e.com/a#top"},
		{"replace", "http://e.com/a#old", "new", "http://e.com/a#new"},
		{"leading hash ignored", "http://e.com/a", "#top", "http://e.com/a#top"},
		{"encodes", "http://e.com/a", "fr ag", "http://e.com/a#fr%20ag"},
		{"clear", "http://e.com/a#top", "", "http://e.com/a"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			u := uri.Parse(c.in)
			if err := u.SetFragment(c.fragment); err != nil {
				t.Fatalf("u.SetFragment(%q) error = %v", c.fragment, err)
			}
			if got := u.String(); got != c.want {
				t.Errorf("u.String() = %q, want %q", got, c.want)
			}
		})
	}
}
