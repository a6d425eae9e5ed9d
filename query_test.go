package uri_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/urikit/uri"
)

func TestQuery(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
		has  bool
	}{
		{"simple", "http://example.com/a?x=1&y=2", "x=1&y=2", true},
		{"empty but present", "http://example.com/a?", "", true},
		{"absent", "http://example.com/a", "", false},
		{"before fragment", "http://example.com/a?x=1#f", "x=1", true},
		{"question mark in fragment ignored", "http://example.com/a#f?x", "", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			u := uri.Parse(c.in)
			if got := u.Query(); got != c.want {
				t.Errorf("u.Query() = %q, want %q", got, c.want)
			}
			if got := u.HasQuery(); got != c.has {
				t.Errorf("u.HasQuery() = %v, want %v", got, c.has)
			}
		})
	}
}

func TestQueryValues(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want uri.Values
	}{
		{
			"pairs", "http://e.com?x=1&y=2",
			uri.Values{"x": {"1"}, "y": {"2"}},
		},
		{
			"repeated name", "http://e.com?x=1&x=2",
			uri.Values{"x": {"1", "2"}},
		},
		{
			"flag without value", "http://e.com?debug&x=1",
			uri.Values{"debug": {""}, "x": {"1"}},
		},
		{
			"empty name skipped", "http://e.com?=1&x=2",
			uri.Values{"x": {"2"}},
		},
		{
			"decoded", "http://e.com?na%20me=va%26lue",
			uri.Values{"na me": {"va&lue"}},
		},
		{"no query", "http://e.com", nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(uri.Parse(c.in).QueryValues(), c.want); diff != "" {
				t.Errorf("u.QueryValues() mismatch (-got +want):\n%v", diff)
			}
		})
	}
}

func TestURI_SetQuery(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		in    string
		query string
		want  string
	}{
		{"insert", "http://e.com/a", "x=1", "http://e.com/a?x=1"},
		{"insert before fragment", "http://e.com/a#f", "x=1", "http://e.com/a?x=1#f"},
		{"replace", "http://e.com/a?x=1", "y=2", "http://e.com/a?y=2"},
		{"leading question mark ignored", "http://e.com/a", "?x=1", "http://e.com/a?x=1"},
		{"clear", "http://e.com/a?x=1#f", "", "http://e.com/a#f"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			u := uri.Parse(c.in)
			if err := u.SetQuery(c.query); err != nil {
				t.Fatalf("u.SetQuery(%q) error = %v", c.query, err)
			}
			if got := u.String(); got != c.want {
				t.Errorf("u.String() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestURI_SetQueryValues(t *testing.T) {
	t.Parallel()

	u := uri.Parse("http://e.com/a")
	err := u.SetQueryValues(uri.Values{
		"y":     {"2"},
		"x":     {"1", "3"},
		"debug": {""},
		"":      {"skipped"},
		"na me": {"va&lue"},
	})
	if err != nil {
		t.Fatalf("u.SetQueryValues() error = %v", err)
	}
	want := "http://e.com/a?debug&na%20me=va%26lue&x=1&x=3&y=2"
	if got := u.String(); got != want {
		t.Errorf("u.String() = %q, want %q", got, want)
	}
}
