package uri

import "testing"

// offs reads the raw offset cache of an owned URI for white-box assertions.
func offs(u *URI) offsets { return u.core.offs }

func TestOffsets_StartUnparsed(t *testing.T) {
	t.Parallel()

	u := Parse("https://user@example.com:8080/a?x=1#f")
	if got, want := offs(u), newOffsets(); got != want {
		t.Fatalf("fresh parse derived offsets eagerly: %+v", got)
	}
}

func TestOffsets_DerivedInRange(t *testing.T) {
	t.Parallel()

	in := "https://user@example.com:8080/a?x=1#f"
	u := Parse(in)

	// Touch every accessor so the whole cache is derived.
	u.Scheme()
	u.UserInfo()
	u.Host()
	u.Port()
	u.Path()
	u.Query()
	u.Fragment()

	o := offs(u)
	n := len(in)
	for name, v := range map[string]int{
		"schemeEnd":      o.schemeEnd,
		"authorityStart": o.authorityStart,
		"userInfoEnd":    o.userInfoEnd,
		"portStart":      o.portStart,
		"authorityEnd":   o.authorityEnd,
		"queryStart":     o.queryStart,
		"fragmentStart":  o.fragmentStart,
	} {
		if v < 0 || v > n {
			t.Errorf("offset %s = %d, want within [0, %d]", name, v, n)
		}
	}
}

func TestOffsets_MutationInvalidates(t *testing.T) {
	t.Parallel()

	u := Parse("https://example.com/a?x=1")
	u.Host()
	u.Query()
	if offs(u) == newOffsets() {
		t.Fatal("accessors derived nothing")
	}

	if err := u.SetPath("b"); err != nil {
		t.Fatalf("u.SetPath() error = %v", err)
	}
	if got, want := offs(u), newOffsets(); got != want {
		t.Fatalf("mutation left derived offsets behind: %+v", got)
	}
	if got := u.Host(); got != "example.com" {
		t.Errorf("u.Host() after mutation = %q, want %q", got, "example.com")
	}
}

func TestEnsure_Idempotent(t *testing.T) {
	t.Parallel()

	u := Parse("http://example.com:80/a")
	u.Port()
	first := offs(u)
	u.Port()
	u.Host()
	u.Port()
	if got := offs(u); got != first {
		t.Errorf("repeated access changed offsets: %+v != %+v", got, first)
	}
}

func TestHostRange_Bounds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		host string
		port string
	}{
		{"host to end of text", "//example.com", "example.com", ""},
		{"host before query", "//example.com?x=1", "example.com", ""},
		{"host before fragment", "//example.com#f", "example.com", ""},
		{"port before query", "http://example.com:8080?x=1", "example.com", "8080"},
		{"port before fragment", "http://example.com:8080#f", "example.com", "8080"},
		{"empty port present", "http://example.com:/a", "example.com", ""},
		{"at sign in query not userinfo", "//example.com?a@b", "example.com", ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			u := Parse(c.in)
			if got := u.Host(); got != c.host {
				t.Errorf("u.Host() = %q, want %q", got, c.host)
			}
			if got := u.Port(); got != c.port {
				t.Errorf("u.Port() = %q, want %q", got, c.port)
			}
		})
	}
}

func TestPort_EmptyButPresent(t *testing.T) {
	t.Parallel()

	u := Parse("http://example.com:/a")
	if !u.HasPort() {
		t.Error("u.HasPort() = false, want true for trailing ':'")
	}
	if got := u.Port(); got != "" {
		t.Errorf("u.Port() = %q, want empty", got)
	}
}
