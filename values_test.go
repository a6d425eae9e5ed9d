package uri_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/urikit/uri"
)

func TestValues(t *testing.T) {
	t.Parallel()

	vals := make(uri.Values).
		Append("x", "1").
		Append("x", "2").
		Set("y", "3")

	if got := vals.Get("x"); len(got) != 2 {
		t.Errorf("vals.Get(x) = %v, want two values", got)
	}
	if v, ok := vals.First("x"); !ok || v != "1" {
		t.Errorf("vals.First(x) = %q, %v", v, ok)
	}
	if v, ok := vals.Last("x"); !ok || v != "2" {
		t.Errorf("vals.Last(x) = %q, %v", v, ok)
	}
	if _, ok := vals.First("missing"); ok {
		t.Error("vals.First(missing) ok = true")
	}
	// Keys are case-sensitive.
	if vals.Has("X") {
		t.Error("vals.Has(X) = true, want false")
	}

	clone := vals.Clone()
	vals.Set("x", "changed").Del("y")
	if diff := cmp.Diff(clone, uri.Values{"x": {"1", "2"}, "y": {"3"}}); diff != "" {
		t.Errorf("clone mismatch after mutating original (-got +want):\n%v", diff)
	}
	if vals.Has("y") {
		t.Error("vals.Has(y) = true after Del")
	}
}
