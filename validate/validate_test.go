package validate_test

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/urikit/uri/validate"
)

func TestPredicates(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		pred func(string) bool
		yes  []string
		no   []string
	}{
		{"Digit", validate.Digit, []string{"0", "9"}, []string{"", "10", "a"}},
		{"Number", validate.Number, []string{"0", "42", "007"}, []string{"", "4.2", "-1", "x"}},
		{"IPv4", validate.IPv4, []string{"127.0.0.1", "255.255.255.255"}, []string{"256.1.1.1", "1.2.3", ""}},
		{"IPv6", validate.IPv6, []string{"::1", "2001:db8::1"}, []string{"example.com", "", "1::2::3"}},
		{"IP", validate.IP, []string{"127.0.0.1", "::1"}, []string{"example.com", ""}},
		{"Host", validate.Host, []string{"", "example.com", "127.0.0.1", "[::1]"}, []string{"ex ample", "[::1"}},
		{"Email", validate.Email, []string{"user@example.com"}, []string{"not-an-email", ""}},
		{"UserInfo", validate.UserInfo, []string{"", "user", "user:pa%20ss"}, []string{"user@host", "pa ss"}},
		{"Scheme", validate.Scheme, []string{"http", "view-source.v1+x"}, []string{"1http", "", "ht tp"}},
		{"Port", validate.Port, []string{"", "8080"}, []string{"80a", "-1"}},
		{"Query", validate.Query, []string{"", "x=1&y=2", "a/b?c"}, []string{"sp ace", "%zz"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			for _, in := range c.yes {
				if !c.pred(in) {
					t.Errorf("%s(%q) = false, want true", c.name, in)
				}
			}
			for _, in := range c.no {
				if c.pred(in) {
					t.Errorf("%s(%q) = true, want false", c.name, in)
				}
			}
		})
	}
}

func TestRules_InStruct(t *testing.T) {
	t.Parallel()

	type endpoint struct {
		Scheme string
		Host   string
		Port   string
	}

	ok := endpoint{Scheme: "https", Host: "example.com", Port: "8443"}
	err := validation.ValidateStruct(&ok,
		validation.Field(&ok.Scheme, validation.Required, validate.IsScheme),
		validation.Field(&ok.Host, validation.Required, validate.IsHost),
		validation.Field(&ok.Port, validate.IsPort),
	)
	if err != nil {
		t.Fatalf("valid endpoint rejected: %v", err)
	}

	bad := endpoint{Scheme: "1http", Host: "ex ample", Port: "80a"}
	err = validation.ValidateStruct(&bad,
		validation.Field(&bad.Scheme, validation.Required, validate.IsScheme),
		validation.Field(&bad.Host, validation.Required, validate.IsHost),
		validation.Field(&bad.Port, validate.IsPort),
	)
	if err == nil {
		t.Fatal("invalid endpoint accepted")
	}
	errs, ok2 := err.(validation.Errors)
	if !ok2 {
		t.Fatalf("error type = %T, want validation.Errors", err)
	}
	for _, field := range []string{"Scheme", "Host", "Port"} {
		if errs[field] == nil {
			t.Errorf("no error reported for field %s", field)
		}
	}
}

func TestRules_SkipEmpty(t *testing.T) {
	t.Parallel()

	type ref struct{ Host string }
	r := ref{}
	if err := validation.ValidateStruct(&r,
		validation.Field(&r.Host, validate.IsIP),
	); err != nil {
		t.Errorf("empty value not skipped: %v", err)
	}
}
