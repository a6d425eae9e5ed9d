// Package validate provides reusable syntax predicates and ozzo-validation
// rules for URI components.
package validate

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/urikit/uri/internal/grammar"
)

// Digit reports whether s is a single decimal digit.
func Digit(s string) bool {
	return len(s) == 1 && s[0] >= '0' && s[0] <= '9'
}

// Number reports whether s is a non-empty run of decimal digits.
func Number(s string) bool {
	return grammar.IsDigits(s)
}

// IPv4 reports whether s is a dotted-decimal IPv4 address.
func IPv4(s string) bool {
	return grammar.IsIPv4(s)
}

// IPv6 reports whether s is an IPv6 address, without brackets.
func IPv6(s string) bool {
	return grammar.IsIPv6(s)
}

// IP reports whether s is an IPv4 or IPv6 address.
func IP(s string) bool {
	return IPv4(s) || IPv6(s)
}

// Host reports whether s matches the host rule: an IP literal or a
// registered name. The empty string is a valid, empty registered name.
func Host(s string) bool {
	return grammar.IsHost(s)
}

// Email reports whether s is a well-formed email address.
// The empty string is not an email (stock ozzo rules skip empty values).
func Email(s string) bool {
	return s != "" && is.EmailFormat.Validate(s) == nil
}

// UserInfo reports whether s matches the userinfo rule of RFC 3986,
// percent-encoded text included. The empty string matches (*-repetition).
func UserInfo(s string) bool {
	return s == "" || grammar.IsUserInfo(s)
}

// Scheme reports whether s matches the scheme rule of RFC 3986.
func Scheme(s string) bool {
	return grammar.IsScheme(s)
}

// Port reports whether s is a valid port: empty or decimal digits.
func Port(s string) bool {
	return grammar.IsPort(s)
}

// Query reports whether s matches the query rule of RFC 3986.
func Query(s string) bool {
	return grammar.IsQuery(s)
}

// Rules usable inside validation.ValidateStruct alongside the stock ozzo
// rules.
var (
	IsScheme = byRule(Scheme, "must be a valid scheme")
	IsHost   = byRule(Host, "must be a valid host")
	IsPort   = byRule(Port, "must be a valid port")
	IsIP     = byRule(IP, "must be a valid ip address")
	IsQuery  = byRule(Query, "must be a valid query")
)

func byRule(pred func(string) bool, msg string) validation.Rule {
	return validation.By(func(value any) error {
		s, err := validation.EnsureString(value)
		if err != nil {
			return err
		}
		if s == "" {
			// Stock ozzo rules skip empty values too, combine with
			// validation.Required when emptiness matters.
			return nil
		}
		if !pred(s) {
			return validation.NewError("validation_uri", msg)
		}
		return nil
	})
}
