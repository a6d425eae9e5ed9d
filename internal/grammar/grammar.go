// Package grammar provides RFC 3986 syntax predicates over the ABNF rules.
package grammar

//go:generate go tool errtrace -w .

import (
	"github.com/ghettovoice/abnf"

	"github.com/urikit/uri/internal/constraints"
)

func init() {
	abnf.EnableNodeCache(10 * 1024)
}

type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const (
	ErrEmptyInput     Error = "empty input"
	ErrMalformedInput Error = "malformed input"
)

func matchFull[T constraints.Byteseq](op abnf.Operator, s T) bool {
	if len(s) == 0 {
		return false
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := op([]byte(s), 0, ns); err != nil {
		return false
	}
	return ns.Best().Len() == len(s)
}

// IsScheme reports whether s matches the scheme rule.
func IsScheme[T constraints.Byteseq](s T) bool { return matchFull(scheme, s) }

// IsUserInfo reports whether s matches the userinfo rule.
func IsUserInfo[T constraints.Byteseq](s T) bool { return matchFull(userinfo, s) }

// IsIPv4 reports whether s matches the IPv4address rule.
func IsIPv4[T constraints.Byteseq](s T) bool { return matchFull(ipv4Address, s) }

// IsIPv6 reports whether s matches the IPv6address rule, without brackets.
func IsIPv6[T constraints.Byteseq](s T) bool { return matchFull(ipv6Address, s) }

// IsRegName reports whether s matches the reg-name rule.
func IsRegName[T constraints.Byteseq](s T) bool {
	// reg-name matches the empty string.
	if len(s) == 0 {
		return true
	}
	return matchFull(regName, s)
}

// IsHost reports whether s matches the host rule: an IP literal in brackets,
// an IPv4 address or a registered name. The empty string is a valid, empty
// registered name.
func IsHost[T constraints.Byteseq](s T) bool {
	if len(s) == 0 {
		return true
	}
	return matchFull(host, s)
}

// IsPort reports whether s consists of decimal digits only.
// The empty string matches the port rule (*DIGIT).
func IsPort[T constraints.Byteseq](s T) bool {
	if len(s) == 0 {
		return true
	}
	return matchFull(port, s)
}

// IsQuery reports whether s matches the query rule.
// The empty string matches, a query can be present and empty.
func IsQuery[T constraints.Byteseq](s T) bool {
	if len(s) == 0 {
		return true
	}
	return matchFull(query, s)
}

// IsDigits reports whether s is a non-empty run of decimal digits.
func IsDigits[T constraints.Byteseq](s T) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
