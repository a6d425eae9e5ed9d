package uri

import (
	"strings"

	"braces.dev/errtrace"
)

// UserInfo returns the raw, still percent-encoded user-info, or "" when
// absent.
func (c *core[S]) UserInfo() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureUserInfo()
	if c.offs.userInfoEnd == len(c.data) {
		return ""
	}
	return c.substr(c.offs.authorityStart, c.offs.userInfoEnd)
}

// UserInfoDecoded returns the percent-decoded user-info.
func (c *core[S]) UserInfoDecoded() (string, error) {
	return errtrace.Wrap2(DecodeComponent(c.UserInfo(), UserInfoSet))
}

// HasUserInfo reports whether the authority carries a user-info part.
func (c *core[S]) HasUserInfo() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureUserInfo()
	return c.offs.userInfoEnd != len(c.data)
}

// Username returns the raw user-info up to the first ':'.
func (c *core[S]) Username() string {
	ui := c.UserInfo()
	if i := strings.IndexByte(ui, ':'); i >= 0 {
		return ui[:i]
	}
	return ui
}

// UsernameDecoded returns the percent-decoded username.
func (c *core[S]) UsernameDecoded() (string, error) {
	return errtrace.Wrap2(DecodeComponent(c.Username(), UserInfoSet))
}

// Password returns the raw user-info after the first ':', or "" when the
// user-info carries no password.
func (c *core[S]) Password() string {
	ui := c.UserInfo()
	if i := strings.IndexByte(ui, ':'); i >= 0 {
		return ui[i+1:]
	}
	return ""
}

// PasswordDecoded returns the percent-decoded password.
func (c *core[S]) PasswordDecoded() (string, error) {
	return errtrace.Wrap2(DecodeComponent(c.Password(), UserInfoSet))
}

// HasPassword reports whether the user-info carries a ':' separated password.
func (c *core[S]) HasPassword() bool {
	return strings.IndexByte(c.UserInfo(), ':') >= 0
}

// SetUserInfo percent-encodes info and replaces, inserts or, given "",
// removes the user-info part. Inserting into a URI without an authority also
// materializes the "//" authority prefix.
func (u *URI) SetUserInfo(info string) error {
	u.setRawUserInfo(EncodeComponent(info, UserInfoSet))
	return nil
}

// SetUsername replaces only the username part of the user-info, keeping the
// password. A ':' in the argument is percent-encoded.
func (u *URI) SetUsername(name string) error {
	enc := EncodeComponent(name, UserInfoPartSet)
	if pass := u.Password(); pass != "" || u.HasPassword() {
		enc += ":" + pass
	}
	u.setRawUserInfo(enc)
	return nil
}

// SetPassword replaces only the password part of the user-info, keeping the
// username. A ':' in the argument is percent-encoded.
func (u *URI) SetPassword(pass string) error {
	enc := u.Username()
	if pass != "" {
		enc += ":" + EncodeComponent(pass, UserInfoPartSet)
	}
	u.setRawUserInfo(enc)
	return nil
}

// ClearUserInfo removes the user-info and its '@' separator, if any.
func (u *URI) ClearUserInfo() {
	u.setRawUserInfo("")
}

// setRawUserInfo splices an already-encoded user-info into place.
func (u *URI) setRawUserInfo(enc string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.ensureUserInfo()

	n := len(u.data)
	switch {
	case u.offs.userInfoEnd != n:
		if enc == "" {
			u.replaceRange(u.offs.authorityStart, u.offs.userInfoEnd+1, "")
		} else {
			u.replaceRange(u.offs.authorityStart, u.offs.userInfoEnd, enc)
		}
	case u.offs.authorityStart != n:
		if enc != "" {
			u.replaceRange(u.offs.authorityStart, u.offs.authorityStart, enc+"@")
		}
	default:
		if enc == "" {
			return
		}
		if u.offs.schemeEnd != n {
			u.replaceRange(u.offs.schemeEnd+1, u.offs.schemeEnd+1, "//"+enc+"@")
		} else {
			u.replaceRange(0, 0, "//"+enc+"@")
		}
	}
}
