package uri

// HasAuthority reports whether any authority subcomponent is present.
func (c *core[S]) HasAuthority() bool {
	return c.HasHost() || c.HasUserInfo() || c.HasPort()
}

// IsURN reports whether the URI is a "urn:" scheme URI without an authority.
func (c *core[S]) IsURN() bool {
	return c.Scheme() == "urn" && !c.HasAuthority()
}

// IsURL reports whether the URI locates a resource, that is, has a host.
func (c *core[S]) IsURL() bool {
	return c.HasHost()
}

// IsRelativeReference reports whether the URI has no scheme and must be
// resolved against a base before use.
func (c *core[S]) IsRelativeReference() bool {
	return !c.HasScheme()
}

// IsValid reports whether the text holds at least one recognizable URI
// component. The zero URI and unstructured text are not valid.
func (c *core[S]) IsValid() bool {
	return c.HasScheme() || c.HasAuthority() || c.HasPath() ||
		c.HasQuery() || c.HasFragment()
}
