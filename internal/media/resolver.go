package media

import "strings"

// Resolver turns content API media paths into absolute URLs.
type Resolver struct {
	base        string
	placeholder string
}

func NewResolver(base, placeholder string) Resolver {
	return Resolver{
		base:        strings.TrimRight(base, "/"),
		placeholder: placeholder,
	}
}

// Resolve returns path unchanged when it already carries an http(s) scheme,
// prefixes it with the base origin otherwise, and falls back to the
// placeholder when path is empty.
func (r Resolver) Resolve(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return r.placeholder
	}
	if hasHTTPScheme(path) {
		return path
	}
	return r.base + "/" + strings.TrimLeft(path, "/")
}

func (r Resolver) Placeholder() string {
	return r.placeholder
}

func (r Resolver) Base() string {
	return r.base
}

func hasHTTPScheme(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
