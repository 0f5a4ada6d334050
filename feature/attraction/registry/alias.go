package registry

import "strings"

// hyphenated lowercases the key and replaces interior whitespace runs with
// single hyphens, e.g. "Ang Thong" -> "ang-thong".
func hyphenated(key string) string {
	fields := strings.Fields(strings.ToLower(key))
	return strings.Join(fields, "-")
}

// concatenated lowercases the key and strips whitespace and hyphens,
// e.g. "Ang-Thong" -> "angthong".
func concatenated(key string) string {
	lower := strings.ToLower(key)
	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		if r == '-' || r == ' ' || r == '\t' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// resolve looks up a province key against the alias map using, in order,
// the raw key, its hyphenated form, and its concatenated form. The first
// form that matches a registered alias wins; resolution is format-tolerant
// but never fuzzy.
func (r *Registry) resolve(key string) (provider Provider, ok bool) {
	if p, found := r.byAlias[key]; found {
		return p, true
	}
	if p, found := r.byAlias[hyphenated(key)]; found {
		return p, true
	}
	if p, found := r.byAlias[concatenated(key)]; found {
		return p, true
	}
	return nil, false
}
