package links

import (
	"sort"
	"strings"
)

// Collection is an ordered set of unique URL strings. It is always sorted in
// byte-wise lexicographic order and never contains duplicates. Equality is
// exact string equality; no URL normalization is performed.
type Collection []string

// FromSet builds a Collection from a set of URLs.
func FromSet(set map[string]struct{}) Collection {
	out := make(Collection, 0, len(set))
	for u := range set {
		out = append(out, u)
	}
	sort.Strings(out)
	return out
}

// Dedupe builds a Collection from an arbitrary slice, dropping duplicates
// and empty strings.
func Dedupe(urls []string) Collection {
	set := make(map[string]struct{}, len(urls))
	for _, u := range urls {
		if u == "" {
			continue
		}
		set[u] = struct{}{}
	}
	return FromSet(set)
}

// Filter returns the URLs containing query as a case-insensitive substring.
// An empty query returns a copy of the whole collection. The collection
// itself is never mutated.
func (c Collection) Filter(query string) []string {
	if query == "" {
		out := make([]string, len(c))
		copy(out, c)
		return out
	}
	q := strings.ToLower(query)
	out := make([]string, 0, len(c))
	for _, u := range c {
		if strings.Contains(strings.ToLower(u), q) {
			out = append(out, u)
		}
	}
	return out
}

// Contains reports whether url is in the collection.
func (c Collection) Contains(url string) bool {
	i := sort.SearchStrings(c, url)
	return i < len(c) && c[i] == url
}
