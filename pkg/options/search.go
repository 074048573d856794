package options

import (
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Filter returns the options whose label or value contains query, ignoring
// case and full-width/half-width differences. Prefix matches sort first; the
// original order is kept otherwise. An empty query returns a copy of list.
func Filter(list List, query string) List {
	q := fold(query)
	if q == "" {
		return list.Clone()
	}

	matches := make([]matchedOption, 0, len(list))
	for i, opt := range list {
		label := fold(opt.Label)
		value := fold(opt.Value)
		if !strings.Contains(label, q) && !strings.Contains(value, q) {
			continue
		}
		matches = append(matches, matchedOption{
			index:    i,
			isPrefix: strings.HasPrefix(label, q) || strings.HasPrefix(value, q),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].isPrefix != matches[j].isPrefix {
			return matches[i].isPrefix
		}
		return matches[i].index < matches[j].index
	})

	out := make(List, 0, len(matches))
	for _, match := range matches {
		out = append(out, list[match.index])
	}
	return out
}

type matchedOption struct {
	index    int
	isPrefix bool
}

func fold(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return strings.ToLower(norm.NFKC.String(s))
}
