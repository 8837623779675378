// Package query narrows in-memory entity collections by their textual
// fields. It never touches storage; callers pass the slices the
// repository returned.
package query

import "strings"

// MatchMode selects how the needle is compared against the field.
type MatchMode int

const (
	// MatchSubstring accepts any field containing the needle
	MatchSubstring MatchMode = iota
	// MatchExact accepts only fields equal to the needle
	MatchExact
)

// Options configures a filter run. The zero value means
// case-insensitive substring matching.
type Options struct {
	CaseSensitive bool
	Mode          MatchMode
}

// Filter returns the ordered subsequence of items whose text field,
// extracted by text, matches needle under opts. The relative order of
// the input is preserved. An empty needle in substring mode matches
// everything; no match yields an empty (nil) slice, never an error.
func Filter[T any](items []T, text func(T) string, needle string, opts Options) []T {
	if !opts.CaseSensitive {
		needle = strings.ToLower(needle)
	}

	var matched []T
	for _, item := range items {
		field := text(item)
		if !opts.CaseSensitive {
			field = strings.ToLower(field)
		}
		if matches(field, needle, opts.Mode) {
			matched = append(matched, item)
		}
	}
	return matched
}

func matches(field, needle string, mode MatchMode) bool {
	switch mode {
	case MatchExact:
		return field == needle
	default:
		return strings.Contains(field, needle)
	}
}
