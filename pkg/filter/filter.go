package filter

import (
	"fmt"
	"regexp"
	"strings"

	"artclip/pkg/cache"
)

type FilterMode int

const (
	FilterModeNone FilterMode = iota
	FilterModeExact
	FilterModeContains
	FilterModeRegex
	FilterModeFuzzy
)

// ParseMode maps a --match-mode flag value to a FilterMode.
func ParseMode(s string) (FilterMode, error) {
	switch strings.ToLower(s) {
	case "", "contains":
		return FilterModeContains, nil
	case "exact":
		return FilterModeExact, nil
	case "regex":
		return FilterModeRegex, nil
	case "fuzzy":
		return FilterModeFuzzy, nil
	default:
		return FilterModeNone, fmt.Errorf("unknown match mode '%s' (want exact, contains, regex, or fuzzy)", s)
	}
}

type StringFilter struct {
	Pattern string
	Mode    FilterMode
	regex   *regexp.Regexp
}

func NewStringFilter(pattern string, mode FilterMode) (*StringFilter, error) {
	f := &StringFilter{
		Pattern: pattern,
		Mode:    mode,
	}

	if mode == FilterModeRegex {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid regex pattern '%s': %w", pattern, err)
		}
		f.regex = re
	}

	return f, nil
}

func (f *StringFilter) Match(s string) bool {
	switch f.Mode {
	case FilterModeExact:
		return strings.EqualFold(s, f.Pattern)
	case FilterModeContains:
		return strings.Contains(strings.ToLower(s), strings.ToLower(f.Pattern))
	case FilterModeRegex:
		return f.regex != nil && f.regex.MatchString(s)
	case FilterModeFuzzy:
		return FuzzyMatch(f.Pattern, s)
	default:
		return true
	}
}

// MatchesEntry reports whether a cached article matches on title or
// feed name.
func (f *StringFilter) MatchesEntry(entry cache.Entry) bool {
	if f.Pattern == "" || f.Mode == FilterModeNone {
		return true
	}
	return f.Match(entry.Title) || f.Match(entry.FeedName)
}

// FilterEntries returns the subset of entries matching the filter.
func FilterEntries(entries []cache.Entry, f *StringFilter) []cache.Entry {
	if f == nil {
		return entries
	}
	matched := make([]cache.Entry, 0, len(entries))
	for _, entry := range entries {
		if f.MatchesEntry(entry) {
			matched = append(matched, entry)
		}
	}
	return matched
}

// FuzzyMatch reports whether every rune of pattern appears in text in
// order, case-insensitively.
func FuzzyMatch(pattern, text string) bool {
	if pattern == "" {
		return true
	}
	if text == "" {
		return false
	}

	pattern = strings.ToLower(pattern)
	text = strings.ToLower(text)

	pIdx := 0
	for tIdx := 0; tIdx < len(text) && pIdx < len(pattern); tIdx++ {
		if pattern[pIdx] == text[tIdx] {
			pIdx++
		}
	}
	return pIdx == len(pattern)
}
