// Package hostlist expands compact bracketed host notation such as
// "cn[304-306,308]" into explicit hostname lists.
//
// The grammar: entries are separated by top-level commas; a bracket group is
// "[" followed by a comma-separated list of digit strings or "first-last"
// ranges, closed by "]". Multiple bracket groups may appear in sequence
// within one entry ("gpu00[1-2][2-5]") and are expanded left to right; nested
// groups are illegal. Expansion preserves input order and performs no
// deduplication.
package hostlist

import (
	"fmt"
	"strconv"
	"strings"
)

// maxDepth bounds the number of expansion passes over the worklist. Each
// pass expands at most one bracket group per entry, so this caps the number
// of chained groups a single entry may carry.
const maxDepth = 20

// Split separates a hostlist on commas that are not enclosed in brackets.
// Empty entries (leading, trailing, or doubled commas, or an empty input)
// are an error, as are nested or unmatched brackets.
func Split(hostlist string) ([]string, error) {
	var entries []string
	var buf strings.Builder
	inside := false

	for _, r := range hostlist {
		switch r {
		case '[':
			if inside {
				return nil, fmt.Errorf("%w in %q", ErrNestedBracket, hostlist)
			}
			inside = true
			buf.WriteRune(r)
		case ']':
			if !inside {
				return nil, fmt.Errorf("%w in %q", ErrUnmatchedBracket, hostlist)
			}
			inside = false
			buf.WriteRune(r)
		case ',':
			if inside {
				buf.WriteRune(r)
				continue
			}
			if buf.Len() == 0 {
				return nil, fmt.Errorf("%w in %q", ErrEmptyListItem, hostlist)
			}
			entries = append(entries, buf.String())
			buf.Reset()
		default:
			buf.WriteRune(r)
		}
	}

	if buf.Len() == 0 {
		return nil, fmt.Errorf("%w in %q", ErrEmptyListItem, hostlist)
	}
	entries = append(entries, buf.String())
	return entries, nil
}

// Expand expands every bracket group in the hostlist and returns one
// hostname per expanded entry, in input order. Entries without brackets
// pass through unchanged.
func Expand(hostlist string) ([]string, error) {
	entries, err := Split(hostlist)
	if err != nil {
		return nil, err
	}

	// Iterative fixed point over a worklist: each pass expands the first
	// bracket group of every entry that still has one. Bounded by maxDepth
	// so adversarial chains of groups cannot run away.
	for depth := 0; depth < maxDepth; depth++ {
		expanded := false
		next := make([]string, 0, len(entries))
		for _, entry := range entries {
			prefix, contents, suffix, ok := firstGroup(entry)
			if !ok {
				next = append(next, entry)
				continue
			}
			nums, err := expandList(contents)
			if err != nil {
				return nil, err
			}
			for _, n := range nums {
				next = append(next, prefix+n+suffix)
			}
			expanded = true
		}
		entries = next
		if !expanded {
			return entries, nil
		}
	}

	for _, entry := range entries {
		if strings.Contains(entry, "]") {
			return nil, fmt.Errorf("%w in %q", ErrTooManyBrackets, entry)
		}
	}
	return entries, nil
}

// firstGroup splits an entry around its leftmost bracket group. ok is false
// when the entry holds no well-formed group, in which case the entry passes
// through expansion unchanged.
func firstGroup(entry string) (prefix, contents, suffix string, ok bool) {
	open := strings.Index(entry, "[")
	if open < 0 {
		return "", "", "", false
	}
	end := strings.Index(entry[open:], "]")
	if end < 0 {
		return "", "", "", false
	}
	end += open
	return entry[:open], entry[open+1 : end], entry[end+1:], true
}

// expandList expands the comma-separated numeric list inside one bracket
// group. Bare digit strings are kept verbatim, leading zeros included. A
// "first-last" range generates every number from first through last; when
// first carries a leading zero each generated number is zero-padded to
// len(first) digits, otherwise numbers are plain decimal.
func expandList(contents string) ([]string, error) {
	var out []string
	for _, item := range strings.Split(contents, ",") {
		first, last, isRange := strings.Cut(item, "-")
		if !isRange {
			if !allDigits(item) {
				return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidNumericRange, item)
			}
			out = append(out, item)
			continue
		}
		if !allDigits(first) || !allDigits(last) {
			return nil, fmt.Errorf("%w: %q has a non-numeric bound", ErrInvalidNumericRange, item)
		}
		lo, err := strconv.Atoi(first)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidNumericRange, item, err)
		}
		hi, err := strconv.Atoi(last)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidNumericRange, item, err)
		}
		if hi < lo {
			return nil, fmt.Errorf("%w: %q is descending", ErrInvalidNumericRange, item)
		}
		pad := 0
		if strings.HasPrefix(first, "0") {
			pad = len(first)
		}
		for n := lo; n <= hi; n++ {
			out = append(out, fmt.Sprintf("%0*d", pad, n))
		}
	}
	return out, nil
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
