package hostlist

import "errors"

// Syntax errors reported while splitting and expanding hostlist notation.
// Callers match these with errors.Is; the wrapped message carries the
// offending entry or list item.
var (
	// ErrNestedBracket reports a "[" opened while a bracket group is
	// already open.
	ErrNestedBracket = errors.New("nested bracket")

	// ErrUnmatchedBracket reports a "]" with no open bracket group.
	ErrUnmatchedBracket = errors.New("unmatched bracket")

	// ErrEmptyListItem reports a leading, trailing, or doubled comma
	// producing an empty entry.
	ErrEmptyListItem = errors.New("empty hostlist item")

	// ErrInvalidNumericRange reports a non-digit range bound or a range
	// whose end precedes its start.
	ErrInvalidNumericRange = errors.New("invalid numeric range")

	// ErrTooManyBrackets reports an entry with unexpanded bracket groups
	// remaining after the expansion depth limit.
	ErrTooManyBrackets = errors.New("too many bracket groups")
)
