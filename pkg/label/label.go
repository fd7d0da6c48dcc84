// Package label implements the device-label policy: labels contain only
// a-z, 0-9, and single "-" separators. Normalize makes a best-effort repair
// of labels that violate the policy.
package label

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrEmptyLabel reports a label with no usable characters left after
// normalization.
var ErrEmptyLabel = errors.New("label has no usable characters")

var validLabel = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// stripMarks decomposes text and removes combining marks, so accented
// letters fold to their base form before the policy alphabet is applied.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Valid reports whether the label already follows the policy.
func Valid(label string) bool {
	return validLabel.MatchString(label)
}

// Normalize rewrites a label to follow the policy: accents are folded to
// their base letters, everything is lowercased, and each run of characters
// outside a-z0-9 collapses to a single "-". Fails with ErrEmptyLabel when
// nothing usable remains.
func Normalize(label string) (string, error) {
	folded, _, err := transform.String(stripMarks, label)
	if err != nil {
		// Undecodable input; fall back to the raw bytes and let the
		// alphabet filter below discard them.
		folded = label
	}
	folded = strings.ToLower(folded)

	var b strings.Builder
	pendingSep := false
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(r)
			continue
		}
		pendingSep = true
	}

	out := b.String()
	if out == "" {
		return "", fmt.Errorf("%w: %q", ErrEmptyLabel, label)
	}
	return out, nil
}
