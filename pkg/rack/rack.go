// Package rack lays out device labels into fixed-width ASCII elevation
// diagrams of the kind datacenter floor plans use. Units are numbered 1 at
// the bottom of the cabinet; the rendered diagram reads top-down, so unit
// numbers descend down the page.
package rack

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Slot describes one device footprint: the bottom unit it occupies, how
// many units it spans, and the label drawn in its top row.
type Slot struct {
	Position int
	Height   int
	Label    string
}

// Render lays the slots out into an elevation diagram of the given unit
// height and interior column width, one string per display line. Device
// rows use doubled interior borders; empty rows use single bars; every row
// carries a "Unnn" zero-padded unit label, so height must stay below 1000.
//
// Slots are trusted as given: positions outside 1..height or overlapping
// footprints produce undefined output. Callers own that validation.
func Render(height, width int, slots []Slot) []string {
	pending := make([]Slot, len(slots))
	copy(pending, slots)
	// Descending by position, consumed from the end, so the lowest slot is
	// always the next one due.
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].Position > pending[j].Position
	})

	spacer := "+----+" + strings.Repeat("-", width) + "+"
	interior := strings.Repeat(" ", width)
	bordered := strings.Repeat(" ", max(width-2, 0))

	lines := make([]string, 0, 2*height+1)
	inDevice := false
	next := len(pending) - 1

	// Built bottom-up, flipped once at the end so the top unit prints
	// first.
	for u := 1; u <= height; {
		if next >= 0 && pending[next].Position == u {
			slot := pending[next]
			next--
			lines = append(lines, spacer, labelRow(u, width, slot.Label))
			u++
			for i := 1; i < slot.Height; i++ {
				lines = append(lines,
					"|    ||"+bordered+"||",
					fmt.Sprintf("|U%03d||%s||", u, bordered))
				u++
			}
			inDevice = true
			continue
		}

		// A spacer closes off the device below; otherwise the gap between
		// two empty units is a plain row. The bottom of the rack always
		// starts with a spacer.
		if inDevice || u == 1 {
			lines = append(lines, spacer)
		} else {
			lines = append(lines, "|    |"+interior+"|")
		}
		lines = append(lines, fmt.Sprintf("|U%03d|%s|", u, interior))
		u++
		inDevice = false
	}
	lines = append(lines, spacer)

	for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
		lines[i], lines[j] = lines[j], lines[i]
	}
	return lines
}

// Fprint renders the diagram and writes it line by line to the given sink.
func Fprint(w io.Writer, height, width int, slots []Slot) error {
	for _, line := range Render(height, width, slots) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// labelRow draws the top row of a device: the label is sliced to at most
// width-3 characters and left-justified into the doubled border.
func labelRow(u, width int, label string) string {
	max := width - 3
	if max < 0 {
		max = 0
	}
	if runes := []rune(label); len(runes) > max {
		label = string(runes[:max])
	}
	return fmt.Sprintf("|U%03d|| %-*s||", u, max, label)
}
