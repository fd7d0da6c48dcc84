package audit

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/opendcim/dcimctl/pkg/inventory"
	"github.com/opendcim/dcimctl/pkg/label"
)

// LabelAudit checks that every device label follows the label policy, that
// no label is used twice, and that no two labels sit one edit apart. With
// Repair set, policy violations that can be normalized are reported as
// proposed repairs instead of errors.
type LabelAudit struct {
	Repair bool
}

// Perform audits the labels of the given devices. Duplicate and
// near-duplicate detection run on the labels as they would be after any
// proposed repairs, so a repair that collides with an existing label still
// surfaces as a duplicate.
func (a *LabelAudit) Perform(devices []inventory.Device) Report {
	rec := &recorder{}
	found := make(map[string][]string)

	for _, dev := range devices {
		effective := a.checkLabel(rec, dev)
		found[effective] = append(found[effective], dev.Label)
	}

	labels := make([]string, 0, len(found))
	for l := range found {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	for _, l := range labels {
		if len(found[l]) > 1 {
			rec.errorf("duplicate label %q used by devices: %s", l, strings.Join(found[l], ", "))
		}
	}

	// Distinct labels one edit apart are likely typos of each other.
	for i := 0; i < len(labels); i++ {
		for j := i + 1; j < len(labels); j++ {
			if levenshtein.ComputeDistance(labels[i], labels[j]) == 1 {
				rec.errorf("similar labels %q and %q, possible typo", labels[i], labels[j])
			}
		}
	}

	return rec.report()
}

// checkLabel audits one device label and returns the label the device
// would carry after any proposed repair.
func (a *LabelAudit) checkLabel(rec *recorder, dev inventory.Device) string {
	if label.Valid(dev.Label) {
		return dev.Label
	}
	if !a.Repair {
		rec.errorf("invalid label %q at position %d", dev.Label, dev.Position)
		return dev.Label
	}

	normalized, err := label.Normalize(dev.Label)
	if err != nil {
		rec.errorf("invalid and uncorrectable label %q at position %d", dev.Label, dev.Position)
		return dev.Label
	}
	rec.repairf("modified device label %q -> %q", dev.Label, normalized)
	return normalized
}
