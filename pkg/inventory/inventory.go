// Package inventory loads local datacenter inventory documents: cabinets
// and the devices racked in them, described in YAML. It stands in for a
// live inventory service when working from exported or hand-maintained
// files.
package inventory

import (
	"fmt"
	"io"
	"os"

	"github.com/agnivade/levenshtein"
	"gopkg.in/yaml.v3"

	"github.com/opendcim/dcimctl/pkg/rack"
)

// Device is one racked device. Position is the bottom rack unit it
// occupies, 1-based; Height is the number of units it spans and defaults
// to 1 when omitted.
type Device struct {
	Label    string `yaml:"label" json:"label"`
	Position int    `yaml:"position" json:"position"`
	Height   int    `yaml:"height,omitempty" json:"height,omitempty"`
}

// Cabinet is one rack with its devices. Height is the cabinet's unit
// count.
type Cabinet struct {
	Name    string   `yaml:"name" json:"name"`
	Height  int      `yaml:"height" json:"height"`
	Devices []Device `yaml:"devices,omitempty" json:"devices,omitempty"`
}

// Inventory is the top-level document.
type Inventory struct {
	Cabinets []Cabinet `yaml:"cabinets" json:"cabinets"`
}

// NotFoundError reports a cabinet name with no match, carrying the closest
// existing name when one is plausibly a typo for it.
type NotFoundError struct {
	Name       string
	Suggestion string
}

func (e *NotFoundError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("cabinet %q not found (did you mean %q?)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("cabinet %q not found", e.Name)
}

// maxSuggestionDistance bounds how far a cabinet name may be from the
// requested one before it stops being offered as a suggestion.
const maxSuggestionDistance = 3

// Load decodes an inventory document from a YAML stream.
func Load(r io.Reader) (*Inventory, error) {
	var inv Inventory
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&inv); err != nil {
		return nil, fmt.Errorf("failed to decode inventory: %w", err)
	}
	for _, cab := range inv.Cabinets {
		if cab.Name == "" {
			return nil, fmt.Errorf("inventory has a cabinet with no name")
		}
		if cab.Height < 1 {
			return nil, fmt.Errorf("cabinet %q has no height", cab.Name)
		}
	}
	return &inv, nil
}

// LoadFile decodes an inventory document from a file path.
func LoadFile(path string) (*Inventory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open inventory: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Cabinet looks a cabinet up by name. A miss returns a *NotFoundError,
// suggesting the nearest existing name when one is close enough.
func (inv *Inventory) Cabinet(name string) (*Cabinet, error) {
	for i := range inv.Cabinets {
		if inv.Cabinets[i].Name == name {
			return &inv.Cabinets[i], nil
		}
	}

	best := ""
	bestDist := maxSuggestionDistance + 1
	for _, cab := range inv.Cabinets {
		if d := levenshtein.ComputeDistance(name, cab.Name); d < bestDist {
			best = cab.Name
			bestDist = d
		}
	}
	return nil, &NotFoundError{Name: name, Suggestion: best}
}

// Devices flattens every cabinet's device list, in document order.
func (inv *Inventory) Devices() []Device {
	var devices []Device
	for _, cab := range inv.Cabinets {
		devices = append(devices, cab.Devices...)
	}
	return devices
}

// Slots adapts the cabinet's devices to renderer slots. A device with no
// height occupies one unit.
func (c *Cabinet) Slots() []rack.Slot {
	slots := make([]rack.Slot, 0, len(c.Devices))
	for _, d := range c.Devices {
		h := d.Height
		if h < 1 {
			h = 1
		}
		slots = append(slots, rack.Slot{Position: d.Position, Height: h, Label: d.Label})
	}
	return slots
}
