package label

import (
	"errors"
	"testing"
)

func TestValid(t *testing.T) {
	tests := []struct {
		label string
		want  bool
	}{
		{"node101", true},
		{"gpu-node-01", true},
		{"a", true},
		{"Node101", false},
		{"node_101", false},
		{"node--101", false},
		{"-node101", false},
		{"node101-", false},
		{"", false},
		{"node 101", false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			if got := Valid(tt.label); got != tt.want {
				t.Fatalf("Valid(%q) = %v, want %v", tt.label, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  string
	}{
		{"already valid", "node101", "node101"},
		{"uppercase", "Node101", "node101"},
		{"underscores become dashes", "gpu_node_01", "gpu-node-01"},
		{"spaces become dashes", "Big Server 3", "big-server-3"},
		{"runs collapse", "node -- 101", "node-101"},
		{"leading and trailing junk trimmed", "  node101! ", "node101"},
		{"non-letter runes become dashes", "sørver-1", "s-rver-1"},
		{"diacritics fold", "caché", "cache"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.label)
			if err != nil {
				t.Fatalf("Normalize(%q) unexpected error: %v", tt.label, err)
			}
			if got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.label, got, tt.want)
			}
			if !Valid(got) {
				t.Fatalf("Normalize(%q) = %q is not a valid label", tt.label, got)
			}
		})
	}
}

func TestNormalizeEmpty(t *testing.T) {
	for _, label := range []string{"", "---", "!!!", "  "} {
		if _, err := Normalize(label); !errors.Is(err, ErrEmptyLabel) {
			t.Fatalf("Normalize(%q) error = %v, want %v", label, err, ErrEmptyLabel)
		}
	}
}
