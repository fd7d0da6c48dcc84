package dhcpd

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   map[string]HostRecord
	}{
		{
			name: "single host block",
			tokens: []string{
				"host", "node099", "{",
				"hardware", "ethernet", "54:1a:77:2f:70:4d", ";",
				"fixed-address", "10.0.18.3", ";",
				"}",
			},
			want: map[string]HostRecord{
				"node099": {
					"hardware ethernet": "54:1a:77:2f:70:4d",
					"fixed-address":     "10.0.18.3",
				},
			},
		},
		{
			name: "tokens outside blocks are ignored",
			tokens: []string{
				"subnet", "10.0.0.0", ";",
				"host", "a", "{", "key", "value", ";", "}",
				"ddns-update-style", "none", ";",
			},
			want: map[string]HostRecord{
				"a": {"key": "value"},
			},
		},
		{
			name: "option compound key",
			tokens: []string{
				"host", "a", "{",
				"option", "host-name", "a.example.org", ";",
				"}",
			},
			want: map[string]HostRecord{
				"a": {"option host-name": "a.example.org"},
			},
		},
		{
			name: "multi token value is space joined",
			tokens: []string{
				"host", "a", "{",
				"filter", "one", "two", "three", ";",
				"}",
			},
			want: map[string]HostRecord{
				"a": {"filter": "one two three"},
			},
		},
		{
			name: "empty statements are no-ops",
			tokens: []string{
				"host", "a", "{", ";", ";", "key", "v", ";", ";", "}",
			},
			want: map[string]HostRecord{
				"a": {"key": "v"},
			},
		},
		{
			name: "duplicate key last write wins",
			tokens: []string{
				"host", "a", "{",
				"fixed-address", "10.0.0.1", ";",
				"fixed-address", "10.0.0.2", ";",
				"}",
			},
			want: map[string]HostRecord{
				"a": {"fixed-address": "10.0.0.2"},
			},
		},
		{
			name: "duplicate hostname last write wins",
			tokens: []string{
				"host", "a", "{", "key", "old", ";", "}",
				"host", "a", "{", "key", "new", ";", "}",
			},
			want: map[string]HostRecord{
				"a": {"key": "new"},
			},
		},
		{
			name: "multiple hosts",
			tokens: []string{
				"host", "a", "{", "k", "1", ";", "}",
				"host", "b", "{", "k", "2", ";", "}",
			},
			want: map[string]HostRecord{
				"a": {"k": "1"},
				"b": {"k": "2"},
			},
		},
		{
			name:   "no host blocks",
			tokens: []string{"authoritative", ";"},
			want:   map[string]HostRecord{},
		},
		{
			name:   "empty token stream",
			tokens: nil,
			want:   map[string]HostRecord{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.tokens)
			if err != nil {
				t.Fatalf("Parse unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Parse = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		tokens  []string
		wantErr error
	}{
		{
			name:    "name without brace",
			tokens:  []string{"host", "a", "key", "value", ";"},
			wantErr: ErrMissingBrace,
		},
		{
			name:    "host keyword at end of input",
			tokens:  []string{"host"},
			wantErr: ErrUnexpectedEOF,
		},
		{
			name:    "name at end of input",
			tokens:  []string{"host", "a"},
			wantErr: ErrUnexpectedEOF,
		},
		{
			name:    "unclosed block",
			tokens:  []string{"host", "a", "{", "key", "value", ";"},
			wantErr: ErrUnexpectedEOF,
		},
		{
			name:    "statement without terminator",
			tokens:  []string{"host", "a", "{", "key", "value"},
			wantErr: ErrUnexpectedEOF,
		},
		{
			name:    "compound key at end of input",
			tokens:  []string{"host", "a", "{", "hardware"},
			wantErr: ErrUnexpectedEOF,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.tokens)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Parse error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseReader(t *testing.T) {
	conf := `
# static reservations
host node099 {
	hardware ethernet 54:1A:77:2f:70:4d;
	fixed-address 10.0.18.3;
}

host node100 {
	hardware ethernet 54:1a:77:2f:70:4e;
	option host-name "node100.example.org";
}
`
	got, err := ParseReader(strings.NewReader(conf))
	if err != nil {
		t.Fatalf("ParseReader unexpected error: %v", err)
	}
	want := map[string]HostRecord{
		"node099": {
			"hardware ethernet": "54:1a:77:2f:70:4d",
			"fixed-address":     "10.0.18.3",
		},
		"node100": {
			"hardware ethernet": "54:1a:77:2f:70:4e",
			"option host-name":  "node100.example.org",
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseReader = %v, want %v", got, want)
	}
}
