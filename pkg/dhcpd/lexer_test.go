package dhcpd

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "host declaration",
			input: "host node099 { hardware ethernet 54:1A:77:2f:70:4d; fixed-address 10.0.18.3; }",
			want: []string{
				"host", "node099", "{",
				"hardware", "ethernet", "54:1a:77:2f:70:4d", ";",
				"fixed-address", "10.0.18.3", ";",
				"}",
			},
		},
		{
			name:  "bare words are lowercased",
			input: "Host NODE1",
			want:  []string{"host", "node1"},
		},
		{
			name:  "quoted strings keep case",
			input: `name "Rack A01";`,
			want:  []string{"name", "Rack A01", ";"},
		},
		{
			name:  "single quotes keep case",
			input: "label 'Big Server';",
			want:  []string{"label", "Big Server", ";"},
		},
		{
			name:  "empty quoted string is a token",
			input: `key "";`,
			want:  []string{"key", "", ";"},
		},
		{
			name:  "comments run to end of line",
			input: "host a # host b\nhost c",
			want:  []string{"host", "a", "host", "c"},
		},
		{
			name:  "comma and semicolon are their own tokens",
			input: "a,b;c",
			want:  []string{"a", ",", "b", ";", "c"},
		},
		{
			name:  "separator after closing quote",
			input: `"one","two";`,
			want:  []string{"one", ",", "two", ";"},
		},
		{
			name:  "comment after closing quote",
			input: "'abc'# trailing\nnext",
			want:  []string{"abc", "next"},
		},
		{
			name:  "whitespace variants",
			input: "a\tb\r\nc   d",
			want:  []string{"a", "b", "c", "d"},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "pending word flushed at end of input",
			input: "dangling",
			want:  []string{"dangling"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokenize(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Tokenize(%q) unexpected error: %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Tokenize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTokenizeQuoteErrors(t *testing.T) {
	t.Run("quote inside a word", func(t *testing.T) {
		_, err := Tokenize(strings.NewReader("host ab\"cd\""))
		var qerr *QuoteError
		if !errors.As(err, &qerr) {
			t.Fatalf("error = %v, want *QuoteError", err)
		}
		if qerr.Line != 1 || qerr.Col != 8 {
			t.Fatalf("position = %d:%d, want 1:8", qerr.Line, qerr.Col)
		}
	})

	t.Run("word glued to closing quote", func(t *testing.T) {
		_, err := Tokenize(strings.NewReader("\n\"abc\"def"))
		var aerr *AfterQuoteError
		if !errors.As(err, &aerr) {
			t.Fatalf("error = %v, want *AfterQuoteError", err)
		}
		if aerr.Line != 2 || aerr.Col != 6 {
			t.Fatalf("position = %d:%d, want 2:6", aerr.Line, aerr.Col)
		}
		if aerr.Char != 'd' {
			t.Fatalf("char = %q, want 'd'", aerr.Char)
		}
	})

	t.Run("unterminated quote", func(t *testing.T) {
		_, err := Tokenize(strings.NewReader("name \"oops"))
		var uerr *UnterminatedQuoteError
		if !errors.As(err, &uerr) {
			t.Fatalf("error = %v, want *UnterminatedQuoteError", err)
		}
	})
}
