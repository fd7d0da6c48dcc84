package serializer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"
	"sort"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Writer serializes values to a sink in a fixed format.
type Writer struct {
	format Format
	out    io.Writer
	path   string
}

// NewWriter returns a Writer that serializes to the given sink. An unknown
// format falls back to JSON.
func NewWriter(format Format, out io.Writer) *Writer {
	if format.IsUnknown() {
		format = FormatJSON
	}
	return &Writer{format: format, out: out}
}

// NewStdoutWriter returns a Writer targeting stdout.
func NewStdoutWriter(format Format) *Writer {
	return NewWriter(format, os.Stdout)
}

// NewFileWriterOrStdout returns a Writer targeting the given file path, or
// stdout when the path is empty or "-". The file is created when Serialize
// runs.
func NewFileWriterOrStdout(format Format, path string) *Writer {
	if path == "" || path == StdoutURI {
		return NewStdoutWriter(format)
	}
	if format.IsUnknown() {
		format = FormatJSON
	}
	return &Writer{format: format, path: path}
}

// Serialize writes the value to the writer's sink in its format.
func (w *Writer) Serialize(ctx context.Context, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	out := w.out
	if w.path != "" {
		f, err := os.Create(w.path)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	switch w.format {
	case FormatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to serialize to yaml: %w", err)
		}
		return enc.Close()
	case FormatTable:
		return writeTable(out, v)
	default:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize to json: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}
}

// writeTable renders the value as a two-column FIELD/VALUE table with
// nested structure flattened into dotted paths.
func writeTable(out io.Writer, v any) error {
	rows := make([][2]string, 0, 16)
	flatten(reflect.ValueOf(v), "", &rows)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tVALUE")
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\n", row[0], row[1])
	}
	return tw.Flush()
}

// flatten walks the value and records scalar leaves as (path, value) rows.
// Struct fields append ".Name", map keys append ".key" in sorted order, and
// slice elements append "[i]".
func flatten(v reflect.Value, path string, rows *[][2]string) {
	if !v.IsValid() {
		*rows = append(*rows, [2]string{path, "<nil>"})
		return
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			*rows = append(*rows, [2]string{path, "<nil>"})
			return
		}
		flatten(v.Elem(), path, rows)
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			if !t.Field(i).IsExported() {
				continue
			}
			flatten(v.Field(i), joinPath(path, t.Field(i).Name), rows)
		}
	case reflect.Map:
		keys := make([]string, 0, v.Len())
		byKey := make(map[string]reflect.Value, v.Len())
		for _, k := range v.MapKeys() {
			ks := fmt.Sprintf("%v", k.Interface())
			keys = append(keys, ks)
			byKey[ks] = v.MapIndex(k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			flatten(byKey[k], joinPath(path, k), rows)
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			flatten(v.Index(i), fmt.Sprintf("%s[%d]", path, i), rows)
		}
	default:
		*rows = append(*rows, [2]string{path, fmt.Sprintf("%v", v.Interface())})
	}
}

func joinPath(path, field string) string {
	if path == "" {
		return field
	}
	return path + "." + field
}
