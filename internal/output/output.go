// Package output encodes the optional structured echo of abacus commands.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"reflect"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/format"
	"gopkg.in/yaml.v3"
)

// Format names a structured encoding. Text disables the echo.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
	CUE  Format = "cue"
)

var formats = []Format{Text, JSON, YAML, CUE}

// Parse resolves a format name, case-insensitively. The empty string is Text.
func Parse(name string) (Format, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return Text, nil
	}
	for _, f := range formats {
		if string(f) == n {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported output format: %q (supported: %s)", name, SupportedCSV())
}

// SupportedCSV returns "text, json, yaml, cue".
func SupportedCSV() string {
	names := make([]string, 0, len(formats))
	for _, f := range formats {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

// Structured reports whether f produces an echo.
func (f Format) Structured() bool {
	return f != "" && f != Text
}

// Marshal encodes v in format f. Output always ends with a single newline.
// JSON and CUE have no literal for ±Inf or NaN, so such numbers are written
// as null; YAML keeps .inf and .nan.
func Marshal(f Format, v any) ([]byte, error) {
	var (
		b   []byte
		err error
	)
	switch f {
	case JSON:
		b, err = marshalJSON(nullable(v))
	case YAML:
		b, err = marshalYAML(v)
	case CUE:
		b, err = marshalCUE(nullable(v))
	default:
		return nil, fmt.Errorf("format %q has no structured encoding", string(f))
	}
	if err != nil {
		return nil, err
	}
	b = bytes.TrimRight(b, "\n")
	return append(b, '\n'), nil
}

// Echo writes a blank line, a "<FORMAT> output:" header and v encoded in f.
// It writes nothing for Text.
func Echo(w io.Writer, f Format, v any) error {
	if !f.Structured() {
		return nil
	}
	b, err := Marshal(f, v)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\n%s output:\n", strings.ToUpper(string(f))); err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func marshalYAML(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		_ = enc.Close()
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func marshalCUE(v any) ([]byte, error) {
	ctx := cuecontext.New()
	val := ctx.Encode(v)
	if err := val.Err(); err != nil {
		return nil, fmt.Errorf("cue encode: %v", err)
	}
	b, err := format.Node(val.Syntax(cue.Final(), cue.Concrete(true)))
	if err != nil {
		return nil, fmt.Errorf("cue format: %v", err)
	}
	return b, nil
}

// nullable returns v unchanged unless it holds a non-finite float. In that
// case it returns a generic copy (maps keyed by JSON field name, slices)
// with those floats replaced by nil.
func nullable(v any) any {
	rv := reflect.ValueOf(v)
	if !hasNonFinite(rv) {
		return v
	}
	return toGeneric(rv)
}

func nonFinite(f float64) bool {
	return math.IsInf(f, 0) || math.IsNaN(f)
}

func hasNonFinite(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return nonFinite(rv.Float())
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil() && hasNonFinite(rv.Elem())
	case reflect.Struct:
		for i := 0; i < rv.NumField(); i++ {
			if rv.Type().Field(i).IsExported() && hasNonFinite(rv.Field(i)) {
				return true
			}
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if hasNonFinite(rv.Index(i)) {
				return true
			}
		}
	case reflect.Map:
		iter := rv.MapRange()
		for iter.Next() {
			if hasNonFinite(iter.Value()) {
				return true
			}
		}
	}
	return false
}

func toGeneric(rv reflect.Value) any {
	switch rv.Kind() {
	case reflect.Invalid:
		return nil
	case reflect.Float32, reflect.Float64:
		if f := rv.Float(); !nonFinite(f) {
			return f
		}
		return nil
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return toGeneric(rv.Elem())
	case reflect.Struct:
		out := map[string]any{}
		t := rv.Type()
		for i := 0; i < rv.NumField(); i++ {
			sf := t.Field(i)
			if !sf.IsExported() {
				continue
			}
			name := sf.Name
			if tag, _, _ := strings.Cut(sf.Tag.Get("json"), ","); tag == "-" {
				continue
			} else if tag != "" {
				name = tag
			}
			out[name] = toGeneric(rv.Field(i))
		}
		return out
	case reflect.Slice, reflect.Array:
		out := make([]any, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out = append(out, toGeneric(rv.Index(i)))
		}
		return out
	case reflect.Map:
		out := map[string]any{}
		iter := rv.MapRange()
		for iter.Next() {
			out[fmt.Sprint(iter.Key().Interface())] = toGeneric(iter.Value())
		}
		return out
	default:
		return rv.Interface()
	}
}
