package dynjson

import (
	"encoding/json"
	"reflect"

	"github.com/iancoleman/strcase"

	"github.com/mcncl/dynjson/internal/rawjson"
)

// WriterOption adjusts how Text renders JSON. Unrecognized option values
// are ignored, which leaves the compact default in effect.
type WriterOption int

const (
	// Compact renders without insignificant whitespace. This is the
	// default when no option is supplied.
	Compact WriterOption = iota
	// Pretty renders with newlines and two-space indentation.
	Pretty
	// SnakeKeys rewrites dictionary keys to snake_case before rendering.
	SnakeKeys
	// CamelKeys rewrites dictionary keys to lowerCamelCase before rendering.
	CamelKeys
)

// Field is a single named entry of a Representable object.
type Field struct {
	Name  string
	Value any
}

// Representable is implemented by types that describe themselves as an
// ordered list of named fields for JSON conversion. The contract is
// resolved at compile time; no struct reflection is involved.
type Representable interface {
	JSONFields() []Field
}

// Represent converts an object into a dictionary-shaped generic value.
// Fields classify in order: nested Representable values convert
// recursively, natively JSON-compatible values are kept as-is, sequences
// convert element-wise, and fields of any other shape are silently
// omitted. A sequence containing an unconvertible element is omitted
// whole. Omission is not an error and leaves no placeholder.
func Represent(r Representable) map[string]any {
	out := make(map[string]any)
	for _, f := range r.JSONFields() {
		converted, ok := convertField(f.Value)
		if !ok {
			continue
		}
		out[f.Name] = converted
	}
	return out
}

// Wrap converts an object and wraps the result as a dictionary Value.
func Wrap(r Representable) Value {
	return New(Represent(r))
}

// Text converts an object and renders it as JSON text. It returns false
// when the converted structure cannot be rendered; given the omission
// rules of Represent that only happens if conversion itself has a
// defect. Rendering never raises.
func Text(r Representable, opts ...WriterOption) (string, bool) {
	return render(Represent(r), opts)
}

// Text renders the value as JSON text. Values holding Unknown payloads
// anywhere in their structure cannot be rendered and report false.
func (v Value) Text(opts ...WriterOption) (string, bool) {
	return render(v.Interface(), opts)
}

func convertField(v any) (any, bool) {
	if v == nil {
		return nil, true
	}
	if r, ok := v.(Representable); ok {
		return Represent(r), true
	}
	switch v.(type) {
	case json.Number, string, bool,
		float32, float64,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return v, true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			elem, ok := convertField(rv.Index(i).Interface())
			if !ok {
				return nil, false
			}
			out[i] = elem
		}
		return out, true
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			elem, ok := convertField(iter.Value().Interface())
			if !ok {
				return nil, false
			}
			out[iter.Key().String()] = elem
		}
		return out, true
	}
	return nil, false
}

func render(payload any, opts []WriterOption) (string, bool) {
	if !jsonCompatible(payload) {
		return "", false
	}
	pretty := false
	for _, opt := range opts {
		switch opt {
		case Pretty:
			pretty = true
		case SnakeKeys:
			payload = rewriteKeys(payload, strcase.ToSnake)
		case CamelKeys:
			payload = rewriteKeys(payload, strcase.ToLowerCamel)
		}
	}
	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = rawjson.EncodeIndent(payload)
	} else {
		data, err = rawjson.Encode(payload)
	}
	if err != nil {
		return "", false
	}
	return string(data), true
}

// jsonCompatible reports whether a generic payload consists purely of
// recognized JSON shapes.
func jsonCompatible(v any) bool {
	switch vv := v.(type) {
	case nil, json.Number, string, bool,
		float32, float64,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return true
	case []any:
		for _, elem := range vv {
			if !jsonCompatible(elem) {
				return false
			}
		}
		return true
	case map[string]any:
		for _, elem := range vv {
			if !jsonCompatible(elem) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// rewriteKeys returns a copy of the payload with every dictionary key
// passed through rewrite. Arrays are traversed, scalars pass through.
func rewriteKeys(v any, rewrite func(string) string) any {
	switch vv := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(vv))
		for k, elem := range vv {
			out[rewrite(k)] = rewriteKeys(elem, rewrite)
		}
		return out
	case []any:
		out := make([]any, len(vv))
		for i, elem := range vv {
			out[i] = rewriteKeys(elem, rewrite)
		}
		return out
	default:
		return v
	}
}
