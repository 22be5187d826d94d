package dynjson

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"

	"github.com/mcncl/dynjson/internal/rawjson"
)

// Kind identifies which variant of the JSON union a Value holds.
type Kind int

const (
	// Null is the kind of explicit JSON null, of missing input and of
	// every value produced by a failed parse or a mismatched lookup.
	Null Kind = iota
	Number
	String
	Bool
	Array
	Dictionary
	// Unknown marks a payload that does not correspond to any
	// JSON-compatible shape, such as a channel or a function value.
	Unknown
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Number:
		return "number"
	case String:
		return "string"
	case Bool:
		return "bool"
	case Array:
		return "array"
	case Dictionary:
		return "dictionary"
	case Unknown:
		return "unknown"
	default:
		return "invalid"
	}
}

// Value is an immutable, dynamically-typed JSON value. The zero Value is
// null. Derived values returned by navigation share substructure with
// their parent; since no mutation API exists, sharing is safe and
// concurrent readers need no synchronization.
type Value struct {
	kind Kind
	num  json.Number
	str  string
	boo  bool
	arr  []Value
	obj  map[string]Value
	raw  any // original payload of an Unknown value
}

// New builds a Value from an arbitrary input. Classification is checked
// in order, first match wins: an existing Value is returned as-is, a
// sequence or string-keyed mapping of Values keeps its already-normalized
// children, raw bytes are parsed as JSON text, and anything else is
// classified by its native shape. Payloads with no JSON-compatible shape
// become Unknown rather than an error.
func New(input any) Value {
	switch v := input.(type) {
	case Value:
		return v
	case []Value:
		arr := make([]Value, len(v))
		copy(arr, v)
		return Value{kind: Array, arr: arr}
	case map[string]Value:
		obj := make(map[string]Value, len(v))
		for k, elem := range v {
			obj[k] = elem
		}
		return Value{kind: Dictionary, obj: obj}
	case []byte:
		return Parse(v)
	case json.RawMessage:
		return Parse(v)
	}
	return fromNative(input)
}

// Parse constructs a Value from raw JSON text. Malformed input yields a
// single null value, not an error and not a partially-parsed structure.
func Parse(data []byte) Value {
	decoded, err := rawjson.Decode(data)
	if err != nil {
		return Value{}
	}
	return fromNative(decoded)
}

// ParseString parses JSON text given as a string.
func ParseString(s string) Value {
	return Parse([]byte(s))
}

// fromNative classifies a generic payload by shape. Numeric and boolean
// cases are tested before the collection cases so boxed numbers never
// classify as structures.
func fromNative(input any) Value {
	switch v := input.(type) {
	case nil:
		return Value{}
	case json.Number:
		return Value{kind: Number, num: v}
	case float64:
		return Value{kind: Number, num: json.Number(strconv.FormatFloat(v, 'g', -1, 64))}
	case float32:
		return Value{kind: Number, num: json.Number(strconv.FormatFloat(float64(v), 'g', -1, 32))}
	case int, int8, int16, int32, int64:
		return Value{kind: Number, num: json.Number(strconv.FormatInt(reflect.ValueOf(v).Int(), 10))}
	case uint, uint8, uint16, uint32, uint64:
		return Value{kind: Number, num: json.Number(strconv.FormatUint(reflect.ValueOf(v).Uint(), 10))}
	case bool:
		return Value{kind: Bool, boo: v}
	case string:
		return Value{kind: String, str: v}
	case []any:
		arr := make([]Value, len(v))
		for i, elem := range v {
			arr[i] = New(elem)
		}
		return Value{kind: Array, arr: arr}
	case map[string]any:
		obj := make(map[string]Value, len(v))
		for k, elem := range v {
			obj[k] = New(elem)
		}
		return Value{kind: Dictionary, obj: obj}
	}
	return fromReflected(input)
}

// fromReflected handles typed sequences and string-keyed maps, such as
// []string or map[string]int, that the direct type switch cannot see.
func fromReflected(input any) Value {
	rv := reflect.ValueOf(input)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		arr := make([]Value, rv.Len())
		for i := range arr {
			arr[i] = New(rv.Index(i).Interface())
		}
		return Value{kind: Array, arr: arr}
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			obj := make(map[string]Value, rv.Len())
			iter := rv.MapRange()
			for iter.Next() {
				obj[iter.Key().String()] = New(iter.Value().Interface())
			}
			return Value{kind: Dictionary, obj: obj}
		}
	}
	return Value{kind: Unknown, raw: input}
}

// Kind reports which variant the value holds.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether the value is null. Explicit JSON null, a failed
// parse and a missing key are deliberately indistinguishable here.
func (v Value) IsNull() bool {
	return v.kind == Null
}

// Interface returns the payload as a generic JSON-compatible structure:
// json.Number, string, bool, []any, map[string]any or nil. Unknown
// values return their original payload.
func (v Value) Interface() any {
	switch v.kind {
	case Number:
		return v.num
	case String:
		return v.str
	case Bool:
		return v.boo
	case Array:
		out := make([]any, len(v.arr))
		for i, elem := range v.arr {
			out[i] = elem.Interface()
		}
		return out
	case Dictionary:
		out := make(map[string]any, len(v.obj))
		for k, elem := range v.obj {
			out[k] = elem.Interface()
		}
		return out
	case Unknown:
		return v.raw
	default:
		return nil
	}
}

// Equal reports whether two values hold the same kind and structurally
// identical payloads.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	return reflect.DeepEqual(v.Interface(), o.Interface())
}

// MarshalJSON implements json.Marshaler. Unknown payloads cannot be
// rendered and surface the codec's error, per the stdlib contract.
func (v Value) MarshalJSON() ([]byte, error) {
	return rawjson.Encode(v.Interface())
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	decoded, err := rawjson.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to decode JSON value: %w", err)
	}
	*v = fromNative(decoded)
	return nil
}
