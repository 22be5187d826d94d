package dynjson

import (
	"encoding/json"
	"strconv"
	"strings"
)

// String returns the payload of a string value. Every other kind is
// absent; numbers and booleans are not stringified here.
func (v Value) String() (string, bool) {
	if v.kind != String {
		return "", false
	}
	return v.str, true
}

// Number resolves the value to a decimal number. Strings parse
// leniently: text that is not a number coerces to decimal zero with
// ok true, not to absent. Booleans coerce to 1 and 0. Null, arrays,
// dictionaries and unknown payloads are absent.
func (v Value) Number() (json.Number, bool) {
	switch v.kind {
	case Number:
		return v.num, true
	case String:
		trimmed := strings.TrimSpace(v.str)
		if _, err := strconv.ParseFloat(trimmed, 64); err != nil {
			return json.Number("0"), true
		}
		return json.Number(trimmed), true
	case Bool:
		if v.boo {
			return json.Number("1"), true
		}
		return json.Number("0"), true
	default:
		return "", false
	}
}

// Bool coerces to a boolean. Numbers and numeric strings follow the
// nonzero-is-true rule; non-numeric strings resolve to zero and so to
// false, never to an error.
func (v Value) Bool() (bool, bool) {
	if v.kind == Bool {
		return v.boo, true
	}
	f, ok := v.Float64()
	if !ok {
		return false, false
	}
	return f != 0, true
}

// Float64 coerces via Number.
func (v Value) Float64() (float64, bool) {
	n, ok := v.Number()
	if !ok {
		return 0, false
	}
	f, err := n.Float64()
	if err != nil {
		return 0, true
	}
	return f, true
}

// Float32 coerces via Number with standard narrowing.
func (v Value) Float32() (float32, bool) {
	f, ok := v.Float64()
	return float32(f), ok
}

// Int64 coerces via Number. Fractional values truncate toward zero.
func (v Value) Int64() (int64, bool) {
	n, ok := v.Number()
	if !ok {
		return 0, false
	}
	if i, err := n.Int64(); err == nil {
		return i, true
	}
	f, err := n.Float64()
	if err != nil {
		return 0, true
	}
	return int64(f), true
}

// Int coerces via Int64 with standard narrowing.
func (v Value) Int() (int, bool) {
	i, ok := v.Int64()
	return int(i), ok
}

// Uint64 coerces via Number. Values that do not parse as an unsigned
// integer fall back to the Int64 resolution and convert with Go's
// standard integer conversion rules.
func (v Value) Uint64() (uint64, bool) {
	n, ok := v.Number()
	if !ok {
		return 0, false
	}
	if u, err := strconv.ParseUint(n.String(), 10, 64); err == nil {
		return u, true
	}
	i, ok := v.Int64()
	return uint64(i), ok
}

// Array returns the ordered element payloads of an array value, each
// recursively unwrapped to its generic form. Absent for other kinds.
func (v Value) Array() ([]any, bool) {
	if v.kind != Array {
		return nil, false
	}
	out := make([]any, len(v.arr))
	for i, elem := range v.arr {
		out[i] = elem.Interface()
	}
	return out, true
}

// Dictionary returns the entry payloads of a dictionary value, each
// recursively unwrapped to its generic form. Absent for other kinds.
func (v Value) Dictionary() (map[string]any, bool) {
	if v.kind != Dictionary {
		return nil, false
	}
	out := make(map[string]any, len(v.obj))
	for k, elem := range v.obj {
		out[k] = elem.Interface()
	}
	return out, true
}
