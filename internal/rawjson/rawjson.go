// Package rawjson wraps the byte-level JSON codec behind a single seam
// so the rest of the module never depends on a codec choice directly.
package rawjson

import (
	"bytes"
	"encoding/json"

	jsoniter "github.com/json-iterator/go"
)

// Numbers decode as json.Number so decimal text survives a round trip,
// and map keys sort so rendered output is deterministic.
var api = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	UseNumber:              true,
	ValidateJsonRawMessage: true,
}.Froze()

// Decode parses JSON text into a generic value: map[string]any, []any,
// json.Number, string, bool or nil.
func Decode(data []byte) (any, error) {
	var v any
	if err := api.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// Encode renders a generic value as compact JSON text.
func Encode(v any) ([]byte, error) {
	return api.Marshal(v)
}

// EncodeIndent renders a generic value as indented JSON text. Encoding
// stays with the codec; indentation is applied as a formatting pass so
// sorted keys and indentation compose correctly.
func EncodeIndent(v any) ([]byte, error) {
	data, err := api.Marshal(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
