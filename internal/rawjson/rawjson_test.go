package rawjson

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_GenericShapes(t *testing.T) {
	decoded, err := Decode([]byte(`{"name": "Mike", "age": 25, "tags": ["a", "b"], "ok": true, "gone": null}`))
	require.NoError(t, err)

	obj, ok := decoded.(map[string]any)
	require.True(t, ok, "object should decode as map[string]any, got %T", decoded)

	assert.Equal(t, "Mike", obj["name"])
	assert.Equal(t, json.Number("25"), obj["age"], "numbers decode as json.Number")
	assert.Equal(t, []any{"a", "b"}, obj["tags"])
	assert.Equal(t, true, obj["ok"])
	assert.Nil(t, obj["gone"])
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unbalanced brace", `{"a": 1`},
		{"empty", ``},
		{"trailing data", `{"a": 1} {"b": 2}`},
		{"bare word", `notjson`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestEncode_SortsMapKeys(t *testing.T) {
	data, err := Encode(map[string]any{"b": json.Number("2"), "a": "x", "c": true})
	require.NoError(t, err)
	assert.Equal(t, `{"a":"x","b":2,"c":true}`, string(data))
}

func TestEncodeIndent(t *testing.T) {
	data, err := EncodeIndent(map[string]any{"a": json.Number("1")})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}", string(data))
}

func TestEncode_RoundTrip(t *testing.T) {
	src := `{"a":[1,2.5,"s",false,null],"b":{"c":"d"}}`

	decoded, err := Decode([]byte(src))
	require.NoError(t, err)

	data, err := Encode(decoded)
	require.NoError(t, err)
	assert.Equal(t, src, string(data))
}
