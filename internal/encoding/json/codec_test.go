package json

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// original form of the data
const original = `{
  "key": "value",
  "list": ["item1", 2, 3.5, true, null],
  "map": {"z": 1, "a": {"nested": []}},
  "quoted": ["true", "1.5", "null", ""]
}`

// encoded form of the data, in source order
const encoded = `key: value
list:
    - item1
    - 2
    - 3.5
    - true
    - null
map:
    z: 1
    a:
        nested: []
quoted:
    - "true"
    - "1.5"
    - "null"
    - ""
`

func render(t *testing.T, n *yaml.Node) string {
	t.Helper()

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	require.NoError(t, enc.Encode(n))
	require.NoError(t, enc.Close())

	return buf.String()
}

func TestCodec_Decode(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		n, err := Codec{}.Decode([]byte(original))
		require.NoError(t, err)

		assert.Equal(t, yaml.DocumentNode, n.Kind)
		require.Len(t, n.Content, 1)
		assert.Equal(t, encoded, render(t, n))
	})

	t.Run("Scalars", func(t *testing.T) {
		tests := []struct {
			input    string
			expected string
		}{
			{`"hello"`, "hello\n"},
			{`42`, "42\n"},
			{`-0`, "-0\n"},
			{`1.25e3`, "1.25e+3\n"},
			{`1.5e-3`, "1.5e-3\n"},
			{`18446744073709551615`, "18446744073709551615\n"},
			{`123456789012345678901234567890`, "123456789012345678901234567890\n"},
			{`1e999`, ".inf\n"},
			{`false`, "false\n"},
			{`null`, "null\n"},
			{`{}`, "{}\n"},
			{`[]`, "[]\n"},
		}

		for _, tt := range tests {
			n, err := Codec{}.Decode([]byte(tt.input))
			require.NoError(t, err, tt.input)

			assert.Equal(t, tt.expected, render(t, n), tt.input)
		}
	})

	t.Run("NumbersResolve", func(t *testing.T) {
		n, err := Codec{}.Decode([]byte(`[1, -7, 2.5, 1e3, 18446744073709551615, 99999999999999999999]`))
		require.NoError(t, err)

		var v []interface{}
		require.NoError(t, yaml.Unmarshal([]byte(render(t, n)), &v))

		assert.Equal(t, []interface{}{1, -7, 2.5, 1000.0, uint64(18446744073709551615), 1e20}, v)
	})

	t.Run("ExponentLiterals", func(t *testing.T) {
		n, err := Codec{}.Decode([]byte(`[1e3, 1E5, 2e-2, 1e+2, 0.5E+1, 10]`))
		require.NoError(t, err)

		assert.Equal(t, "- 1.0e+3\n- 1.0E+5\n- 2.0e-2\n- 1.0e+2\n- 0.5E+1\n- 10\n", render(t, n))

		var v []interface{}
		require.NoError(t, yaml.Unmarshal([]byte(render(t, n)), &v))

		assert.Equal(t, []interface{}{1000.0, 100000.0, 0.02, 100.0, 5.0, 10}, v)
	})

	t.Run("DuplicateKeys", func(t *testing.T) {
		n, err := Codec{}.Decode([]byte(`{"a": 1, "b": 2, "a": 3}`))
		require.NoError(t, err)

		assert.Equal(t, "a: 3\nb: 2\n", render(t, n))
	})

	t.Run("InvalidData", func(t *testing.T) {
		inputs := []string{
			``,
			`   `,
			`invalid data`,
			`{"a": 1`,
			`{"a" 1}`,
			`{"a": 1,}`,
			`[1, 2,]`,
			`[1 2]`,
			`{1: 2}`,
			`// comment
{}`,
		}

		for _, input := range inputs {
			_, err := Codec{}.Decode([]byte(input))
			assert.Error(t, err, "input %q", input)
		}
	})

	t.Run("UnexpectedEOF", func(t *testing.T) {
		_, err := Codec{}.Decode([]byte(`[1, {"a": `))
		assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})

	t.Run("TrailingData", func(t *testing.T) {
		_, err := Codec{}.Decode([]byte(`{} {}`))
		assert.True(t, errors.Is(err, ErrTrailingData), "got %v", err)

		_, err = Codec{}.Decode([]byte(`{} x`))
		assert.Error(t, err)
	})
}

func TestCodec_Decode_AllowComments(t *testing.T) {
	input := []byte(`{
	// line comment
	"a": [1, 2,], /* block comment */
	"b": "http://example.com",
}`)

	_, err := Codec{}.Decode(input)
	require.Error(t, err)

	n, err := Codec{AllowComments: true}.Decode(input)
	require.NoError(t, err)

	assert.Equal(t, "a:\n    - 1\n    - 2\nb: http://example.com\n", render(t, n))
}
