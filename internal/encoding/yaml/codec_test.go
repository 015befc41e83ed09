package yaml

import (
	"bytes"
	"errors"
	"testing"

	"gopkg.in/yaml.v3"
)

// original form of the data
const original = `key: value
list:
    - item1
    - item2
map:
    b: 2
    a: 1
`

// sorted form of the data
const sorted = `key: value
list:
    - item1
    - item2
map:
    a: 1
    b: 2
`

// original form of the data with two spaces of indentation
const indented = `key: value
list:
  - item1
  - item2
map:
  b: 2
  a: 1
`

func document(t *testing.T, s string) *yaml.Node {
	t.Helper()

	var n yaml.Node
	if err := yaml.Unmarshal([]byte(s), &n); err != nil {
		t.Fatal(err)
	}

	return &n
}

func TestCodec_Encode(t *testing.T) {
	tests := []struct {
		name     string
		codec    Codec
		expected string
	}{
		{"SourceOrder", Codec{}, original},
		{"SortKeys", Codec{SortKeys: true}, sorted},
		{"Indent", Codec{Indent: 2}, indented},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			err := tt.codec.Encode(&buf, document(t, original))
			if err != nil {
				t.Fatal(err)
			}

			if tt.expected != buf.String() {
				t.Fatalf("encoded value does not match the expected one\nactual:   %#v\nexpected: %#v", buf.String(), tt.expected)
			}
		})
	}
}

func TestCodec_Encode_SortKeysKeepsInput(t *testing.T) {
	n := document(t, original)

	if err := (Codec{SortKeys: true}).Encode(&bytes.Buffer{}, n); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := (Codec{}).Encode(&buf, n); err != nil {
		t.Fatal(err)
	}

	if original != buf.String() {
		t.Fatalf("sorting modified the input tree\nactual:   %#v\nexpected: %#v", buf.String(), original)
	}
}

type failingWriter struct{}

func (failingWriter) Write(_ []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestCodec_Encode_WriteError(t *testing.T) {
	err := (Codec{}).Encode(failingWriter{}, document(t, original))
	if err == nil {
		t.Fatal("expected encoding to fail")
	}

	t.Logf("encoding failed as expected: %s", err)
}
