package json

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// ErrTrailingData is returned when a second value follows the top-level one.
var ErrTrailingData = errors.New("unexpected data after top-level value")

// Codec implements the codec.Decoder interface for JSON documents.
//
// Object members keep their order. Numbers keep the digits they were written with.
// When a key appears more than once in an object the last value wins,
// at the position of the first occurrence.
type Codec struct {
	// AllowComments accepts JSONC input: // and /* */ comments and trailing commas.
	AllowComments bool
}

func (c Codec) Decode(b []byte) (*yaml.Node, error) {
	if c.AllowComments {
		b = jsonc.ToJSON(b)
	}

	d := decoder{dec: json.NewDecoder(bytes.NewReader(b))}
	d.dec.UseNumber()

	root, err := d.value()
	if err != nil {
		return nil, err
	}

	// exactly one document per source
	_, err = d.dec.Token()
	switch {
	case err == io.EOF:
	case err != nil:
		return nil, err
	default:
		return nil, ErrTrailingData
	}

	return &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}, nil
}

type decoder struct {
	dec *json.Decoder
}

func (d decoder) token() (json.Token, error) {
	tok, err := d.dec.Token()
	if err == io.EOF {
		return nil, io.ErrUnexpectedEOF
	}

	return tok, err
}

func (d decoder) value() (*yaml.Node, error) {
	tok, err := d.token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		if t == '{' {
			return d.object()
		}
		return d.array()
	case json.Number:
		return numberNode(t), nil
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	default:
		// string or bool
		return scalarNode(t)
	}
}

func (d decoder) object() (*yaml.Node, error) {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	seen := make(map[string]int)

	for d.dec.More() {
		tok, err := d.token()
		if err != nil {
			return nil, err
		}
		key := tok.(string)

		value, err := d.value()
		if err != nil {
			return nil, err
		}

		if i, ok := seen[key]; ok {
			n.Content[i+1] = value
			continue
		}

		k, err := scalarNode(key)
		if err != nil {
			return nil, err
		}

		seen[key] = len(n.Content)
		n.Content = append(n.Content, k, value)
	}

	// closing brace
	if _, err := d.token(); err != nil {
		return nil, err
	}

	return n, nil
}

func (d decoder) array() (*yaml.Node, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}

	for d.dec.More() {
		value, err := d.value()
		if err != nil {
			return nil, err
		}

		n.Content = append(n.Content, value)
	}

	// closing bracket
	if _, err := d.token(); err != nil {
		return nil, err
	}

	return n, nil
}

// scalarNode lets the YAML encoder pick the tag and quoting style, so strings
// such as "true", "1.5" or "null" stay strings.
func scalarNode(v interface{}) (*yaml.Node, error) {
	n := new(yaml.Node)
	if err := n.Encode(v); err != nil {
		return nil, err
	}

	return n, nil
}

// numberNode keeps the literal as written where YAML reads it back unchanged, and
// tags it the way a YAML parser resolves it: integers that fit 64 bits are !!int,
// everything else is !!float.
func numberNode(num json.Number) *yaml.Node {
	s := num.String()

	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: s}
	}
	if _, err := strconv.ParseUint(s, 10, 64); err == nil {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: s}
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil && math.IsInf(f, 0) {
		s = ".inf"
		if f < 0 {
			s = "-.inf"
		}
	}

	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: floatLiteral(s)}
}

// floatLiteral rewrites an exponent literal so that YAML 1.1 resolvers also read
// it as a float: they need a "." in the mantissa and a sign on the exponent.
// 1e3 becomes 1.0e+3 and 1.25E-3 is left alone.
func floatLiteral(s string) string {
	i := strings.IndexAny(s, "eE")
	if i < 0 {
		return s
	}

	mantissa, exp := s[:i], s[i+1:]
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	if exp != "" && exp[0] != '+' && exp[0] != '-' {
		exp = "+" + exp
	}

	return mantissa + s[i:i+1] + exp
}
