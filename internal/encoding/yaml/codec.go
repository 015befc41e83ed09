package yaml

import (
	"io"
	"sort"

	"gopkg.in/yaml.v3"
)

// Codec implements the codec.Encoder interface for YAML encoding.
type Codec struct {
	// Indent is the number of spaces per nesting level. Zero keeps the encoder default.
	Indent int

	// SortKeys emits mapping keys in lexical order instead of source order.
	SortKeys bool
}

func (c Codec) Encode(w io.Writer, n *yaml.Node) error {
	if c.SortKeys {
		n = sortedCopy(n)
	}

	enc := yaml.NewEncoder(w)
	if c.Indent > 0 {
		enc.SetIndent(c.Indent)
	}

	if err := enc.Encode(n); err != nil {
		enc.Close()
		return err
	}

	return enc.Close()
}

// sortedCopy returns a copy of n where the pairs of every mapping are ordered by key.
// Scalars are shared with n.
func sortedCopy(n *yaml.Node) *yaml.Node {
	if n == nil || len(n.Content) == 0 {
		return n
	}

	out := *n
	out.Content = make([]*yaml.Node, len(n.Content))
	for i, child := range n.Content {
		out.Content[i] = sortedCopy(child)
	}

	if out.Kind != yaml.MappingNode {
		return &out
	}

	pairs := make([][2]*yaml.Node, 0, len(out.Content)/2)
	for i := 0; i+1 < len(out.Content); i += 2 {
		pairs = append(pairs, [2]*yaml.Node{out.Content[i], out.Content[i+1]})
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i][0].Value < pairs[j][0].Value
	})

	for i, pair := range pairs {
		out.Content[2*i] = pair[0]
		out.Content[2*i+1] = pair[1]
	}

	return &out
}
