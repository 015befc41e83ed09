package codec

import (
	"io"

	"gopkg.in/yaml.v3"
)

// Decoder turns the raw contents of a source into a value tree.
type Decoder interface {
	// Decode decodes the contents of b into a document node.
	// The returned node is of kind yaml.DocumentNode and holds exactly one child.
	Decode(b []byte) (*yaml.Node, error)
}

// Encoder writes a value tree to a destination.
type Encoder interface {
	// Encode writes the document node n to w.
	Encode(w io.Writer, n *yaml.Node) error
}
