package encoding

import (
	"github.com/nipil/json2yaml/internal/encoding/codec"
	"github.com/nipil/json2yaml/internal/encoding/json"
	"github.com/nipil/json2yaml/internal/encoding/yaml"
)

type encodingError string

func (e encodingError) Error() string {
	return string(e)
}

const (
	// ErrDecoderNotFound is returned when there is no decoder registered for a format.
	ErrDecoderNotFound = encodingError("decoder not found for this format")

	// ErrEncoderNotFound is returned when there is no encoder registered for a format.
	ErrEncoderNotFound = encodingError("encoder not found for this format")

	// ErrFormatAlreadyRegistered is returned when a format already has a decoder or an encoder.
	ErrFormatAlreadyRegistered = encodingError("format already registered")
)

// Registry maps format names to the decoders and encoders serving them.
type Registry struct {
	decoders map[string]codec.Decoder
	encoders map[string]codec.Encoder
}

// NewRegistry returns a new, empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		decoders: make(map[string]codec.Decoder),
		encoders: make(map[string]codec.Encoder),
	}
}

// DefaultRegistry returns a Registry serving "json" sources and "yaml" destinations.
func DefaultRegistry(j json.Codec, y yaml.Codec) *Registry {
	r := NewRegistry()

	// a fresh registry holds neither format
	_ = r.RegisterDecoder("json", j)
	_ = r.RegisterEncoder("yaml", y)

	return r
}

// RegisterDecoder registers a Decoder for a format.
// Registering a Decoder for an already existing format is not supported.
func (r *Registry) RegisterDecoder(format string, d codec.Decoder) error {
	if _, ok := r.decoders[format]; ok {
		return ErrFormatAlreadyRegistered
	}

	r.decoders[format] = d

	return nil
}

// RegisterEncoder registers an Encoder for a format.
// Registering an Encoder for an already existing format is not supported.
func (r *Registry) RegisterEncoder(format string, e codec.Encoder) error {
	if _, ok := r.encoders[format]; ok {
		return ErrFormatAlreadyRegistered
	}

	r.encoders[format] = e

	return nil
}

// Decoder returns the Decoder registered for format.
//
// The error is [ErrDecoderNotFound] if no Decoder is registered for the format.
func (r *Registry) Decoder(format string) (codec.Decoder, error) {
	d, ok := r.decoders[format]
	if !ok {
		return nil, ErrDecoderNotFound
	}

	return d, nil
}

// Encoder returns the Encoder registered for format.
//
// The error is [ErrEncoderNotFound] if no Encoder is registered for the format.
func (r *Registry) Encoder(format string) (codec.Encoder, error) {
	e, ok := r.encoders[format]
	if !ok {
		return nil, ErrEncoderNotFound
	}

	return e, nil
}
