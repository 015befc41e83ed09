// Package json2yaml converts JSON documents to YAML documents.
//
// A Converter either converts a list of file and directory sources, writing
// each "name.json" to a sibling "name.yaml", or pipes one document from a
// reader to a writer.
//
// Existing destinations are never overwritten unless forced: the destination is
// created exclusively, so a file appearing between check and write is left alone.
package json2yaml

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/afero"

	"github.com/nipil/json2yaml/internal/encoding"
	"github.com/nipil/json2yaml/internal/encoding/json"
	"github.com/nipil/json2yaml/internal/encoding/yaml"
	"github.com/nipil/json2yaml/internal/logging"
)

const (
	sourceFormat      = "json"
	destinationFormat = "yaml"

	sourceExt       = "." + sourceFormat
	destinationExt  = "." + destinationFormat
	sourcePattern   = "*" + sourceExt
	stdinName       = "<stdin>"
	destinationPerm = 0o666
)

// Outcome is the result of converting one source.
type Outcome int

const (
	// OutcomeFailed means the source could not be converted.
	OutcomeFailed Outcome = iota
	// OutcomeWritten means the destination was created or overwritten.
	OutcomeWritten
	// OutcomeSkippedExists means the destination already existed and force was off.
	OutcomeSkippedExists
	// OutcomeSkippedWrongExtension means the source is not a .json file.
	OutcomeSkippedWrongExtension
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWritten:
		return "written"
	case OutcomeSkippedExists:
		return "skipped-exists"
	case OutcomeSkippedWrongExtension:
		return "skipped-wrong-extension"
	default:
		return "failed"
	}
}

// Converter converts JSON sources to YAML destinations.
// Use New() to create one.
type Converter struct {
	fs       afero.Fs
	logger   *slog.Logger
	registry *encoding.Registry

	stdin  io.Reader
	stdout io.Writer

	force     bool
	keepGoing bool
}

// Option configures a Converter using the functional options paradigm popularized by Rob Pike and Dave Cheney.
// If you're unfamiliar with this style,
// see https://commandcenter.blogspot.com/2014/01/self-referential-functions-and-design.html and
// https://dave.cheney.net/2014/10/17/functional-options-for-friendly-apis.
type Option interface {
	apply(c *Converter)
}

type optionFunc func(c *Converter)

func (fn optionFunc) apply(c *Converter) {
	fn(c)
}

// WithFs sets the filesystem sources are read from and destinations written to.
func WithFs(fs afero.Fs) Option {
	return optionFunc(func(c *Converter) {
		c.fs = fs
	})
}

// WithLogger sets the logger status and diagnostic messages go to.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *Converter) {
		c.logger = l
	})
}

// WithRegistry sets the registry the "json" decoder and "yaml" encoder are taken from.
func WithRegistry(r *encoding.Registry) Option {
	return optionFunc(func(c *Converter) {
		c.registry = r
	})
}

// WithStdio sets the streams used when Run is given no sources.
func WithStdio(in io.Reader, out io.Writer) Option {
	return optionFunc(func(c *Converter) {
		c.stdin = in
		c.stdout = out
	})
}

// WithForce overwrites existing destinations instead of skipping them.
func WithForce(force bool) Option {
	return optionFunc(func(c *Converter) {
		c.force = force
	})
}

// WithKeepGoing continues with the next source after a source fails to convert.
func WithKeepGoing(keepGoing bool) Option {
	return optionFunc(func(c *Converter) {
		c.keepGoing = keepGoing
	})
}

// New returns an initialized Converter.
// By default it works on the OS filesystem and standard streams, and logs nothing.
func New(opts ...Option) *Converter {
	c := &Converter{
		fs:       afero.NewOsFs(),
		logger:   logging.Discard(),
		registry: encoding.DefaultRegistry(json.Codec{}, yaml.Codec{}),
		stdin:    os.Stdin,
		stdout:   os.Stdout,
	}

	for _, opt := range opts {
		opt.apply(c)
	}

	return c
}
