package json2yaml

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Destination returns the path a source is converted to: the same name with a
// ".yaml" extension, in the same directory.
func Destination(source string) string {
	return strings.TrimSuffix(source, filepath.Ext(source)) + destinationExt
}

// Run converts every source in order, or converts stdin to stdout when there are none.
//
// A source that does not exist or is not a file or directory is logged and skipped.
// Any other failure is logged and ends the run, unless keep-going is set.
// With sources, the returned error is a *multierror.Error holding every failure.
func (c *Converter) Run(sources []string) error {
	if len(sources) == 0 {
		err := c.RunStream(c.stdin, c.stdout)
		if err != nil {
			c.logger.Error(err.Error())
		}

		return err
	}

	return c.runSources(sources)
}

func (c *Converter) runSources(sources []string) error {
	if c.force {
		c.logger.Info("forcing overwrite of existing files")
	}

	var result *multierror.Error
	outcomes := make(map[Outcome]int)

	fail := func(err error) {
		c.logger.Error(err.Error())
		result = multierror.Append(result, err)
		outcomes[OutcomeFailed]++
	}

run:
	for _, arg := range sources {
		c.logger.Debug("processing", "source", arg)

		files, err := c.Resolve(arg)
		if err != nil {
			fail(err)
			continue
		}

		for _, file := range files {
			outcome, err := c.ConvertFile(file)
			if err == nil {
				outcomes[outcome]++
				continue
			}

			fail(err)
			if !c.keepGoing {
				c.logger.Info("stopping at first failure, use --keep-going to convert remaining sources")
				break run
			}
		}
	}

	c.logger.Info("conversion finished",
		"written", outcomes[OutcomeWritten],
		"skipped", outcomes[OutcomeSkippedExists]+outcomes[OutcomeSkippedWrongExtension],
		"failed", outcomes[OutcomeFailed],
	)

	if result != nil {
		result.ErrorFormat = summarizeErrors
	}

	return result.ErrorOrNil()
}

// ConvertFile converts one source file to its destination.
//
// A source without a ".json" extension is skipped, as is an existing
// destination when force is off; both return a nil error.
func (c *Converter) ConvertFile(source string) (Outcome, error) {
	if filepath.Ext(source) != sourceExt {
		c.logger.Warn("source does not have a json extension, skipping", "source", source)
		return OutcomeSkippedWrongExtension, nil
	}

	destination := Destination(source)
	c.logger.Info("converting", "source", source, "destination", destination)

	doc, err := c.readFile(source)
	if err != nil {
		return OutcomeFailed, err
	}

	return c.writeFile(destination, doc)
}

func (c *Converter) readFile(source string) (*yaml.Node, error) {
	c.logger.Debug("opening source for reading", "source", source)

	b, err := afero.ReadFile(c.fs, source)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", source, err)
	}

	return c.decode(source, b)
}

func (c *Converter) decode(source string, b []byte) (*yaml.Node, error) {
	decoder, err := c.registry.Decoder(sourceFormat)
	if err != nil {
		return nil, err
	}

	doc, err := decoder.Decode(b)
	if err != nil {
		return nil, &MalformedJSONError{Source: source, Err: err}
	}

	c.logger.Debug("decoded document", "source", source, "root", kindName(doc))

	return doc, nil
}

func (c *Converter) encode(w io.Writer, doc *yaml.Node) error {
	encoder, err := c.registry.Encoder(destinationFormat)
	if err != nil {
		return err
	}

	return encoder.Encode(w, doc)
}

// writeFile creates destination exclusively unless force is set, in which case
// an existing file is truncated.
func (c *Converter) writeFile(destination string, doc *yaml.Node) (outcome Outcome, err error) {
	flag := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if c.force {
		flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}

	c.logger.Debug("opening destination for writing", "destination", destination, "force", c.force)

	f, err := c.fs.OpenFile(destination, flag, destinationPerm)
	if err != nil {
		if !c.force && errors.Is(err, fs.ErrExist) {
			c.logger.Warn("output file already exists, skipping, use --force to overwrite", "destination", destination)
			return OutcomeSkippedExists, nil
		}

		return OutcomeFailed, fmt.Errorf("opening %s: %w", destination, err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			outcome, err = OutcomeFailed, fmt.Errorf("closing %s: %w", destination, cerr)
		}
	}()

	if err := c.encode(f, doc); err != nil {
		return OutcomeFailed, fmt.Errorf("writing %s: %w", destination, err)
	}

	return OutcomeWritten, nil
}

// RunStream converts the single JSON document read from r until end of stream,
// and writes it to w as YAML.
func (c *Converter) RunStream(r io.Reader, w io.Writer) error {
	if c.force {
		c.logger.Warn("forcing has no effect when working with stdin and stdout")
	}

	c.logger.Debug("reading standard input")

	b, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading %s: %w", stdinName, err)
	}

	doc, err := c.decode(stdinName, b)
	if err != nil {
		return err
	}

	if err := c.encode(w, doc); err != nil {
		return fmt.Errorf("writing standard output: %w", err)
	}

	return nil
}

func kindName(doc *yaml.Node) string {
	n := doc
	if n.Kind == yaml.DocumentNode && len(n.Content) == 1 {
		n = n.Content[0]
	}

	switch n.Kind {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	default:
		return "scalar"
	}
}
