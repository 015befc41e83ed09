// Json2yaml converts JSON files to YAML files.
//
// Usage:
//
//	json2yaml [flags] [source ...]
//
// Each source file "name.json" is converted to "name.yaml" next to it; a
// directory source converts the *.json files it directly contains. Existing
// outputs are kept unless --force is given.
//
// Without sources, one document is read on stdin and written to stdout:
//
//	cat file.json | json2yaml > file.yaml
//
// Every flag can also be set through a JSON2YAML_ environment variable,
// e.g. JSON2YAML_LOG_LEVEL=info.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"

	"github.com/nipil/json2yaml"
	"github.com/nipil/json2yaml/internal/config"
	"github.com/nipil/json2yaml/internal/encoding"
	"github.com/nipil/json2yaml/internal/encoding/json"
	"github.com/nipil/json2yaml/internal/encoding/yaml"
	"github.com/nipil/json2yaml/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:], afero.NewOsFs(), os.Stdin, os.Stdout, os.Stderr))
}

// run returns 0 on success, 1 when a source failed and 2 on a usage error.
func run(args []string, fs afero.Fs, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := config.NewFlagSet("json2yaml")
	flags.SetOutput(stderr)

	cfg, err := config.Parse(flags, args)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
		flags.Usage()
		return 2
	}

	logger := logging.New(stderr, cfg.LogLevel)
	logger.Debug("configuration", "sources", cfg.Sources, "force", cfg.Force, "keep-going", cfg.KeepGoing,
		"sort-keys", cfg.SortKeys, "indent", cfg.Indent, "jsonc", cfg.JSONC)

	converter := json2yaml.New(
		json2yaml.WithFs(fs),
		json2yaml.WithLogger(logger),
		json2yaml.WithStdio(stdin, stdout),
		json2yaml.WithForce(cfg.Force),
		json2yaml.WithKeepGoing(cfg.KeepGoing),
		json2yaml.WithRegistry(encoding.DefaultRegistry(
			json.Codec{AllowComments: cfg.JSONC},
			yaml.Codec{Indent: cfg.Indent, SortKeys: cfg.SortKeys},
		)),
	)

	if err := converter.Run(cfg.Sources); err != nil {
		return 1
	}

	return 0
}
