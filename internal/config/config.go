// Package config turns command line flags and JSON2YAML_* environment variables
// into the settings of a conversion run.
//
// Flags given on the command line take precedence over the environment,
// which takes precedence over flag defaults.
package config

import (
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/nipil/json2yaml/internal/logging"
)

// EnvPrefix is prepended to the upper-cased flag name to form its environment variable.
const EnvPrefix = "JSON2YAML"

const (
	minIndent = 2
	maxIndent = 9
)

// Config holds the settings of a single run.
type Config struct {
	Force     bool       `mapstructure:"force"`
	LogLevel  slog.Level `mapstructure:"log-level"`
	KeepGoing bool       `mapstructure:"keep-going"`
	SortKeys  bool       `mapstructure:"sort-keys"`
	Indent    int        `mapstructure:"indent"`
	JSONC     bool       `mapstructure:"jsonc"`

	// Sources are the positional arguments. Empty means stdin to stdout.
	Sources []string `mapstructure:"-"`
}

// NewFlagSet declares the command line flags of the program.
func NewFlagSet(name string) *pflag.FlagSet {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.SortFlags = false

	flags.Bool("force", false, "overwrite existing .yaml outputs (no effect when reading stdin)")
	flags.String("log-level", "warning", "verbosity of messages on stderr: "+strings.Join(logging.LevelNames, ", "))
	flags.Bool("keep-going", false, "continue with the next source after a source fails to convert")
	flags.Bool("sort-keys", false, "emit mapping keys in sorted order instead of source order")
	flags.Int("indent", 4, fmt.Sprintf("YAML indentation width (%d to %d)", minIndent, maxIndent))
	flags.Bool("jsonc", false, "accept comments and trailing commas in JSON input")

	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage: %s [flags] [source ...]\n\n", name)
		fmt.Fprintf(flags.Output(), "Converts each JSON source to a sibling .yaml file. Directories are scanned\n")
		fmt.Fprintf(flags.Output(), "for *.json files. Without sources, reads JSON on stdin and writes YAML to stdout.\n\n")
		flags.PrintDefaults()
	}

	return flags
}

// Parse parses args with flags and resolves the final settings.
func Parse(flags *pflag.FlagSet, args []string) (Config, error) {
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return Config{}, err
	}

	var c Config
	if err := v.Unmarshal(&c, viper.DecodeHook(logLevelHookFunc())); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	if c.Indent < minIndent || c.Indent > maxIndent {
		return Config{}, fmt.Errorf("invalid configuration: indent must be between %d and %d, got %d", minIndent, maxIndent, c.Indent)
	}

	c.Sources = flags.Args()

	return c, nil
}

// logLevelHookFunc decodes level names such as "warning" into a slog.Level.
func logLevelHookFunc() mapstructure.DecodeHookFuncType {
	return func(_ reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t != reflect.TypeOf(slog.Level(0)) {
			return data, nil
		}

		name, err := cast.ToStringE(data)
		if err != nil {
			return nil, err
		}

		return logging.ParseLevel(name)
	}
}
