package config

import (
	"errors"
	"io/fs"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	themererrors "github.com/arthur-debert/themer/pkg/errors"
	"github.com/arthur-debert/themer/pkg/logging"
	"github.com/arthur-debert/themer/pkg/types"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// keyDelim separates nested koanf keys. File entry names and variable names
// may contain dots, so the default "." cannot be used.
const keyDelim = "::"

// EnvPrefix is the prefix of environment variables overriding the document
const EnvPrefix = "THEMER_"

// Format is the serialization of a configuration document
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// DetectFormat picks the document format from the file extension. Anything
// that is not .toml is read as YAML.
func DetectFormat(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

func (f Format) parser() koanf.Parser {
	if f == FormatTOML {
		return toml.Parser()
	}
	return yaml.Parser()
}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Load reads the configuration document at path
func Load(path string) (*types.Config, error) {
	logger := logging.GetLogger("config")
	logger.Debug().Str("path", path).Msg("Loading configuration")

	cfg, err := load(file.Provider(path), DetectFormat(path))
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Int("themes", len(cfg.Themes)).
		Int("files", len(cfg.Files)).
		Msg("Configuration loaded")
	return cfg, nil
}

// Parse reads a configuration document from memory
func Parse(data []byte, format Format) (*types.Config, error) {
	return load(&rawBytesProvider{bytes: data}, format)
}

func load(provider koanf.Provider, format Format) (*types.Config, error) {
	k := koanf.New(keyDelim)

	// 1. Defaults
	defaults := map[string]interface{}{
		"reload": "",
	}
	if err := k.Load(confmap.Provider(defaults, keyDelim), nil); err != nil {
		return nil, themererrors.Wrap(err, themererrors.ErrInternal, "failed to load defaults")
	}

	// 2. Document
	if err := k.Load(provider, format.parser()); err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return nil, themererrors.Wrapf(err, themererrors.ErrConfigLoad,
				"failed to read configuration from %s", pathErr.Path).WithDetail("path", pathErr.Path)
		}
		return nil, themererrors.Wrapf(err, themererrors.ErrConfigParse, "failed to parse %s configuration", format)
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, keyDelim, envKey), nil); err != nil {
		return nil, themererrors.Wrap(err, themererrors.ErrConfigLoad, "failed to load environment")
	}

	// 4. Unmarshal
	var doc Document
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &doc,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				scalarToStringHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &doc, unmarshalConf); err != nil {
		return nil, themererrors.Wrap(err, themererrors.ErrConfigParse, "failed to decode configuration")
	}

	// 5. Convert and validate
	cfg := doc.toConfig()
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envKey maps THEMER_RELOAD to "reload". Other THEMER_* variables select
// files and directories and are not part of the document.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if key == "reload" {
		return key
	}
	return ""
}

// scalarToStringHookFunc renders YAML/TOML scalars the way they were written
// when they are decoded into strings. Without it booleans would become "1"
// and "0".
func scalarToStringHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t.Kind() != reflect.String {
			return data, nil
		}
		switch v := data.(type) {
		case bool:
			return strconv.FormatBool(v), nil
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64), nil
		case float32:
			return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
		}
		return data, nil
	}
}
