package config

import (
	"path/filepath"

	"github.com/arthur-debert/themer/pkg/errors"
	"github.com/arthur-debert/themer/pkg/filesystem"
	"github.com/arthur-debert/themer/pkg/types"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// StarterDocument returns the example configuration written by WriteStarter
func StarterDocument() Document {
	custom := "# <name>\n<vars>\n"
	return Document{
		Themes: map[string]map[string]string{
			"dark": {
				"background": "#1d1f21",
				"foreground": "#c5c8c6",
				"cursor":     "#c5c8c6",
			},
			"light": {
				"background": "#ffffff",
				"foreground": "#1d1f21",
				"cursor":     "#1d1f21",
			},
		},
		Files: map[string]FileEntry{
			"kitty": {
				Path:       "~/.config/kitty/kitty.conf",
				Comment:    "#",
				BlockEntry: BlockEntry{Format: "<key> <value>"},
			},
			"nvim": {
				Path:    "~/.config/nvim/init.lua",
				Comment: "--",
				Blocks: map[string]BlockEntry{
					"colors": {
						Format: "vim.g.themer_<key> = '<value>'",
						Ignore: []string{"cursor"},
					},
					"name": {
						Custom: &custom,
						Only:   []string{"background"},
					},
				},
			},
		},
	}
}

// Marshal serializes doc in format
func Marshal(doc Document, format Format) ([]byte, error) {
	if format == FormatTOML {
		return toml.Marshal(doc)
	}
	return yaml.Marshal(doc)
}

// WriteStarter writes the example configuration to path, in the format
// matching its extension. An existing file is only replaced when force is
// set.
func WriteStarter(fsys types.FS, path string, force bool) error {
	if _, err := fsys.Stat(path); err == nil && !force {
		return errors.Newf(errors.ErrConfigExists, "configuration already exists at %s", path).
			WithDetail("path", path)
	}

	data, err := Marshal(StarterDocument(), DetectFormat(path))
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to serialize starter configuration")
	}

	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to create %s", filepath.Dir(path))
	}
	if err := filesystem.WriteFileAtomic(fsys, path, data); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path).
			WithDetail("path", path)
	}
	return nil
}
