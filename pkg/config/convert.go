package config

import (
	"github.com/arthur-debert/themer/pkg/types"
)

// toConfig converts the decoded document into the engine's model, filling in
// per-block defaults.
func (d Document) toConfig() *types.Config {
	cfg := &types.Config{
		Themes: make(map[string]types.ThemeVariables, len(d.Themes)),
		Files:  make(map[string]types.FileConfig, len(d.Files)),
		Reload: d.Reload,
	}

	for name, vars := range d.Themes {
		theme := make(types.ThemeVariables, len(vars))
		for k, v := range vars {
			theme[k] = v
		}
		cfg.Themes[name] = theme
	}

	for name, entry := range d.Files {
		cfg.Files[name] = entry.toFileConfig()
	}

	return cfg
}

func (f FileEntry) toFileConfig() types.FileConfig {
	comment := f.Comment
	if comment == "" {
		comment = types.DefaultComment
	}

	if !f.IsMulti() {
		return types.SingleFile(types.BlockConfig{
			Path:           f.Path,
			Comment:        comment,
			ClosingComment: f.CommentEnd,
			Tag:            f.Tag,
			Options:        f.BlockEntry.toOptions(types.DefaultFormat),
		})
	}

	format := f.Format
	if format == "" {
		format = types.DefaultFormat
	}

	blocks := make(map[string]types.BlockOptions, len(f.Blocks))
	for tag, block := range f.Blocks {
		blocks[tag] = block.toOptions(format)
	}

	return types.MultiFile(types.TaggedConfig{
		Path:           f.Path,
		Comment:        comment,
		ClosingComment: f.CommentEnd,
		Blocks:         blocks,
	})
}

func (b BlockEntry) toOptions(defaultFormat string) types.BlockOptions {
	format := b.Format
	if format == "" {
		format = defaultFormat
	}

	opts := types.BlockOptions{
		Only:   b.Only,
		Ignore: b.Ignore,
		Format: format,
		Custom: b.Custom,
	}
	if len(b.Aliases) > 0 {
		opts.Aliases = make(map[string]string, len(b.Aliases))
		for k, v := range b.Aliases {
			opts.Aliases[k] = v
		}
	}
	return opts
}
