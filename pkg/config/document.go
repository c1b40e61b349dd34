package config

// Document is the on-disk shape of the configuration
type Document struct {
	Reload string                       `koanf:"reload" yaml:"reload,omitempty" toml:"reload,omitempty"`
	Themes map[string]map[string]string `koanf:"themes" yaml:"themes" toml:"themes"`
	Files  map[string]FileEntry         `koanf:"files" yaml:"files" toml:"files"`
}

// FileEntry describes one target file. When Blocks is set the entry hosts
// several tagged blocks and the block fields below Tag apply per block.
// A Format set on a multi-block entry is the default for its blocks.
type FileEntry struct {
	Path       string `koanf:"path" yaml:"path" toml:"path"`
	Comment    string `koanf:"comment" yaml:"comment,omitempty" toml:"comment,omitempty"`
	CommentEnd string `koanf:"comment_end" yaml:"comment_end,omitempty" toml:"comment_end,omitempty"`
	Tag        string `koanf:"tag" yaml:"tag,omitempty" toml:"tag,omitempty"`

	BlockEntry `koanf:",squash" yaml:",inline" toml:",inline"`

	Blocks map[string]BlockEntry `koanf:"blocks" yaml:"blocks,omitempty" toml:"blocks,omitempty"`
}

// BlockEntry holds the rendering options of one block
type BlockEntry struct {
	Format  string            `koanf:"format" yaml:"format,omitempty" toml:"format,omitempty"`
	Only    []string          `koanf:"only" yaml:"only,omitempty" toml:"only,omitempty"`
	Ignore  []string          `koanf:"ignore" yaml:"ignore,omitempty" toml:"ignore,omitempty"`
	Aliases map[string]string `koanf:"aliases" yaml:"aliases,omitempty" toml:"aliases,omitempty"`
	Custom  *string           `koanf:"custom" yaml:"custom,omitempty" toml:"custom,omitempty"`
}

// IsMulti reports whether the entry declares tagged blocks
func (f FileEntry) IsMulti() bool {
	return f.Blocks != nil
}

func (b BlockEntry) isZero() bool {
	return b.Format == "" && len(b.Only) == 0 && len(b.Ignore) == 0 && len(b.Aliases) == 0 && b.Custom == nil
}
