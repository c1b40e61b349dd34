package types

import (
	"sort"
)

const (
	// DefaultComment is the comment token used when a file entry sets none
	DefaultComment = "#"

	// DefaultFormat is the line template used by the default key/value listing
	DefaultFormat = "<key> = <value>"
)

// ThemeVariables maps variable names to their values
type ThemeVariables map[string]string

// Clone returns an independent copy of the variable set
func (v ThemeVariables) Clone() ThemeVariables {
	out := make(ThemeVariables, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// Keys returns the variable names in sorted order
func (v ThemeVariables) Keys() []string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// BlockOptions controls how one managed block is rendered.
type BlockOptions struct {
	// Only is an allowlist; when non-empty Ignore is not consulted
	Only []string

	// Ignore excludes names when Only is empty
	Ignore []string

	// Aliases maps new-name -> existing-name
	Aliases map[string]string

	// Format is the line template with <key> and <value> placeholders
	Format string

	// Custom replaces the key/value listing when set
	Custom *string
}

// HasCustom reports whether a custom template body is configured
func (o BlockOptions) HasCustom() bool {
	return o.Custom != nil
}

// BlockConfig is one renderable unit: one marker pair in one file.
type BlockConfig struct {
	Path           string
	Comment        string
	ClosingComment string
	Tag            string
	Options        BlockOptions
}

// Closing returns the closing comment token, defaulting to the opening one
func (b BlockConfig) Closing() string {
	if b.ClosingComment == "" {
		return b.Comment
	}
	return b.ClosingComment
}

// TaggedConfig is one target file hosting several tagged blocks
type TaggedConfig struct {
	Path           string
	Comment        string
	ClosingComment string
	Blocks         map[string]BlockOptions
}

// Tags returns the block tags in sorted order
func (t TaggedConfig) Tags() []string {
	tags := make([]string, 0, len(t.Blocks))
	for tag := range t.Blocks {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// FileKind tells the two FileConfig variants apart
type FileKind int

const (
	FileSingle FileKind = iota
	FileMulti
)

// String returns the string representation of the kind
func (k FileKind) String() string {
	switch k {
	case FileSingle:
		return "single"
	case FileMulti:
		return "multi"
	default:
		return "unknown"
	}
}

// FileConfig is either a Single block or a Multi (tagged) file. Exactly one
// of the two fields is set; use SingleFile and MultiFile to build values.
type FileConfig struct {
	single *BlockConfig
	multi  *TaggedConfig
}

// SingleFile wraps a single block configuration
func SingleFile(b BlockConfig) FileConfig {
	return FileConfig{single: &b}
}

// MultiFile wraps a tagged multi-block configuration
func MultiFile(t TaggedConfig) FileConfig {
	return FileConfig{multi: &t}
}

// Kind returns which variant this file configuration holds
func (f FileConfig) Kind() FileKind {
	if f.multi != nil {
		return FileMulti
	}
	return FileSingle
}

// Single returns the single block variant
func (f FileConfig) Single() (BlockConfig, bool) {
	if f.single == nil {
		return BlockConfig{}, false
	}
	return *f.single, true
}

// Multi returns the tagged variant
func (f FileConfig) Multi() (TaggedConfig, bool) {
	if f.multi == nil {
		return TaggedConfig{}, false
	}
	return *f.multi, true
}

// Path returns the target path shared by every block of the file
func (f FileConfig) Path() string {
	switch {
	case f.multi != nil:
		return f.multi.Path
	case f.single != nil:
		return f.single.Path
	default:
		return ""
	}
}

// Blocks flattens the file configuration into one BlockConfig per managed
// region. Multi files yield one block per tag, in tag order, each inheriting
// the shared path and comment tokens.
func (f FileConfig) Blocks() []BlockConfig {
	switch {
	case f.multi != nil:
		blocks := make([]BlockConfig, 0, len(f.multi.Blocks))
		for _, tag := range f.multi.Tags() {
			blocks = append(blocks, BlockConfig{
				Path:           f.multi.Path,
				Comment:        f.multi.Comment,
				ClosingComment: f.multi.ClosingComment,
				Tag:            tag,
				Options:        f.multi.Blocks[tag],
			})
		}
		return blocks
	case f.single != nil:
		return []BlockConfig{*f.single}
	default:
		return nil
	}
}

// Config is the loaded, read-only configuration for one run
type Config struct {
	Themes map[string]ThemeVariables
	Files  map[string]FileConfig
	Reload string
}

// Theme looks up a theme by name
func (c *Config) Theme(name string) (ThemeVariables, bool) {
	theme, ok := c.Themes[name]
	return theme, ok
}

// ThemeNames returns all theme names in sorted order
func (c *Config) ThemeNames() []string {
	names := make([]string, 0, len(c.Themes))
	for name := range c.Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FileNames returns all file entry names in sorted order
func (c *Config) FileNames() []string {
	names := make([]string, 0, len(c.Files))
	for name := range c.Files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
