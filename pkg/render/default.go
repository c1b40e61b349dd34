package render

import (
	"strings"
	"unicode"

	"github.com/arthur-debert/themer/pkg/types"
)

// Placeholders understood by a block's format string
const (
	KeyPlaceholder   = "<key>"
	ValuePlaceholder = "<value>"
)

// Default renders the key/value listing of view: one line per variable
// allowed by the block's filter, in key order.
func Default(view types.ThemeVariables, opts types.BlockOptions) string {
	format := opts.Format
	if format == "" {
		format = types.DefaultFormat
	}

	filter := NewFilter(opts.Only, opts.Ignore)

	var block strings.Builder
	for _, key := range filter.Keys(view) {
		line := strings.NewReplacer(
			KeyPlaceholder, key,
			ValuePlaceholder, view[key],
		).Replace(format)
		block.WriteString(line)
		block.WriteByte('\n')
	}

	return trimTrailingSpace(block.String())
}

func trimTrailingSpace(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}
