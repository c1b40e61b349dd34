package engine

import (
	"github.com/arthur-debert/themer/pkg/markers"
	"github.com/arthur-debert/themer/pkg/render"
	"github.com/arthur-debert/themer/pkg/types"
	"github.com/arthur-debert/themer/pkg/vars"
)

// Preview is one rendered block, wrapped in its markers
type Preview struct {
	File     string
	Path     string
	Tag      string
	Text     string
	Warnings []error
}

// Preview renders the blocks of the named file entries (all entries when
// files is empty) for theme without reading or writing any target file.
// Imported templates are still read.
func (e *Engine) Preview(cfg *types.Config, theme string, files []string) ([]Preview, error) {
	variables, ok := cfg.Theme(theme)
	if !ok {
		return nil, unknownTheme(cfg, theme)
	}

	units, err := plan(cfg, files)
	if err != nil {
		return nil, err
	}

	r := render.New(e.fs, theme)
	previews := make([]Preview, 0, len(units))
	for _, u := range units {
		view, warnings := vars.Effective(variables, u.block.Options.Aliases)
		text, renderWarnings, err := r.Render(view, u.block.Options)
		if err != nil {
			return previews, err
		}

		m := markers.New(commentOf(u.block), u.block.Closing(), u.block.Tag)
		previews = append(previews, Preview{
			File:     u.file,
			Path:     u.path,
			Tag:      u.block.Tag,
			Text:     m.Wrap(text),
			Warnings: append(warnings, renderWarnings...),
		})
	}
	return previews, nil
}
