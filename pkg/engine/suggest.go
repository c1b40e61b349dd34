package engine

import (
	"github.com/arthur-debert/themer/pkg/errors"
	"github.com/arthur-debert/themer/pkg/types"
	"github.com/sahilm/fuzzy"
)

const maxSuggestions = 3

// Suggest returns up to three configured theme names that fuzzily match name
func Suggest(cfg *types.Config, name string) []string {
	matches := fuzzy.Find(name, cfg.ThemeNames())

	var out []string
	for _, m := range matches {
		out = append(out, m.Str)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}

// unknownTheme builds the error returned for a theme missing from cfg
func unknownTheme(cfg *types.Config, name string) error {
	return errors.Newf(errors.ErrUnknownTheme, "unknown theme: %s", name).
		WithDetail("theme", name).
		WithDetail("suggestions", Suggest(cfg, name))
}
