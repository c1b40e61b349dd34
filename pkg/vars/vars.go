// Package vars builds the effective variable view a block is rendered with.
package vars

import (
	"sort"

	"github.com/arthur-debert/themer/pkg/errors"
	"github.com/arthur-debert/themer/pkg/types"
)

// Effective applies a block's aliases to a theme and returns the resulting
// view. The theme itself is never modified.
//
// Every alias is resolved against the theme as given, so aliases never chain:
// an alias whose source is produced by another alias is not followed. Sources
// are removed before targets are inserted, so an alias target always survives
// even when it shares a name with another alias's source. A source missing
// from the theme yields an ErrAliasMissing warning and leaves the view as is.
// A source is consumed by the first alias naming it, in alias name order;
// later aliases of the same source are reported as missing.
func Effective(theme types.ThemeVariables, aliases map[string]string) (types.ThemeVariables, []error) {
	view := theme.Clone()
	if len(aliases) == 0 {
		return view, nil
	}

	names := make([]string, 0, len(aliases))
	for newName := range aliases {
		names = append(names, newName)
	}
	sort.Strings(names)

	var warnings []error
	resolved := make([]string, 0, len(names))
	consumed := make(map[string]bool, len(names))
	for _, newName := range names {
		oldName := aliases[newName]
		if _, ok := theme[oldName]; !ok || consumed[oldName] {
			warnings = append(warnings, errors.Newf(errors.ErrAliasMissing,
				"failed to alias %s: %s does not exist", newName, oldName).
				WithDetail("alias", newName).
				WithDetail("source", oldName))
			continue
		}
		consumed[oldName] = true
		delete(view, oldName)
		resolved = append(resolved, newName)
	}

	for _, newName := range resolved {
		view[newName] = theme[aliases[newName]]
	}

	return view, warnings
}
