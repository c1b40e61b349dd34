package render

import (
	"sort"

	"github.com/arthur-debert/themer/pkg/types"
)

// FilterMode selects how a Filter treats its names
type FilterMode int

const (
	// FilterNone allows every variable
	FilterNone FilterMode = iota
	// FilterAllow allows only the listed variables
	FilterAllow
	// FilterDeny allows every variable except the listed ones
	FilterDeny
)

// String returns the string representation of the mode
func (m FilterMode) String() string {
	switch m {
	case FilterNone:
		return "none"
	case FilterAllow:
		return "only"
	case FilterDeny:
		return "ignore"
	default:
		return "unknown"
	}
}

// Filter is the variable predicate of a block. An allowlist always wins over
// a denylist: ignore is consulted only when only is empty.
type Filter struct {
	Mode  FilterMode
	Names map[string]struct{}
}

// NewFilter builds the predicate from a block's only and ignore lists
func NewFilter(only, ignore []string) Filter {
	switch {
	case len(only) > 0:
		return Filter{Mode: FilterAllow, Names: toSet(only)}
	case len(ignore) > 0:
		return Filter{Mode: FilterDeny, Names: toSet(ignore)}
	default:
		return Filter{Mode: FilterNone}
	}
}

// Allows reports whether the named variable passes the filter
func (f Filter) Allows(name string) bool {
	_, listed := f.Names[name]
	switch f.Mode {
	case FilterAllow:
		return listed
	case FilterDeny:
		return !listed
	default:
		return true
	}
}

// Keys returns the names of view that pass the filter, sorted
func (f Filter) Keys(view types.ThemeVariables) []string {
	keys := make([]string, 0, len(view))
	for name := range view {
		if f.Allows(name) {
			keys = append(keys, name)
		}
	}
	sort.Strings(keys)
	return keys
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}
