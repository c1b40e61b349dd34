package engine

import (
	"github.com/arthur-debert/themer/pkg/errors"
	"github.com/arthur-debert/themer/pkg/paths"
	"github.com/arthur-debert/themer/pkg/types"
)

// plan flattens the selected file entries into units in stable order: file
// entries by name, then tags by name. An empty selection means every entry.
func plan(cfg *types.Config, selected []string) ([]unit, error) {
	names := cfg.FileNames()
	if len(selected) > 0 {
		for _, name := range selected {
			if _, ok := cfg.Files[name]; !ok {
				return nil, errors.Newf(errors.ErrNotFound, "file entry %q is not configured", name).
					WithDetail("file", name)
			}
		}
		names = selected
	}

	var units []unit
	for _, name := range names {
		for _, block := range cfg.Files[name].Blocks() {
			units = append(units, unit{
				file:  name,
				path:  paths.ExpandHome(block.Path),
				block: block,
			})
		}
	}
	return units, nil
}

// groupByPath returns unit indexes grouped by target path. Groups are in
// order of first appearance and indexes within a group keep their order.
func groupByPath(units []unit) [][]int {
	var groups [][]int
	index := make(map[string]int)
	for i, u := range units {
		g, ok := index[u.path]
		if !ok {
			g = len(groups)
			index[u.path] = g
			groups = append(groups, nil)
		}
		groups[g] = append(groups[g], i)
	}
	return groups
}
