package config

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/arthur-debert/themer/pkg/errors"
	"github.com/arthur-debert/themer/pkg/paths"
	"github.com/arthur-debert/themer/pkg/types"
)

// Validate checks a configuration before any file is touched. Every problem
// found is listed in the error's "problems" detail.
func Validate(cfg *types.Config) error {
	var problems []string

	for _, name := range cfg.ThemeNames() {
		if err := checkName(name); err != nil {
			problems = append(problems, fmt.Sprintf("theme %q: %v", name, err))
		}
		for _, key := range cfg.Themes[name].Keys() {
			if err := checkVariable(key); err != nil {
				problems = append(problems, fmt.Sprintf("theme %q: variable %q: %v", name, key, err))
			}
		}
	}

	// tag -> file entry, per resolved path
	claimed := make(map[string]map[string]string)
	for _, name := range cfg.FileNames() {
		file := cfg.Files[name]
		if strings.TrimSpace(file.Path()) == "" {
			problems = append(problems, fmt.Sprintf("file %q: path is required", name))
			continue
		}
		if multi, ok := file.Multi(); ok && len(multi.Blocks) == 0 {
			problems = append(problems, fmt.Sprintf("file %q: blocks must declare at least one tag", name))
			continue
		}

		path := paths.ExpandHome(file.Path())
		if claimed[path] == nil {
			claimed[path] = make(map[string]string)
		}
		for _, block := range file.Blocks() {
			if owner, ok := claimed[path][block.Tag]; ok {
				problems = append(problems, fmt.Sprintf("file %q: %s already claimed by file %q in %s",
					name, describeTag(block.Tag), owner, path))
				continue
			}
			claimed[path][block.Tag] = name
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return errors.Newf(errors.ErrConfigInvalid, "invalid configuration: %s", strings.Join(problems, "; ")).
		WithDetail("problems", problems)
}

func checkName(name string) error {
	if name == "" {
		return fmt.Errorf("name is empty")
	}
	for _, r := range name {
		if unicode.IsSpace(r) || r == '<' || r == '>' {
			return fmt.Errorf("name may not contain whitespace, '<' or '>'")
		}
	}
	return nil
}

// checkVariable accepts any key a default listing can print. Keys holding
// whitespace are valid even though no <token> can reference them.
func checkVariable(key string) error {
	if key == "" {
		return fmt.Errorf("name is empty")
	}
	if strings.ContainsAny(key, "<>") {
		return fmt.Errorf("name may not contain '<' or '>'")
	}
	return nil
}

func describeTag(tag string) string {
	if tag == "" {
		return "untagged block"
	}
	return fmt.Sprintf("tag %q", tag)
}
