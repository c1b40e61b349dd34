package testutil

import (
	"github.com/arthur-debert/themer/pkg/types"
)

// Theme returns the two-colour theme used across tests
func Theme() types.ThemeVariables {
	return types.ThemeVariables{
		"background": "#000000",
		"foreground": "#ffffff",
	}
}

// SampleConfig returns a configuration with a "dark" and a "light" theme, a
// single-block entry "kitty" at kittyPath and a multi-block entry "nvim" with
// tags "one" and "two" at nvimPath.
func SampleConfig(kittyPath, nvimPath string) *types.Config {
	return &types.Config{
		Themes: map[string]types.ThemeVariables{
			"dark": Theme(),
			"light": {
				"background": "#ffffff",
				"foreground": "#000000",
			},
		},
		Files: map[string]types.FileConfig{
			"kitty": types.SingleFile(types.BlockConfig{
				Path:    kittyPath,
				Comment: "#",
				Options: types.BlockOptions{Format: "<key> <value>"},
			}),
			"nvim": types.MultiFile(types.TaggedConfig{
				Path:    nvimPath,
				Comment: "--",
				Blocks: map[string]types.BlockOptions{
					"one": {Format: "vim.g.<key> = '<value>'", Only: []string{"background"}},
					"two": {Custom: stringPtr("-- theme: <name>")},
				},
			}),
		},
	}
}

func stringPtr(s string) *string {
	return &s
}
