// pkg/render/render_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: afero memory filesystem
// PURPOSE: Test default and custom block rendering, imports and warnings

package render

import (
	"testing"

	"github.com/arthur-debert/themer/pkg/errors"
	"github.com/arthur-debert/themer/pkg/filesystem"
	"github.com/arthur-debert/themer/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTheme() types.ThemeVariables {
	return types.ThemeVariables{
		"background": "#000000",
		"foreground": "#ffffff",
	}
}

func custom(s string) *string {
	return &s
}

func writeFile(t *testing.T, fs types.FS, path, content string) {
	t.Helper()
	require.NoError(t, fs.MkdirAll("/", 0755))
	require.NoError(t, fs.WriteFile(path, []byte(content), 0644))
}

func TestDefault(t *testing.T) {
	tests := []struct {
		name     string
		opts     types.BlockOptions
		expected string
	}{
		{
			name:     "default_format",
			opts:     types.BlockOptions{},
			expected: "background = #000000\nforeground = #ffffff",
		},
		{
			name:     "custom_format",
			opts:     types.BlockOptions{Format: `set my_<key> as "<value>"`},
			expected: "set my_background as \"#000000\"\nset my_foreground as \"#ffffff\"",
		},
		{
			name:     "ignore",
			opts:     types.BlockOptions{Format: types.DefaultFormat, Ignore: []string{"foreground"}},
			expected: "background = #000000",
		},
		{
			name:     "only",
			opts:     types.BlockOptions{Format: types.DefaultFormat, Only: []string{"foreground"}},
			expected: "foreground = #ffffff",
		},
		{
			name:     "trailing_whitespace_trimmed",
			opts:     types.BlockOptions{Format: "<key>: <value>   "},
			expected: "background: #000000   \nforeground: #ffffff",
		},
		{
			name:     "empty_when_everything_filtered",
			opts:     types.BlockOptions{Only: []string{"cursor"}},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Default(testTheme(), tt.opts))
		})
	}
}

func TestDefault_PlaceholdersAreNotRescanned(t *testing.T) {
	view := types.ThemeVariables{"<value>": "x"}
	assert.Equal(t, "<value>=x", Default(view, types.BlockOptions{Format: "<key>=<value>"}))
}

func TestRender_DefaultModeHasNoWarnings(t *testing.T) {
	r := New(filesystem.NewMemory(), "dark")

	text, warnings, err := r.Render(testTheme(), types.BlockOptions{Format: "<key> <value>"})

	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, "background #000000\nforeground #ffffff", text)
}

func TestRender_CustomTemplate(t *testing.T) {
	r := New(filesystem.NewMemory(), "theme")

	text, warnings, err := r.Render(testTheme(), types.BlockOptions{
		Format: "set <key> as <value>",
		Custom: custom("# This is just a comment\n" +
			"# This is colors for my theme <name>:\n" +
			"<vars>\n" +
			"set foreground as <foreground>\n\n"),
	})

	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, "# This is just a comment\n"+
		"# This is colors for my theme theme:\n"+
		"set background as #000000\n"+
		"set foreground as #ffffff\n"+
		"set foreground as #ffffff", text)
}

func TestRender_UnresolvedVariableIsKeptAndWarnedOnce(t *testing.T) {
	r := New(filesystem.NewMemory(), "dark")

	text, warnings, err := r.Render(testTheme(), types.BlockOptions{
		Custom: custom("<accent> <background> <accent>"),
	})

	require.NoError(t, err)
	assert.Equal(t, "<accent> #000000 <accent>", text)
	require.Len(t, warnings, 1)
	assert.True(t, errors.IsErrorCode(warnings[0], errors.ErrUnresolvedVariable))
}

func TestRender_SubstitutedValuesAreNotRescanned(t *testing.T) {
	r := New(filesystem.NewMemory(), "dark")
	view := types.ThemeVariables{"a": "<b>", "b": "x"}

	text, warnings, err := r.Render(view, types.BlockOptions{Custom: custom("<a> <b>")})

	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, "<b> x", text)
}

func TestRender_NestedBracketsAreNotVariables(t *testing.T) {
	r := New(filesystem.NewMemory(), "dark")

	text, _, err := r.Render(testTheme(), types.BlockOptions{
		Custom: custom("<<background>> <not a var>"),
	})

	require.NoError(t, err)
	assert.Equal(t, "<#000000> <not a var>", text)
}

func TestRender_Import(t *testing.T) {
	fs := filesystem.NewMemory()
	writeFile(t, fs, "/imported", "# This is imported file for theme <name>\n<vars>\n")
	r := New(fs, "theme")

	text, warnings, err := r.Render(testTheme(), types.BlockOptions{
		Format: types.DefaultFormat,
		Custom: custom("<import /imported>"),
	})

	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, "# This is imported file for theme theme\nbackground = #000000\nforeground = #ffffff", text)
}

func TestRender_ImportExpandsHome(t *testing.T) {
	t.Setenv("HOME", "/home/user")
	fs := filesystem.NewMemory()
	require.NoError(t, fs.MkdirAll("/home/user/.config/themer", 0755))
	writeFile(t, fs, "/home/user/.config/themer/extra.conf", "cursor <foreground>")
	r := New(fs, "dark")

	text, _, err := r.Render(testTheme(), types.BlockOptions{
		Custom: custom("before\n<import ~/.config/themer/extra.conf>\nafter"),
	})

	require.NoError(t, err)
	assert.Equal(t, "before\ncursor #ffffff\nafter", text)
}

func TestRender_ImportDepthCeiling(t *testing.T) {
	fs := filesystem.NewMemory()
	writeFile(t, fs, "/a", "from a\n<import /b>")
	writeFile(t, fs, "/b", "from b")
	r := New(fs, "dark")

	t.Run("imported_file_importing_fails", func(t *testing.T) {
		_, _, err := r.Render(testTheme(), types.BlockOptions{Custom: custom("<import /a>")})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrImportDepthExceeded))
	})

	t.Run("single_level_succeeds", func(t *testing.T) {
		text, _, err := r.Render(testTheme(), types.BlockOptions{Custom: custom("<import /b>")})
		require.NoError(t, err)
		assert.Equal(t, "from b", text)
	})
}

func TestRender_ImportUnreadableIsFatal(t *testing.T) {
	r := New(filesystem.NewMemory(), "dark")

	_, _, err := r.Render(testTheme(), types.BlockOptions{Custom: custom("<import /missing.conf>")})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrImportUnreadable))
	assert.Equal(t, "/missing.conf", errors.GetErrorDetails(err)["path"])
}

func TestRender_MalformedImportIsKept(t *testing.T) {
	r := New(filesystem.NewMemory(), "dark")

	text, warnings, err := r.Render(testTheme(), types.BlockOptions{
		Custom: custom("<import> <import   > <background>"),
	})

	require.NoError(t, err)
	assert.Equal(t, "<import> <import   > #000000", text)
	require.Len(t, warnings, 2)
	for _, w := range warnings {
		assert.True(t, errors.IsErrorCode(w, errors.ErrMalformedImport))
	}
}

func TestRender_IsDeterministic(t *testing.T) {
	fs := filesystem.NewMemory()
	writeFile(t, fs, "/colors", "<vars>")
	r := New(fs, "dark")
	opts := types.BlockOptions{Custom: custom("<name>\n<import /colors>\n<import /colors>")}

	first, _, err := r.Render(testTheme(), opts)
	require.NoError(t, err)
	second, _, err := r.Render(testTheme(), opts)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "dark\nbackground = #000000\nforeground = #ffffff\nbackground = #000000\nforeground = #ffffff", first)
}
