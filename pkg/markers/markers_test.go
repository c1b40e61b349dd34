// pkg/markers/markers_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test marker words, wrapping and first-region replacement

package markers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTags(t *testing.T) {
	tests := []struct {
		name  string
		tag   string
		start string
		end   string
	}{
		{"untagged", "", "THEMER", "THEMER_END"},
		{"tagged", "one", "THEMER:one", "THEMER_END:one"},
		{"tag_with_symbols", "a.b-c", "THEMER:a.b-c", "THEMER_END:a.b-c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := Tags(tt.tag)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestWrap_RoundTrip(t *testing.T) {
	m := New("#", "", "")
	text := "background = #000000\nforeground = #ffffff"

	wrapped := m.Wrap(text)
	assert.Equal(t, "# THEMER\nbackground = #000000\nforeground = #ffffff\n# THEMER_END", wrapped)

	content := wrapped + "\ntrailing stuff\n# THEMER_END\nmore"
	loc := m.Find(content)
	require.NotNil(t, loc)
	assert.Equal(t, wrapped, content[loc[0]:loc[1]])
}

func TestNew_CloseDefaultsToOpen(t *testing.T) {
	m := New("//", "", "x")
	assert.Equal(t, "//", m.Close)
	assert.Equal(t, "// THEMER:x\nbody\n// THEMER_END:x", m.Wrap("body"))

	css := New("/*", "*/", "")
	assert.Equal(t, "/* THEMER\nbody\n*/ THEMER_END", css.Wrap("body"))
}

func TestPattern_QuotesCommentTokens(t *testing.T) {
	m := New("/*", "*/", "")

	_, ok := m.Replace("/* THEMER\nold\n*/ THEMER_END", "new")
	assert.True(t, ok)

	// "." in a comment token must not act as a wildcard
	dot := New(".", "", "")
	_, ok = dot.Replace("x THEMER\nold\nx THEMER_END", "new")
	assert.False(t, ok)
}

func TestReplace(t *testing.T) {
	tests := []struct {
		name     string
		markers  *Markers
		content  string
		text     string
		expected string
		found    bool
	}{
		{
			name:     "keeps_surrounding_content",
			markers:  New("#", "", ""),
			content:  "before\n# THEMER\nold\n# THEMER_END\nkeep me",
			text:     "new",
			expected: "before\n# THEMER\nnew\n# THEMER_END\nkeep me",
			found:    true,
		},
		{
			name:     "empty_region",
			markers:  New("#", "", ""),
			content:  "# THEMER\n# THEMER_END",
			text:     "a = 1",
			expected: "# THEMER\na = 1\n# THEMER_END",
			found:    true,
		},
		{
			name:     "only_first_region",
			markers:  New("#", "", ""),
			content:  "# THEMER\nold\n# THEMER_END\n# THEMER\nold\n# THEMER_END",
			text:     "new",
			expected: "# THEMER\nnew\n# THEMER_END\n# THEMER\nold\n# THEMER_END",
			found:    true,
		},
		{
			name:     "dollar_signs_are_literal",
			markers:  New("#", "", ""),
			content:  "# THEMER\nold\n# THEMER_END",
			text:     "price = $1 ${x} $$",
			expected: "# THEMER\nprice = $1 ${x} $$\n# THEMER_END",
			found:    true,
		},
		{
			name:     "tagged_ignores_other_tags",
			markers:  New("#", "", "two"),
			content:  "# THEMER:one\na\n# THEMER_END:one\n# THEMER:two\nb\n# THEMER_END:two",
			text:     "B",
			expected: "# THEMER:one\na\n# THEMER_END:one\n# THEMER:two\nB\n# THEMER_END:two",
			found:    true,
		},
		{
			name:     "untagged_does_not_match_tagged",
			markers:  New("#", "", ""),
			content:  "# THEMER:one\na\n# THEMER_END:one",
			text:     "x",
			expected: "# THEMER:one\na\n# THEMER_END:one",
			found:    false,
		},
		{
			name:     "missing_end_marker",
			markers:  New("#", "", ""),
			content:  "# THEMER\nold\n",
			text:     "x",
			expected: "# THEMER\nold\n",
			found:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := tt.markers.Replace(tt.content, tt.text)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestReplace_Idempotent(t *testing.T) {
	m := New("#", "", "")
	original := "# THEMER\nold\n# THEMER_END\nkeep me\n"

	first, ok := m.Replace(original, "a = 1\nb = 2")
	require.True(t, ok)
	second, ok := m.Replace(first, "a = 1\nb = 2")
	require.True(t, ok)

	assert.Equal(t, first, second)
}
