// Package markers defines the comment-delimited marker lines that bound a
// managed block and the matcher used to find and replace that block inside
// a target file.
//
// An untagged block looks like:
//
//	# THEMER
//	background = #000000
//	# THEMER_END
//
// A tagged block carries the tag after a colon on both lines:
//
//	// THEMER:colors
//	...
//	// THEMER_END:colors
package markers

import (
	"regexp"
	"strings"
)

// Sentinel is the marker word every block line starts with
const Sentinel = "THEMER"

// endSuffix is inserted directly after the sentinel in the closing marker
const endSuffix = "_END"

// Tags returns the start and end marker words for tag. An empty tag yields
// the bare sentinel pair.
func Tags(tag string) (start, end string) {
	if tag == "" {
		return Sentinel, Sentinel + endSuffix
	}
	return Sentinel + ":" + tag, Sentinel + endSuffix + ":" + tag
}

// Pattern compiles the matcher for one block. It matches the opening
// comment, a space and the start marker, a line break, then anything up to
// the first closing comment followed by a space and the end marker.
func Pattern(open, close, start, end string) *regexp.Regexp {
	var expr strings.Builder
	expr.WriteString(`(?s)`)
	expr.WriteString(regexp.QuoteMeta(open + " " + start))
	expr.WriteString(`\n.*?`)
	expr.WriteString(regexp.QuoteMeta(close + " " + end))
	return regexp.MustCompile(expr.String())
}

// Wrap surrounds text with the marker lines
func Wrap(open, close, start, end, text string) string {
	return open + " " + start + "\n" + text + "\n" + close + " " + end
}

// Markers is the marker pair and matcher for one block
type Markers struct {
	Open  string
	Close string
	Start string
	End   string

	pattern *regexp.Regexp
}

// New builds the markers for a block. An empty close token falls back to
// open.
func New(open, close, tag string) *Markers {
	if close == "" {
		close = open
	}
	start, end := Tags(tag)
	return &Markers{
		Open:    open,
		Close:   close,
		Start:   start,
		End:     end,
		pattern: Pattern(open, close, start, end),
	}
}

// Pattern returns the compiled matcher
func (m *Markers) Pattern() *regexp.Regexp {
	return m.pattern
}

// Wrap surrounds text with this block's marker lines
func (m *Markers) Wrap(text string) string {
	return Wrap(m.Open, m.Close, m.Start, m.End, text)
}

// Find returns the byte offsets of the first managed region in content, or
// nil when there is none.
func (m *Markers) Find(content string) []int {
	return m.pattern.FindStringIndex(content)
}

// Replace substitutes the first managed region in content with text wrapped
// in markers. The wrapped text is spliced in literally, so '$' and other
// replacement metacharacters in it are never expanded. ok is false when the
// region is missing.
func (m *Markers) Replace(content, text string) (result string, ok bool) {
	loc := m.Find(content)
	if loc == nil {
		return content, false
	}
	return content[:loc[0]] + m.Wrap(text) + content[loc[1]:], true
}
