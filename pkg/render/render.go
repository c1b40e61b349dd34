package render

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/themer/pkg/errors"
	"github.com/arthur-debert/themer/pkg/logging"
	"github.com/arthur-debert/themer/pkg/paths"
	"github.com/arthur-debert/themer/pkg/types"
	"github.com/rs/zerolog"
)

// MaxImportDepth is the deepest level at which <import> tokens are resolved.
// The template itself is level 0; files it imports are level 1 and may not
// import further.
const MaxImportDepth = 1

// Reserved variable tokens
const (
	VarsToken = "vars"
	NameToken = "name"

	importKeyword = "import"
)

var (
	// single word between brackets; no whitespace and no nested brackets
	variablePattern = regexp.MustCompile(`<[^\s<>]+>`)

	// <import PATH>; the path group is optional so that malformed tokens are
	// still found and reported
	importPattern = regexp.MustCompile(`<import(?:[ \t]+([^<>\n]*))?>`)
)

// Renderer renders blocks for one theme. It holds no per-block state; the
// block's view and options are passed to every call.
type Renderer struct {
	fs        types.FS
	themeName string
	logger    zerolog.Logger
}

// New creates a renderer for the named theme. Imported templates are read
// through fsys.
func New(fsys types.FS, themeName string) *Renderer {
	return &Renderer{
		fs:        fsys,
		themeName: themeName,
		logger:    logging.GetLogger("render"),
	}
}

// ThemeName returns the name substituted for <name>
func (r *Renderer) ThemeName() string {
	return r.themeName
}

// Render produces the text of one block. Warnings (unresolved variables,
// malformed imports) are returned alongside the text; an error is returned
// only for problems that make the template impossible to complete, namely an
// unreadable import or an import nested too deeply.
func (r *Renderer) Render(view types.ThemeVariables, opts types.BlockOptions) (string, []error, error) {
	if !opts.HasCustom() {
		return Default(view, opts), nil, nil
	}

	exp := &expansion{
		renderer:   r,
		view:       view,
		opts:       opts,
		unresolved: make(map[string]bool),
		malformed:  make(map[string]bool),
		imports:    make(map[string]string),
	}

	text, err := exp.expand(*opts.Custom, 0)
	if err != nil {
		return "", exp.warnings, err
	}
	return text, exp.warnings, nil
}

// expansion carries the state of one custom template render
type expansion struct {
	renderer *Renderer
	view     types.ThemeVariables
	opts     types.BlockOptions

	warnings   []error
	unresolved map[string]bool
	malformed  map[string]bool

	// expanded imports keyed by resolved path
	imports map[string]string
}

func (e *expansion) expand(text string, depth int) (string, error) {
	text = e.expandVariables(text)

	text, err := e.expandImports(text, depth)
	if err != nil {
		return "", err
	}

	return trimTrailingSpace(text), nil
}

func (e *expansion) expandVariables(text string) string {
	return variablePattern.ReplaceAllStringFunc(text, func(token string) string {
		name := token[1 : len(token)-1]

		switch name {
		case VarsToken:
			return Default(e.view, e.opts)
		case NameToken:
			return e.renderer.themeName
		case importKeyword:
			// a bare <import> is reported by the import phase
			return token
		}

		if value, ok := e.view[name]; ok {
			return value
		}

		if !e.unresolved[token] {
			e.unresolved[token] = true
			e.warnings = append(e.warnings, errors.Newf(errors.ErrUnresolvedVariable,
				"variable %s cannot be found", token).
				WithDetail("variable", name))
		}
		return token
	})
}

func (e *expansion) expandImports(text string, depth int) (string, error) {
	matches := importPattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text, nil
	}

	var out strings.Builder
	last := 0
	for _, m := range matches {
		token := text[m[0]:m[1]]
		out.WriteString(text[last:m[0]])
		last = m[1]

		var arg string
		if m[2] >= 0 {
			arg = text[m[2]:m[3]]
		}
		fields := strings.Fields(arg)
		if len(fields) == 0 {
			if !e.malformed[token] {
				e.malformed[token] = true
				e.warnings = append(e.warnings, errors.Newf(errors.ErrMalformedImport,
					"`%s` is not valid: import path should follow the import keyword, separated by whitespace", token))
			}
			out.WriteString(token)
			continue
		}

		if depth >= MaxImportDepth {
			return "", errors.Newf(errors.ErrImportDepthExceeded,
				"maximum import depth exceeded (tried to import %s from an imported file)", fields[0]).
				WithDetail("import", fields[0]).
				WithDetail("depth", depth)
		}

		expanded, err := e.importFile(fields[0], depth)
		if err != nil {
			return "", err
		}
		out.WriteString(expanded)
	}
	out.WriteString(text[last:])

	return out.String(), nil
}

func (e *expansion) importFile(ref string, depth int) (string, error) {
	path := paths.ExpandHome(ref)
	if expanded, ok := e.imports[path]; ok {
		return expanded, nil
	}

	e.renderer.logger.Debug().
		Str("import", ref).
		Str("path", path).
		Int("depth", depth+1).
		Msg("Importing template")

	content, err := e.renderer.fs.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrImportUnreadable, "failed to resolve import `%s`", ref).
			WithDetail("path", path)
	}

	expanded, err := e.expand(string(content), depth+1)
	if err != nil {
		return "", err
	}

	e.imports[path] = expanded
	return expanded, nil
}
