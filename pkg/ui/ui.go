// Package ui renders command results for the terminal, as plain text or as
// JSON.
package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/themer/pkg/engine"
)

// Renderer is the common interface for all output renderers
type Renderer interface {
	RenderThemes(list ThemeList) error
	RenderFiles(list FileList) error
	RenderUpdate(view UpdateView) error
	RenderPreview(items []PreviewItem) error
	RenderMessage(msg string) error
}

// NewRenderer creates a renderer for format. FormatAuto is resolved against
// output when it is a file and falls back to plain text otherwise.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return &consoleRenderer{out: output, p: palette{styled: true}}, nil
	case FormatText:
		return &consoleRenderer{out: output, p: palette{}}, nil
	case FormatJSON:
		encoder := json.NewEncoder(output)
		encoder.SetIndent("", "  ")
		return &jsonRenderer{encoder: encoder}, nil
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}

// consoleRenderer writes human readable output, styled or not
type consoleRenderer struct {
	out io.Writer
	p   palette
}

func (r *consoleRenderer) println(a ...string) {
	_, _ = fmt.Fprintln(r.out, strings.Join(a, ""))
}

func (r *consoleRenderer) RenderThemes(list ThemeList) error {
	r.println(r.p.title("Available themes:"))
	for _, theme := range list.Themes {
		if theme.Active {
			r.println("  * ", r.p.active(theme.Name))
			continue
		}
		r.println("  - ", theme.Name)
	}
	return nil
}

func (r *consoleRenderer) RenderFiles(list FileList) error {
	r.println(r.p.title("Listed configuration files:"))
	r.println()

	for _, file := range list.Files {
		if file.Kind == "multi" {
			r.println(r.p.name(file.Name), " ", r.p.path("("+file.Path+")"), " [Multiple blocks]:")
			for _, block := range file.Blocks {
				r.println("  ", r.blockLine(list.Checked, block.Tag, "", block))
			}
			continue
		}
		for _, block := range file.Blocks {
			r.println(r.blockLine(list.Checked, r.p.name(file.Name), file.Path, block))
		}
	}
	return nil
}

func (r *consoleRenderer) blockLine(checked bool, name, path string, block BlockLine) string {
	var line strings.Builder
	switch {
	case !checked:
		line.WriteString("- ")
	case block.Status == "ok":
		line.WriteString(r.p.success("ok") + " ")
	default:
		line.WriteString(r.p.err("err") + " ")
	}

	line.WriteString(name)
	if path != "" {
		line.WriteString(" " + r.p.path("("+path+")"))
	}
	if block.Reason != "" {
		line.WriteString(" [" + r.p.err(block.Reason) + "]")
	}
	return line.String()
}

func (r *consoleRenderer) RenderUpdate(view UpdateView) error {
	for _, block := range view.Blocks {
		name := block.File
		if block.Tag != "" {
			name += ":" + block.Tag
		}

		switch block.Status {
		case string(engine.StatusWritten):
			r.println(r.p.success("updated"), "   ", name, " ", r.p.path(block.Path))
		case string(engine.StatusUnchanged):
			r.println(r.p.muted("unchanged"), " ", name, " ", r.p.path(block.Path))
		case string(engine.StatusWouldUpdate):
			r.println(r.p.warning("would update"), " ", name, " ", r.p.path(block.Path))
		case string(engine.StatusFailed):
			r.println(r.p.err("failed"), "    ", name, ": ", block.Error)
		default:
			r.println(r.p.muted(block.Status), "   ", name)
		}

		for _, w := range block.Warnings {
			r.println("  ", r.p.warning("warning:"), " ", w)
		}
	}

	if view.Aborted != "" {
		r.println(r.p.err("Update aborted: "), view.Aborted)
		return nil
	}

	if view.Reload != nil {
		if view.Reload.Error != "" {
			r.println(r.p.err("Unsuccessful outcome of reload command:"))
			r.println("\t", view.Reload.Error)
			return nil
		}
		r.println(r.p.success("Environment successfully reloaded!"))
		return nil
	}

	if view.DryRun {
		r.println(r.p.muted("Dry run: no file was written"))
		return nil
	}

	if !view.Failed() {
		r.println(r.p.success("Theme successfully updated"))
		r.println(" ", r.p.name("?"), " To see updates, you may need to reload your environment.")
	}
	return nil
}

func (r *consoleRenderer) RenderPreview(items []PreviewItem) error {
	for i, item := range items {
		if i > 0 {
			r.println()
		}
		header := item.File
		if item.Tag != "" {
			header += ":" + item.Tag
		}
		r.println(r.p.title(header), " ", r.p.path(item.Path))
		r.println(item.Text)
		for _, w := range item.Warnings {
			r.println(r.p.warning("warning:"), " ", w)
		}
	}
	return nil
}

func (r *consoleRenderer) RenderMessage(msg string) error {
	r.println(msg)
	return nil
}

// jsonRenderer provides JSON output for machine consumption
type jsonRenderer struct {
	encoder *json.Encoder
}

func (r *jsonRenderer) RenderThemes(list ThemeList) error  { return r.encoder.Encode(list) }
func (r *jsonRenderer) RenderFiles(list FileList) error    { return r.encoder.Encode(list) }
func (r *jsonRenderer) RenderUpdate(view UpdateView) error { return r.encoder.Encode(view) }

func (r *jsonRenderer) RenderPreview(items []PreviewItem) error {
	return r.encoder.Encode(map[string]interface{}{"blocks": items})
}

func (r *jsonRenderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"message": msg})
}
