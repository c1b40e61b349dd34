package ui

import (
	"github.com/arthur-debert/themer/pkg/engine"
	"github.com/arthur-debert/themer/pkg/errors"
	"github.com/arthur-debert/themer/pkg/types"
)

// ThemeItem is one configured theme
type ThemeItem struct {
	Name      string `json:"name"`
	Active    bool   `json:"active"`
	Variables int    `json:"variables"`
}

// ThemeList is the output of `themer themes`
type ThemeList struct {
	Current string      `json:"current,omitempty"`
	Themes  []ThemeItem `json:"themes"`
}

// NewThemeList lists the themes of cfg, marking current
func NewThemeList(cfg *types.Config, current string) ThemeList {
	list := ThemeList{Current: current, Themes: []ThemeItem{}}
	for _, name := range cfg.ThemeNames() {
		list.Themes = append(list.Themes, ThemeItem{
			Name:      name,
			Active:    name == current,
			Variables: len(cfg.Themes[name]),
		})
	}
	return list
}

// BlockLine is one block of a file listing, check or update report
type BlockLine struct {
	File     string   `json:"file"`
	Path     string   `json:"path"`
	Tag      string   `json:"tag,omitempty"`
	Status   string   `json:"status,omitempty"`
	Reason   string   `json:"reason,omitempty"`
	Error    string   `json:"error,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// FileItem is one configured file entry
type FileItem struct {
	Name   string      `json:"name"`
	Path   string      `json:"path"`
	Kind   string      `json:"kind"`
	Blocks []BlockLine `json:"blocks"`
}

// FileList is the output of `themer files`
type FileList struct {
	Checked bool       `json:"checked"`
	OK      bool       `json:"ok"`
	Files   []FileItem `json:"files"`
}

// NewFileList lists the file entries of cfg. When results is non-nil it is
// the output of engine.Check and every block carries its check status.
func NewFileList(cfg *types.Config, results []engine.BlockResult) FileList {
	list := FileList{Checked: results != nil, OK: true, Files: []FileItem{}}

	next := 0
	for _, name := range cfg.FileNames() {
		file := cfg.Files[name]
		item := FileItem{Name: name, Path: file.Path(), Kind: file.Kind().String()}
		for _, block := range file.Blocks() {
			line := BlockLine{File: name, Path: block.Path, Tag: block.Tag}
			if results != nil && next < len(results) {
				res := results[next]
				line.Status = "ok"
				if res.Failed() {
					line.Status = "err"
					line.Reason = CheckReason(res.Err)
					line.Error = res.Err.Error()
					list.OK = false
				}
			}
			next++
			item.Blocks = append(item.Blocks, line)
		}
		list.Files = append(list.Files, item)
	}
	return list
}

// CheckReason gives the short explanation shown next to a failed check
func CheckReason(err error) string {
	switch errors.GetErrorCode(err) {
	case errors.ErrFileUnreadable:
		return "Failed to read file"
	case errors.ErrMarkerNotFound:
		return "No valid block found"
	default:
		return err.Error()
	}
}

// ReloadView describes the reload command run after an update
type ReloadView struct {
	Command string `json:"command"`
	Output  string `json:"output,omitempty"`
	Error   string `json:"error,omitempty"`
}

// UpdateView is the output of `themer set`
type UpdateView struct {
	Theme   string      `json:"theme"`
	DryRun  bool        `json:"dryRun"`
	Blocks  []BlockLine `json:"blocks"`
	Aborted string      `json:"aborted,omitempty"`
	Reload  *ReloadView `json:"reload,omitempty"`
}

// NewUpdateView converts an engine report. runErr is the error that aborted
// the run, if any.
func NewUpdateView(report *engine.Report, runErr error) UpdateView {
	view := UpdateView{Blocks: []BlockLine{}}
	if runErr != nil {
		view.Aborted = runErr.Error()
	}
	if report == nil {
		return view
	}

	view.Theme = report.Theme
	view.DryRun = report.DryRun
	for _, res := range report.Results {
		line := BlockLine{
			File:     res.File,
			Path:     res.Path,
			Tag:      res.Tag,
			Status:   string(res.Status),
			Warnings: messages(res.Warnings),
		}
		if res.Err != nil {
			line.Error = res.Err.Error()
		}
		view.Blocks = append(view.Blocks, line)
	}
	return view
}

// Failed reports whether the update was aborted or any block failed
func (v UpdateView) Failed() bool {
	if v.Aborted != "" {
		return true
	}
	for _, b := range v.Blocks {
		if b.Status == string(engine.StatusFailed) {
			return true
		}
	}
	return false
}

// PreviewItem is one rendered block
type PreviewItem struct {
	File     string   `json:"file"`
	Path     string   `json:"path"`
	Tag      string   `json:"tag,omitempty"`
	Text     string   `json:"text"`
	Warnings []string `json:"warnings,omitempty"`
}

// NewPreviewItems converts engine previews
func NewPreviewItems(previews []engine.Preview) []PreviewItem {
	items := make([]PreviewItem, 0, len(previews))
	for _, p := range previews {
		items = append(items, PreviewItem{
			File:     p.File,
			Path:     p.Path,
			Tag:      p.Tag,
			Text:     p.Text,
			Warnings: messages(p.Warnings),
		})
	}
	return items
}

func messages(errs []error) []string {
	if len(errs) == 0 {
		return nil
	}
	out := make([]string, 0, len(errs))
	for _, err := range errs {
		if e, ok := err.(*errors.ThemerError); ok {
			out = append(out, e.Message)
			continue
		}
		out = append(out, err.Error())
	}
	return out
}
