package engine

import (
	"context"

	"github.com/arthur-debert/themer/pkg/errors"
	"github.com/arthur-debert/themer/pkg/filesystem"
	"github.com/arthur-debert/themer/pkg/logging"
	"github.com/arthur-debert/themer/pkg/markers"
	"github.com/arthur-debert/themer/pkg/render"
	"github.com/arthur-debert/themer/pkg/types"
	"github.com/arthur-debert/themer/pkg/vars"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Options configures an Engine
type Options struct {
	// Jobs is the number of target paths processed concurrently. Values
	// below two process every block sequentially.
	Jobs int

	// DryRun renders and compares every block without writing
	DryRun bool
}

// Engine applies themes to target files
type Engine struct {
	fs     types.FS
	opts   Options
	logger zerolog.Logger
}

// New creates an engine reading and writing through fsys
func New(fsys types.FS, opts Options) *Engine {
	return &Engine{
		fs:     fsys,
		opts:   opts,
		logger: logging.GetLogger("engine"),
	}
}

// Run applies theme to every block in cfg.
//
// The returned report always lists every block. A non-nil error means the run
// was aborted: either the theme is unknown (no report) or a custom template
// could not be completed (the report shows what was done before that).
func (e *Engine) Run(ctx context.Context, cfg *types.Config, theme string) (report *Report, runErr error) {
	variables, ok := cfg.Theme(theme)
	if !ok {
		return nil, unknownTheme(cfg, theme)
	}

	units, err := plan(cfg, nil)
	if err != nil {
		return nil, err
	}

	report = &Report{
		Theme:   theme,
		DryRun:  e.opts.DryRun,
		Results: make([]BlockResult, len(units)),
	}
	for i, u := range units {
		report.Results[i] = u.result(StatusSkipped)
	}

	done := logging.LogThemeRun(e.logger, theme, len(units), e.opts.DryRun)
	defer func() { done(report.summary(), runErr) }()

	r := render.New(e.fs, theme)
	apply := func(ctx context.Context, i int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		res, err := e.apply(r, variables, units[i])
		report.Results[i] = res
		return err
	}

	if e.opts.Jobs < 2 {
		for i := range units {
			if err := apply(ctx, i); err != nil {
				return report, err
			}
		}
		return report, nil
	}

	// each goroutine owns the result slots of its own group
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(e.opts.Jobs)
	for _, indexes := range groupByPath(units) {
		group.Go(func() error {
			for _, i := range indexes {
				if err := apply(groupCtx, i); err != nil {
					return err
				}
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return report, err
	}
	return report, nil
}

// apply runs the update cycle for one block. Only errors that must abort
// the run are returned; everything else ends up on the result.
func (e *Engine) apply(r *render.Renderer, theme types.ThemeVariables, u unit) (BlockResult, error) {
	res := u.result(StatusFailed)
	logger := logging.BlockLogger(e.logger, u.file, u.path, u.block.Tag)

	content, m, err := e.locate(u)
	if err != nil {
		logger.Warn().Err(err).Msg("Skipping block")
		res.Err = err
		return res, nil
	}

	view, warnings := vars.Effective(theme, u.block.Options.Aliases)
	text, renderWarnings, err := r.Render(view, u.block.Options)
	res.Warnings = append(warnings, renderWarnings...)
	for _, w := range res.Warnings {
		logger.Warn().Err(w).Msg("Render warning")
	}
	if err != nil {
		logger.Error().Err(err).Msg("Failed to render block")
		res.Err = err
		return res, err
	}

	updated, _ := m.Replace(content, text)
	switch {
	case updated == content:
		res.Status = StatusUnchanged
	case e.opts.DryRun:
		res.Status = StatusWouldUpdate
	default:
		if err := filesystem.WriteFileAtomic(e.fs, u.path, []byte(updated)); err != nil {
			res.Err = errors.Wrapf(err, errors.ErrFileWrite, "failed to write file %s", u.path).
				WithDetail("path", u.path)
			logger.Error().Err(res.Err).Msg("Failed to write block")
			return res, nil
		}
		res.Status = StatusWritten
	}

	logger.Debug().Str("status", string(res.Status)).Msg("Block processed")
	return res, nil
}

// locate reads the block's target and finds its marker region
func (e *Engine) locate(u unit) (string, *markers.Markers, error) {
	data, err := e.fs.ReadFile(u.path)
	if err != nil {
		return "", nil, errors.Wrapf(err, errors.ErrFileUnreadable, "failed to read file %s", u.path).
			WithDetail("path", u.path)
	}
	content := string(data)

	m := markers.New(commentOf(u.block), u.block.Closing(), u.block.Tag)
	if m.Find(content) == nil {
		return "", nil, errors.Newf(errors.ErrMarkerNotFound, "no valid block found in %s", u.path).
			WithDetail("path", u.path).
			WithDetail("start", m.Open+" "+m.Start).
			WithDetail("end", m.Close+" "+m.End)
	}
	return content, m, nil
}

func commentOf(b types.BlockConfig) string {
	if b.Comment == "" {
		return types.DefaultComment
	}
	return b.Comment
}
