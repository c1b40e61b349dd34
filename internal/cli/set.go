package cli

import (
	"context"
	"fmt"

	"github.com/arthur-debert/themer/pkg/engine"
	"github.com/arthur-debert/themer/pkg/errors"
	"github.com/arthur-debert/themer/pkg/logging"
	"github.com/arthur-debert/themer/pkg/reload"
	"github.com/arthur-debert/themer/pkg/state"
	"github.com/arthur-debert/themer/pkg/ui"
	"github.com/spf13/cobra"
)

type setOptions struct {
	dryRun   bool
	jobs     int
	noReload bool
}

func (a *app) newSetCmd() *cobra.Command {
	var opts setOptions

	cmd := &cobra.Command{
		Use:               "set THEME",
		Short:             MsgSetShort,
		Long:              MsgSetLong,
		Example:           MsgSetExample,
		GroupID:           "core",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: a.completeThemes,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSet(cmd, args[0], opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.dryRun, "dry-run", "n", false, MsgFlagDryRun)
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", 1, MsgFlagJobs)
	cmd.Flags().BoolVar(&opts.noReload, "no-reload", false, MsgFlagNoReload)

	return cmd
}

func (a *app) runSet(cmd *cobra.Command, theme string, opts setOptions) error {
	logger := logging.GetLogger("cli.set")

	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	r, err := a.renderer(cmd)
	if err != nil {
		return err
	}

	eng := engine.New(a.fs, engine.Options{Jobs: opts.jobs, DryRun: opts.dryRun})
	report, runErr := eng.Run(cmd.Context(), cfg, theme)
	if errors.IsErrorCode(runErr, errors.ErrUnknownTheme) {
		return runErr
	}

	view := ui.NewUpdateView(report, runErr)

	var reloadErr error
	if runErr == nil && !opts.dryRun {
		if err := state.New(a.fs).Write(theme, a.now()); err != nil {
			logger.Warn().Err(err).Msg(MsgStateNotSaved)
		}
		if cfg.Reload != "" && !opts.noReload {
			view.Reload, reloadErr = runReload(cmd.Context(), cfg.Reload)
		}
	}

	if err := r.RenderUpdate(view); err != nil {
		return err
	}

	switch {
	case runErr != nil:
		return reported(runErr)
	case reloadErr != nil:
		return reported(reloadErr)
	case report.Count(engine.StatusFailed) > 0:
		return reported(fmt.Errorf(MsgBlocksFailed, report.Count(engine.StatusFailed)))
	}
	return nil
}

// runReload runs the reload command and describes its outcome
func runReload(ctx context.Context, command string) (*ui.ReloadView, error) {
	view := &ui.ReloadView{Command: command}

	res, err := reload.Run(ctx, command)
	if err != nil {
		view.Error = err.Error()
		if output, ok := errors.GetErrorDetails(err)["output"].(string); ok && output != "" {
			view.Error = output
		}
		return view, err
	}

	view.Output = res.Output
	return view, nil
}
