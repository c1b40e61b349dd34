package cli

import (
	"github.com/arthur-debert/themer/pkg/state"
	"github.com/arthur-debert/themer/pkg/ui"
	"github.com/spf13/cobra"
)

func (a *app) newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "themes",
		Short:   MsgThemesShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runThemes(cmd)
		},
	}
}

func (a *app) runThemes(cmd *cobra.Command) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	r, err := a.renderer(cmd)
	if err != nil {
		return err
	}

	current := state.New(a.fs).Current()
	return r.RenderThemes(ui.NewThemeList(cfg, current))
}
