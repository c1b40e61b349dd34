package cli

import (
	"github.com/arthur-debert/themer/pkg/engine"
	"github.com/arthur-debert/themer/pkg/ui"
	"github.com/spf13/cobra"
)

func (a *app) newPreviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "preview THEME [FILE...]",
		Short:   MsgPreviewShort,
		Long:    MsgPreviewLong,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return a.completeThemes(cmd, args, toComplete)
			}
			cfg, err := a.loadConfig()
			if err != nil {
				return nil, cobra.ShellCompDirectiveError
			}
			return cfg.FileNames(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}

			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}

			previews, err := engine.New(a.fs, engine.Options{}).Preview(cfg, args[0], args[1:])
			if err != nil {
				return err
			}
			return r.RenderPreview(ui.NewPreviewItems(previews))
		},
	}
}
