package cli

import (
	"fmt"

	"github.com/arthur-debert/themer/pkg/engine"
	"github.com/arthur-debert/themer/pkg/ui"
	"github.com/spf13/cobra"
)

func (a *app) newFilesCmd() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:     "files",
		Short:   MsgFilesShort,
		Long:    MsgFilesLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}

			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}

			if !check {
				return r.RenderFiles(ui.NewFileList(cfg, nil))
			}

			results, err := engine.New(a.fs, engine.Options{}).Check(cfg)
			if err != nil {
				return err
			}

			list := ui.NewFileList(cfg, results)
			if err := r.RenderFiles(list); err != nil {
				return err
			}
			if !list.OK {
				failed := 0
				for _, res := range results {
					if res.Failed() {
						failed++
					}
				}
				return reported(fmt.Errorf(MsgChecksFailed, failed))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, MsgFlagCheck)

	return cmd
}
