package cli

import (
	"fmt"

	"github.com/arthur-debert/themer/pkg/config"
	"github.com/spf13/cobra"
)

func (a *app) newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "init",
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.configFile()
			if err := config.WriteStarter(a.fs, path, force); err != nil {
				return err
			}

			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderMessage(fmt.Sprintf(MsgInitCreated, path))
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForce)

	return cmd
}
