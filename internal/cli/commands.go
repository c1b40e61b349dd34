package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/arthur-debert/themer/internal/version"
	"github.com/arthur-debert/themer/pkg/config"
	"github.com/arthur-debert/themer/pkg/filesystem"
	"github.com/arthur-debert/themer/pkg/logging"
	"github.com/arthur-debert/themer/pkg/paths"
	"github.com/arthur-debert/themer/pkg/topics"
	"github.com/arthur-debert/themer/pkg/types"
	"github.com/arthur-debert/themer/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// app carries the global flags and the collaborators shared by subcommands
type app struct {
	configPath string
	verbosity  int
	noColor    bool
	output     string

	fs  types.FS
	now func() time.Time
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	a := &app{
		fs:  filesystem.NewOS(),
		now: time.Now,
	}

	rootCmd := &cobra.Command{
		Use:     "themer",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(a.verbosity, a.noColor)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		Args: cobra.NoArgs,
		// themes is the default command
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runThemes(cmd)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}
	rootCmd.SetVersionTemplate(fmt.Sprintf("themer version {{.Version}}\n  commit: %s\n  built:  %s\n",
		version.Commit, version.Date))

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", MsgFlagConfig)
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, MsgFlagNoColor)
	rootCmd.PersistentFlags().StringVarP(&a.output, "output", "o", "auto", MsgFlagOutput)
	_ = rootCmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return ui.Formats, cobra.ShellCompDirectiveNoFileComp
	})

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(a.newThemesCmd())
	rootCmd.AddCommand(a.newFilesCmd())
	rootCmd.AddCommand(a.newSetCmd())
	rootCmd.AddCommand(a.newPreviewCmd())
	rootCmd.AddCommand(a.newInitCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	// Help topics replace the default help command
	opts := topics.Options{Extensions: []string{".md"}}
	if isTerminal(os.Stdout) {
		opts.Renderer = topics.NewGlamourRenderer()
	}
	if _, err := topics.Initialize(rootCmd, topics.Embedded(), opts); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// configFile resolves the configuration path from --config, THEMER_CONFIG
// and the XDG default, in that order
func (a *app) configFile() string {
	if a.configPath != "" {
		return paths.ExpandHome(a.configPath)
	}
	return paths.DefaultConfigPath()
}

func (a *app) loadConfig() (*types.Config, error) {
	path := a.configFile()
	log.Debug().Str("path", path).Msg("Loading configuration")
	return config.Load(path)
}

// renderer builds the output renderer selected by --output and --no-color
func (a *app) renderer(cmd *cobra.Command) (ui.Renderer, error) {
	format, err := ui.ParseFormat(a.output)
	if err != nil {
		return nil, err
	}
	if a.noColor && (format == ui.FormatAuto || format == ui.FormatTerminal) {
		format = ui.FormatText
	}
	return ui.NewRenderer(format, cmd.OutOrStdout())
}

// completeThemes provides shell completion for theme names
func (a *app) completeThemes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return cfg.ThemeNames(), cobra.ShellCompDirectiveNoFileComp
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "man DIR",
		Short:   MsgManShort,
		GroupID: "misc",
		Hidden:  true,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "THEMER",
				Section: "1",
				Source:  "themer " + version.Version,
				Manual:  "themer manual",
			}
			return doc.GenManTree(cmd.Root(), header, args[0])
		},
	}
}
