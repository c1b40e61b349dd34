package cli

import (
	_ "embed"
	"strings"
)

// Message constants
const (
	MsgRootShort = "Keep the colors of your tools in sync"

	MsgFlagConfig  = "Path to the configuration file (default $XDG_CONFIG_HOME/themer/config.yml)"
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagNoColor = "Disable colored output"
	MsgFlagOutput  = "Output format: auto, term, text or json"

	MsgThemesShort = "List available themes"

	MsgFilesShort   = "List configured files"
	MsgFlagCheck    = "Check that every block can be updated"
	MsgChecksFailed = "%d block(s) failed the check"

	MsgSetShort      = "Apply a theme to every configured file"
	MsgFlagDryRun    = "Render every block without writing any file"
	MsgFlagJobs      = "Number of files updated concurrently"
	MsgFlagNoReload  = "Do not run the reload command"
	MsgBlocksFailed  = "%d block(s) could not be updated"
	MsgUnknownTheme  = "Try to list available themes with `themer themes`"
	MsgDidYouMean    = "Did you mean: %s?"
	MsgStateNotSaved = "could not record the current theme"

	MsgPreviewShort = "Print the blocks a theme would write"

	MsgInitShort   = "Write an example configuration"
	MsgFlagForce   = "Overwrite an existing configuration"
	MsgInitCreated = "Configuration written to %s"

	MsgCompletionShort = "Generate shell completion script"

	MsgManShort = "Generate man pages into a directory"

	MsgErrorPrefix = "Error:"
)

// Embedded message files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/set-long.txt
	msgSetLongRaw string
	MsgSetLong    = strings.TrimSpace(msgSetLongRaw)

	//go:embed msgs/set-example.txt
	msgSetExampleRaw string
	MsgSetExample    = strings.TrimRight(msgSetExampleRaw, "\n")

	//go:embed msgs/files-long.txt
	msgFilesLongRaw string
	MsgFilesLong    = strings.TrimSpace(msgFilesLongRaw)

	//go:embed msgs/preview-long.txt
	msgPreviewLongRaw string
	MsgPreviewLong    = strings.TrimSpace(msgPreviewLongRaw)

	//go:embed msgs/init-long.txt
	msgInitLongRaw string
	MsgInitLong    = strings.TrimSpace(msgInitLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
