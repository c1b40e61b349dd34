// Package paths provides centralized path handling for themer.
//
// It implements the XDG Base Directory specification for themer's own files
// and home-directory expansion for the paths users write in the
// configuration document (target files and imported templates).
//
// # Environment Variables
//
//   - THEMER_CONFIG: Override the configuration file path (default: $XDG_CONFIG_HOME/themer/config.yml)
//   - THEMER_STATE_DIR: Override the state directory (default: $XDG_STATE_HOME/themer)
//
// # XDG Base Directory Structure
//
//   - Config: $XDG_CONFIG_HOME/themer/config.yml
//   - State: $XDG_STATE_HOME/themer (log file, last applied theme)
package paths
