package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/themer/pkg/errors"
)

// Environment variable names
const (
	// EnvConfig overrides the configuration file location
	EnvConfig = "THEMER_CONFIG"

	// EnvStateDir overrides the XDG state directory for themer
	EnvStateDir = "THEMER_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name for themer-specific files
	AppDirName = "themer"

	// ConfigFileName is the default configuration file name
	ConfigFileName = "config.yml"

	// LogFileName is the name of the log file
	LogFileName = "themer.log"

	// CurrentThemeFileName records the last applied theme
	CurrentThemeFileName = "current"
)

// ExpandHome expands ~ to the home directory
func ExpandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := GetHomeDirectory()
		if err != nil {
			// Can't expand, return as-is
			return path
		}

		if len(path) == 1 {
			return homeDir
		}

		// Handle both ~/ and ~
		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~something (not the user's home)
		return path
	}

	return path
}

// ConfigDir returns the XDG config directory for themer
func ConfigDir() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, AppDirName)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// DefaultConfigPath returns the configuration file used when --config is not given
func DefaultConfigPath() string {
	if path := os.Getenv(EnvConfig); path != "" {
		return ExpandHome(path)
	}
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// StateDir returns the XDG state directory for themer
func StateDir() string {
	if stateDir := os.Getenv(EnvStateDir); stateDir != "" {
		return ExpandHome(stateDir)
	}
	// xdg caches its values at init; prefer the live environment
	if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
		return filepath.Join(stateHome, AppDirName)
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// LogFilePath returns the path to the themer log file
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}

// CurrentThemePath returns the file recording the last applied theme
func CurrentThemePath() string {
	return filepath.Join(StateDir(), CurrentThemeFileName)
}

// GetHomeDirectory returns the user's home directory with proper error handling
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Try the HOME environment variable as a fallback
		if home := os.Getenv(EnvHome); home != "" {
			return home, nil
		}
		return "", errors.Wrapf(err, errors.ErrInternal, "failed to get home directory")
	}
	return homeDir, nil
}
