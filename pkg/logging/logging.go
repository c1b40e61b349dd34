package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/themer/pkg/paths"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupLogger configures the global logger based on verbosity level
// It sets up dual output to both console and a log file
func SetupLogger(verbosity int, noColor bool) {
	// Configure zerolog based on verbosity
	switch verbosity {
	case 0:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case 1:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case 2:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
		NoColor:    noColor,
	}

	var writers []io.Writer
	writers = append(writers, consoleWriter)

	logFile := paths.LogFilePath()
	logFileHandle, err := setupLogFile(logFile)
	if err == nil {
		writers = append(writers, logFileHandle)
	}

	multi := io.MultiWriter(writers...)
	log.Logger = zerolog.New(multi).With().Timestamp().Logger()

	// If we couldn't create the log file, log the error now with the new logger
	if err != nil {
		log.Warn().Err(err).Str("path", logFile).Msg("Failed to create log file, logging to console only")
	}

	// Add caller information for debug and trace levels
	if verbosity >= 2 {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	log.Debug().Int("verbosity", verbosity).Str("logFile", logFile).Msg("Logger initialized")
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// setupLogFile creates the log file and its parent directories
func setupLogFile(logPath string) (*os.File, error) {
	logDir := filepath.Dir(logPath)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return file, nil
}

// LogCommand logs a command execution with its arguments
func LogCommand(cmd string, args []string) {
	log.Debug().
		Str("command", cmd).
		Strs("args", args).
		Msg("Executing command")
}

// BlockLogger returns logger annotated with the block being processed. The
// tag field is only set for tagged blocks.
func BlockLogger(logger zerolog.Logger, file, path, tag string) zerolog.Logger {
	ctx := logger.With().
		Str("file", file).
		Str("path", path)
	if tag != "" {
		ctx = ctx.Str("tag", tag)
	}
	return ctx.Logger()
}

// RunSummary counts the outcome of a theme run
type RunSummary struct {
	Written     int
	WouldUpdate int
	Unchanged   int
	Failed      int
	Skipped     int
}

// LogThemeRun logs the start of applying theme to blocks and returns a
// function that logs the outcome. A non-nil err marks the run as aborted.
func LogThemeRun(logger zerolog.Logger, theme string, blocks int, dryRun bool) func(RunSummary, error) {
	start := time.Now()
	logger = logger.With().Str("theme", theme).Bool("dryRun", dryRun).Logger()
	logger.Info().Int("blocks", blocks).Msg("Applying theme")

	return func(summary RunSummary, err error) {
		event := logger.Info()
		msg := "Theme applied"
		if err != nil {
			event = logger.Error().Err(err)
			msg = "Theme run aborted"
		}
		event.
			Int("written", summary.Written).
			Int("wouldUpdate", summary.WouldUpdate).
			Int("unchanged", summary.Unchanged).
			Int("failed", summary.Failed).
			Int("skipped", summary.Skipped).
			Dur("duration", time.Since(start)).
			Msg(msg)
	}
}
