package logger

import (
	"io"
	stdlog "log" // Standard Go log package, aliased to avoid conflict with zerolog field

	"github.com/rs/zerolog"

	"github.com/aleister1102/urlclean/internal/config"
	"github.com/aleister1102/urlclean/internal/errorwrapper"
)

// New creates a zerolog logger from the application log configuration.
func New(cfg config.LogConfig) (zerolog.Logger, error) {
	loggerConfig := convertConfig(cfg)
	return build(loggerConfig)
}

// convertConfig maps the application LogConfig onto the logger's own
// configuration.
func convertConfig(cfg config.LogConfig) LoggerConfig {
	loggerConfig := DefaultLoggerConfig()
	loggerConfig.Level = ParseLogLevel(cfg.LogLevel)
	loggerConfig.Format = ParseLogFormat(cfg.LogFormat)

	if cfg.LogFile != "" {
		loggerConfig.EnableFile = true
		loggerConfig.FilePath = cfg.LogFile
	}
	if cfg.MaxLogSizeMB > 0 {
		loggerConfig.MaxSizeMB = cfg.MaxLogSizeMB
	}
	if cfg.MaxLogBackups > 0 {
		loggerConfig.MaxBackups = cfg.MaxLogBackups
	}
	return loggerConfig
}

// build assembles the configured writers into a logger instance.
func build(cfg LoggerConfig) (zerolog.Logger, error) {
	if cfg.EnableFile && cfg.FilePath == "" {
		return zerolog.Logger{}, errorwrapper.NewValidationError("file_path", cfg.FilePath, "file path required when file logging enabled")
	}

	var writers []io.Writer
	if cfg.EnableConsole {
		writers = append(writers, createConsoleWriter(cfg.Format))
	}
	if cfg.EnableFile {
		writers = append(writers, createFileWriter(cfg))
	}
	if len(writers) == 0 {
		return zerolog.Logger{}, errorwrapper.NewError("no output writers configured")
	}

	multiWriter := zerolog.MultiLevelWriter(writers...)
	instance := zerolog.New(multiWriter).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()

	// Route the standard log package through zerolog as well.
	stdlog.SetOutput(instance)
	stdlog.SetFlags(0)

	return instance, nil
}
