package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// createConsoleWriter creates a stderr writer in the configured format.
func createConsoleWriter(format LogFormat) io.Writer {
	switch format {
	case FormatJSON:
		return os.Stderr
	case FormatText:
		return zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}
	default:
		return zerolog.ConsoleWriter{Out: os.Stderr}
	}
}

// createFileWriter creates a rotating file writer.
func createFileWriter(config LoggerConfig) io.Writer {
	// Best effort; lumberjack surfaces a failure on first write.
	_ = os.MkdirAll(filepath.Dir(config.FilePath), 0755)

	rotating := &lumberjack.Logger{
		Filename:   config.FilePath,
		MaxSize:    config.MaxSizeMB,
		MaxBackups: config.MaxBackups,
		LocalTime:  true,
	}

	if config.Format == FormatJSON {
		return rotating
	}
	return zerolog.ConsoleWriter{Out: rotating, NoColor: true}
}
