// Package iologger sets up the default slog logger from LogConfig.
package iologger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gnames/pokedb/pkg/config"
)

// LogFile is the name of the log file inside the log directory.
const LogFile = "pokedb.log"

// Init installs the default slog logger. With the "file" destination
// logs go to LogFile in logDir, appended to previous runs when append is
// true. The returned closer releases the file, it is a no-op for
// standard streams.
func Init(logDir string, cfg config.LogConfig, append bool) (io.Closer, error) {
	writer, closer, err := destination(logDir, cfg.Destination, append)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	switch cfg.Format {
	case "text":
		handler = slog.NewTextHandler(writer, opts)
	default:
		handler = slog.NewJSONHandler(writer, opts)
	}

	slog.SetDefault(slog.New(handler))
	return closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func destination(
	logDir, dest string,
	append bool,
) (io.Writer, io.Closer, error) {
	switch dest {
	case "stdout":
		return os.Stdout, nopCloser{}, nil
	case "file":
	default:
		return os.Stderr, nopCloser{}, nil
	}

	path := filepath.Join(logDir, LogFile)
	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if append {
		flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}
	file, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return nil, nil, CreateLogFileError(path, err)
	}
	return file, file, nil
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
