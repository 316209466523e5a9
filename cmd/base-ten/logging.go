package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	logFileName = "base-ten.log"
	maxLogSize  = 10 * 1024 * 1024 // 10 MiB
)

// setupLogging opens dir/base-ten.log when debug is set, rotating an oversized file
// Without debug every record is discarded; the terminal owns stdout
// Returns the file to close, or nil
func setupLogging(dir string, debug bool) (*slog.Logger, *os.File) {
	if !debug {
		return discardLogging(), nil
	}

	file, err := openLogFile(dir)
	if err != nil {
		// Logging is best effort; the app runs without it
		fmt.Fprintf(os.Stderr, "base-ten: logging disabled: %v\n", err)
		return discardLogging(), nil
	}

	logger := slog.New(slog.NewTextHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})).
		With("session", uuid.NewString())
	slog.SetDefault(logger)
	log.SetOutput(file)
	return logger, file
}

// discardLogging drops both slog and stdlib log output
// log.SetOutput must follow slog.SetDefault, which redirects the log package
func discardLogging() *slog.Logger {
	logger := slog.New(slog.DiscardHandler)
	slog.SetDefault(logger)
	log.SetOutput(io.Discard)
	return logger
}

func openLogFile(dir string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(dir, logFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		stamp := time.Now().Format("20060102-150405")
		rotated := filepath.Join(dir, strings.TrimSuffix(logFileName, ".log")+"-"+stamp+".log")
		if err := os.Rename(path, rotated); err != nil {
			return nil, fmt.Errorf("rotate log: %w", err)
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	return file, nil
}
