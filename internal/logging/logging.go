// Package logging builds the structured loggers and owns the on-disk data
// directory the programs write to.
package logging

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// AppName names the data directory.
const AppName = "missile-engine"

// New returns a text logger for terminals.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewJSON returns a JSON logger for files.
func NewJSON(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// DataDir returns the directory logs and records are stored in.
// Follows the XDG Base Directory layout: $XDG_DATA_HOME/missile-engine,
// defaulting to ~/.local/share/missile-engine. dataHome overrides
// $XDG_DATA_HOME when set.
func DataDir(dataHome string) (string, error) {
	if dataHome == "" {
		dataHome = os.Getenv("XDG_DATA_HOME")
	}
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, AppName), nil
}

// OpenFile returns a JSON logger appending to name inside the data
// directory, and a function closing the file. When the file cannot be
// opened the logger discards everything and err says why; the caller
// can carry on either way.
func OpenFile(dataHome, name string, level slog.Level) (logger *slog.Logger, closeFn func() error, err error) {
	nop := func() error { return nil }
	dir, err := DataDir(dataHome)
	if err != nil {
		return Discard(), nop, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Discard(), nop, err
	}
	f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return Discard(), nop, err
	}
	return NewJSON(f, level), f.Close, nil
}

// AppendRecord appends v as a single JSON line to name in the data
// directory. Errors are logged but never stop the caller.
func AppendRecord(dataHome, name string, v any, logger *slog.Logger) {
	dir, err := DataDir(dataHome)
	if err != nil {
		logger.Warn("record: cannot determine data dir", "error", err)
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("record: cannot create data dir", "error", err)
		return
	}
	f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		logger.Warn("record: cannot open file", "error", err)
		return
	}
	defer f.Close()
	data, err := json.Marshal(v)
	if err != nil {
		logger.Warn("record: cannot marshal JSON", "error", err)
		return
	}
	f.Write(data)         //nolint:errcheck
	f.Write([]byte("\n")) //nolint:errcheck
}
