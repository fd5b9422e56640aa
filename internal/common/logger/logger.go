// Package logger configures the process-wide go-logging backend.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/op/go-logging"
)

const format = `%{time:15:04:05.000} %{module} ▶ %{level:.4s} %{message}`

// Setup installs a leveled stdout backend. level is one of the go-logging
// level names (DEBUG, INFO, NOTICE, WARNING, ERROR, CRITICAL).
func Setup(level string) error {
	return SetupWriter(os.Stdout, level)
}

// SetupWriter is Setup with an explicit destination.
func SetupWriter(w io.Writer, level string) error {
	if level == "" {
		level = "INFO"
	}
	lvl, err := logging.LogLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	backend := logging.NewLogBackend(w, "", 0)
	formatted := logging.NewBackendFormatter(backend, logging.MustStringFormatter(format))
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(lvl, "")
	logging.SetBackend(leveled)
	return nil
}
