/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package logging

import (
	"io"
	stdlog "log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Log source tags used in structured logger contexts.
const (
	SourceApp        = "app"
	SourceWebRequest = "web_request"
	SourceDB         = "db"
	SourceKnowledge  = "knowledge"
	SourceAssistant  = "assistant"
)

// levelEnvVar selects the minimum level (debug, info, warn, error).
const levelEnvVar = "LOG_LEVEL"

var (
	initOnce   sync.Once
	baseLogger *log.Logger
)

// Init configures the base logger and stdlib log output.
func Init() {
	initOnce.Do(func() {
		baseLogger = newBaseLogger(os.Stdout, levelFromEnv())

		stdLogger := baseLogger.With("source", SourceApp).StandardLog(log.StandardLogOptions{ForceLevel: log.InfoLevel})

		stdlog.SetFlags(0)
		stdlog.SetOutput(stdLogger.Writer())
	})
}

func newBaseLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		TimeFunction:    log.NowUTC,
		TimeFormat:      time.RFC3339Nano,
		Level:           level,
		ReportTimestamp: true,
		Formatter:       log.LogfmtFormatter,
	})
}

func levelFromEnv() log.Level {
	raw := strings.TrimSpace(os.Getenv(levelEnvVar))
	if raw == "" {
		return log.DebugLevel
	}

	level, err := log.ParseLevel(strings.ToLower(raw))
	if err != nil {
		return log.DebugLevel
	}

	return level
}

// Logger returns a logfmt logger tagged with the provided source.
func Logger(source string) *log.Logger {
	Init()
	return baseLogger.With("source", source)
}

// StdLogger returns a stdlib logger that writes logfmt output with a source.
func StdLogger(source string) *stdlog.Logger {
	Init()
	return baseLogger.With("source", source).StandardLog(log.StandardLogOptions{ForceLevel: log.InfoLevel})
}
