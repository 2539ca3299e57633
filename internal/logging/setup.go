package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/oklahomer/go-kasumi/logger"
)

// Logger satisfies go-kasumi's logger.Logger on top of charmbracelet/log.
type Logger struct {
	l *log.Logger
}

var _ logger.Logger = (*Logger)(nil)

// NewLogger creates a Logger writing to writer at the given level.
// Unknown levels fall back to info.
func NewLogger(logLevel string, writer io.Writer) *Logger {
	if writer == nil {
		writer = os.Stderr
	}

	reportCaller := false
	reportTimestamp := true
	lvl := log.InfoLevel
	switch strings.ToLower(logLevel) {
	case "trace":
		reportCaller = true
		lvl = log.DebugLevel
	case "debug":
		lvl = log.DebugLevel
	case "info":
		lvl = log.InfoLevel
	case "warn", "warning":
		lvl = log.WarnLevel
	case "error":
		lvl = log.ErrorLevel
	}

	return &Logger{
		l: log.NewWithOptions(writer, log.Options{
			ReportTimestamp: reportTimestamp,
			ReportCaller:    reportCaller,
			Level:           lvl,
		}),
	}
}

// SetupLogger replaces go-kasumi's package logger, used across the bot, with a charmbracelet/log backed one.
func SetupLogger(logLevel string, writer io.Writer) *Logger {
	l := NewLogger(logLevel, writer)
	logger.SetLogger(l)
	return l
}

// Level returns the effective level.
func (l *Logger) Level() log.Level {
	return l.l.GetLevel()
}

func (l *Logger) Debug(args ...interface{}) {
	l.l.Debug(fmt.Sprint(args...))
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	l.l.Debugf(format, args...)
}

func (l *Logger) Info(args ...interface{}) {
	l.l.Info(fmt.Sprint(args...))
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.l.Infof(format, args...)
}

func (l *Logger) Warn(args ...interface{}) {
	l.l.Warn(fmt.Sprint(args...))
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	l.l.Warnf(format, args...)
}

func (l *Logger) Error(args ...interface{}) {
	l.l.Error(fmt.Sprint(args...))
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.l.Errorf(format, args...)
}
