// Package logging provides the Logger interface shared by the harness packages, and the
// process-wide trace sink that tests and the harness use to narrate what they are doing.
package logging

import (
	"fmt"
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

const timestampFormat = "2006-01-02 15:04:05.000"

// Logger is the minimal logging interface used throughout the harness. A *logrus.Logger, a
// *log.Logger and the framework's capturing logger all satisfy it.
type Logger interface {
	Printf(message string, args ...interface{})
}

type nullLogger struct{}

func (n nullLogger) Printf(message string, args ...interface{}) {}

// NullLogger returns a Logger that discards everything.
func NullLogger() Logger { return nullLogger{} }

var (
	sink     *logrus.Logger
	sinkOnce sync.Once
)

// Default returns the process-wide trace sink, creating it on first use.
func Default() *logrus.Logger {
	sinkOnce.Do(func() {
		sink = logrus.New()
		sink.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: timestampFormat,
		})
		sink.SetLevel(logrus.InfoLevel)
	})
	return sink
}

// SetOutput redirects the trace sink.
func SetOutput(w io.Writer) {
	Default().SetOutput(w)
}

// SetLevel changes the trace sink's level. Trace lines are logged at Info, request details at
// Debug.
func SetLevel(level logrus.Level) {
	Default().SetLevel(level)
}

// Trace writes a narration line to the process-wide sink.
func Trace(message string, args ...interface{}) {
	Default().Info(fmt.Sprintf(message, args...))
}

// Tracer returns a Logger that writes to the process-wide sink, optionally tagged with a
// field identifying the caller (such as a test ID).
func Tracer(fields logrus.Fields) Logger {
	return traceLogger{entry: Default().WithFields(fields)}
}

type traceLogger struct {
	entry *logrus.Entry
}

func (t traceLogger) Printf(message string, args ...interface{}) {
	t.entry.Info(fmt.Sprintf(message, args...))
}

// Tee returns a Logger that forwards every message to all of the given loggers. Nil loggers
// are ignored.
func Tee(loggers ...Logger) Logger {
	var all multiLogger
	for _, l := range loggers {
		if l != nil {
			all = append(all, l)
		}
	}
	return all
}

type multiLogger []Logger

func (m multiLogger) Printf(message string, args ...interface{}) {
	for _, l := range m {
		l.Printf(message, args...)
	}
}
