package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

type Logger struct {
	level string
	entry *logrus.Entry
}

func New(level string) *Logger {
	return NewWithOutput(level, os.Stderr)
}

// NewWithOutput builds a logger writing to w, mostly for tests.
func NewWithOutput(level string, w io.Writer) *Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	return &Logger{
		level: lvl.String(),
		entry: logrus.NewEntry(l),
	}
}

// With returns a child logger carrying the given structured fields.
func (l *Logger) With(fields map[string]interface{}) *Logger {
	return &Logger{
		level: l.level,
		entry: l.entry.WithFields(logrus.Fields(fields)),
	}
}

func (l *Logger) Info(msg string, args ...interface{}) {
	l.entry.Infof(msg, args...)
}

func (l *Logger) Debug(msg string, args ...interface{}) {
	l.entry.Debugf(msg, args...)
}

func (l *Logger) Warn(msg string, args ...interface{}) {
	l.entry.Warnf(msg, args...)
}

func (l *Logger) Error(msg string, args ...interface{}) {
	l.entry.Errorf(msg, args...)
}

func (l *Logger) Fatal(msg string, args ...interface{}) {
	l.entry.Fatalf(msg, args...)
}
