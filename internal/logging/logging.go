// Package logging configures the process-wide logger: colored,
// level-aware lines on a terminal, plain text everywhere else.
package logging

import (
	"bytes"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

var levelColors = map[logrus.Level]*color.Color{
	logrus.DebugLevel: color.New(color.FgBlue),
	logrus.WarnLevel:  color.New(color.FgYellow),
	logrus.ErrorLevel: color.New(color.FgRed),
	logrus.FatalLevel: color.New(color.FgRed),
}

// Formatter renders one message per line, colored by level when colors
// are enabled. Info-level lines stay uncolored.
type Formatter struct {
	DisableColors bool
}

// Format implements logrus.Formatter.
func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	line := entry.Message
	if !f.DisableColors {
		if c, ok := levelColors[entry.Level]; ok {
			line = c.Sprint(line)
		}
	}
	return append([]byte(line), '\n'), nil
}

// Setup configures the standard logger to write to stderr. Colors are
// enabled only when stderr is a terminal and noColor is unset.
func Setup(verbose, noColor bool) {
	if !isTerminal(os.Stderr) {
		noColor = true
	}
	if noColor {
		color.NoColor = true
	}

	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&Formatter{DisableColors: noColor})
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
}

// StderrIsTerminal reports whether log output would support colors.
func StderrIsTerminal() bool {
	return isTerminal(os.Stderr)
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Writer returns an io.Writer that forwards each written line to logger
// at the given level. Writes are synchronous, unlike logrus's own
// WriterLevel, whose pipe goroutine can drop output at process exit.
func Writer(logger *logrus.Logger, level logrus.Level) io.Writer {
	return &levelWriter{logger: logger, level: level}
}

type levelWriter struct {
	logger *logrus.Logger
	level  logrus.Level
}

func (w *levelWriter) Write(p []byte) (int, error) {
	for _, line := range bytes.Split(bytes.TrimRight(p, "\n"), []byte{'\n'}) {
		w.logger.Log(w.level, string(line))
	}
	return len(p), nil
}
