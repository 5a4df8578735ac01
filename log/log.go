// Package log is the CLI's output sink: status lines go through a logrus
// logger that prints bare messages, highlighted lines go through fatih/color.
package log

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

var (
	// GreenString adds the green ansi color and applies the format
	GreenString = color.New(color.FgHiGreen).SprintfFunc()

	// YellowString adds the yellow ansi color and applies the format
	YellowString = color.New(color.FgHiYellow).SprintfFunc()
)

type logger struct {
	out *logrus.Logger
}

var log = &logger{
	out: newLogrus(os.Stdout),
}

func newLogrus(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&messageFormatter{})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// messageFormatter prints only the message, one entry per line. Debug
// entries carry their level so they stand out from regular output.
type messageFormatter struct{}

func (f *messageFormatter) Format(e *logrus.Entry) ([]byte, error) {
	if e.Level >= logrus.DebugLevel {
		return []byte("[" + e.Level.String() + "] " + e.Message + "\n"), nil
	}
	return []byte(e.Message + "\n"), nil
}

// SetOutput redirects all log output, mainly for tests.
func SetOutput(w io.Writer) {
	log.out.SetOutput(w)
}

// Output returns the current sink.
func Output() io.Writer {
	return log.out.Out
}

// SetLevel sets the level of the main logger. Unknown levels are ignored.
func SetLevel(level string) {
	l, err := logrus.ParseLevel(level)
	if err == nil {
		log.out.SetLevel(l)
	}
}

// Debugf writes a debug-level log with a format
func Debugf(format string, args ...interface{}) {
	log.out.Debugf(format, args...)
}

// Info writes a info-level log
func Info(args ...interface{}) {
	log.out.Info(args...)
}

// Infof writes a info-level log with a format
func Infof(format string, args ...interface{}) {
	log.out.Infof(format, args...)
}

// Green writes an info line in green
func Green(format string, args ...interface{}) {
	log.out.Info(GreenString(format, args...))
}

// Yellow writes a warning line in yellow
func Yellow(format string, args ...interface{}) {
	log.out.Info(YellowString(format, args...))
}
