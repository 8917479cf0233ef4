// Package logging configures the process-wide logrus logger: JSON in
// production, colored text in development.
package logging

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

func Init(level string, development bool) *logrus.Logger {
	log := logrus.StandardLogger()

	parsed, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)

	if development {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	}
	log.SetOutput(os.Stdout)
	return log
}

// WithComponent tags log lines with the subsystem that emitted them.
func WithComponent(name string) *logrus.Entry {
	return logrus.StandardLogger().WithField("component", name)
}
