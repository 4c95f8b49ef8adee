// SPDX-License-Identifier: MIT
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Prefix is prepended to every message.
const Prefix = "[tbrpa] "

// badKey labels a dangling argument with no value.
const badKey = "!BADKEY"

// Logrus writes engine log lines through a *logrus.Logger.
type Logrus struct {
	l *logrus.Logger
}

// NewLogrus returns an adapter writing text lines at level to out. Unknown
// level names fall back to info.
func NewLogrus(level string, out io.Writer) *Logrus {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		DisableColors:   true,
	})
	l.SetLevel(ParseLevel(level))

	return &Logrus{l: l}
}

// Wrap adapts an already configured logger.
func Wrap(l *logrus.Logger) *Logrus { return &Logrus{l: l} }

// Logger exposes the underlying logrus logger.
func (g *Logrus) Logger() *logrus.Logger { return g.l }

// ParseLevel maps debug, info, warn and error (any case) to logrus levels.
func ParseLevel(s string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// Fields converts alternating key/value args into logrus fields.
func Fields(args ...any) logrus.Fields {
	f := make(logrus.Fields, (len(args)+1)/2)
	for i := 0; i < len(args); i += 2 {
		if i+1 == len(args) {
			f[badKey] = args[i]
			break
		}
		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", args[i])
		}
		f[key] = args[i+1]
	}

	return f
}

func (g *Logrus) Debug(msg string, args ...any) {
	g.l.WithFields(Fields(args...)).Debug(Prefix + msg)
}

func (g *Logrus) Info(msg string, args ...any) {
	g.l.WithFields(Fields(args...)).Info(Prefix + msg)
}

func (g *Logrus) Warn(msg string, args ...any) {
	g.l.WithFields(Fields(args...)).Warn(Prefix + msg)
}

func (g *Logrus) Error(msg string, args ...any) {
	g.l.WithFields(Fields(args...)).Error(Prefix + msg)
}
