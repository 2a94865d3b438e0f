// Package logger contains a leveled logger interface and an implementation that is based on the standard log.Logger
package logger

import (
	"fmt"
	"io"
	"log"
	"strings"
)

// A Logger logs information using a log level
type Logger interface {
	// DebugEnabled returns true if debug level logging is enabled
	DebugEnabled() bool

	// Debug logs at debug level. Arguments are handled in the manner of fmt.Println.
	Debug(...interface{})

	// ErrorEnabled returns true if error level logging is enabled
	ErrorEnabled() bool

	// Error logs at error level. Arguments are handled in the manner of fmt.Println.
	Error(...interface{})

	// InfoEnabled returns true if info level logging is enabled
	InfoEnabled() bool

	// Info logs at info level. Arguments are handled in the manner of fmt.Println.
	Info(...interface{})
}

// Level determines at of logging that is enabled
type Level int

const (
	// Silent means that all logging is disabled
	Silent = Level(iota)

	// Error means that only error logging is enabled
	Error

	// Info means that error and info logging is enabled
	Info

	// Debug means that all logging is enabled
	Debug
)

var levelNames = []string{"silent", "error", "info", "debug"}

// ParseLevel returns the Level with the given case insensitive name.
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(s)
	for i, n := range levelNames {
		if n == s {
			return Level(i), nil
		}
	}
	return Silent, fmt.Errorf("unknown log level %q", s)
}

func (l Level) String() string {
	if l >= Silent && l <= Debug {
		return levelNames[l]
	}
	return "unknown"
}

type writer struct {
	level Level
	out   *log.Logger
	err   *log.Logger
}

func (l *writer) logAt(lv Level, lg *log.Logger, prefix string, args []interface{}) {
	if l.level >= lv {
		_ = lg.Output(3, prefix+fmt.Sprintln(args...))
	}
}

func (l *writer) Debug(args ...interface{}) {
	l.logAt(Debug, l.out, "DEBUG ", args)
}

func (l *writer) DebugEnabled() bool {
	return l.level >= Debug
}

func (l *writer) Error(args ...interface{}) {
	l.logAt(Error, l.err, "ERROR ", args)
}

func (l *writer) ErrorEnabled() bool {
	return l.level >= Error
}

func (l *writer) Info(args ...interface{}) {
	l.logAt(Info, l.out, "INFO  ", args)
}

func (l *writer) InfoEnabled() bool {
	return l.level >= Info
}

// New returns a logger that is based on the standard log.Logger. Debug and info
// messages are written to out and error messages to err.
func New(level Level, out, err io.Writer) Logger {
	l := &writer{level: level}
	if level >= Error {
		l.err = log.New(err, "", log.LstdFlags)
	}
	if level >= Info {
		l.out = log.New(out, "", log.LstdFlags)
	}
	return l
}
