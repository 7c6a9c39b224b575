// Copyright 2026 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package log provides the leveled logging used by the simdcopy commands.
// Output goes through an Outputter; the default one writes to Go's standard
// logger, filtered by the level set with SetLevel or the -log flag.
package log

import (
	"flag"
	"fmt"
	"io"
	golog "log"
	"os"
	"sync/atomic"
)

// A Level is a log verbosity level.  If the outputter logs at level L, every
// message at level M <= L is written.
type Level int

const (
	// Off never outputs messages.
	Off = Level(-3)
	// Error outputs error messages.
	Error = Level(-2)
	// Info is the default level.
	Info = Level(0)
	// Debug outputs per-case progress, e.g. every benchmark case as it runs.
	Debug = Level(1)
)

func (l Level) String() string {
	switch l {
	case Off:
		return "off"
	case Error:
		return "error"
	case Info:
		return "info"
	case Debug:
		return "debug"
	}
	if l < 0 {
		panic("invalid log level")
	}
	return fmt.Sprintf("debug%d", l)
}

// ParseLevel is the inverse of Level.String for the named levels.
func ParseLevel(s string) (Level, error) {
	for _, l := range []Level{Off, Error, Info, Debug} {
		if l.String() == s {
			return l, nil
		}
	}
	return Off, fmt.Errorf("invalid log level %q", s)
}

// Print formats a message in the manner of fmt.Sprint and outputs it at
// level l.
func (l Level) Print(v ...interface{}) {
	if At(l) {
		out.Output(2, l, fmt.Sprint(v...))
	}
}

// Printf formats a message in the manner of fmt.Sprintf and outputs it at
// level l.
func (l Level) Printf(format string, v ...interface{}) {
	if At(l) {
		out.Output(2, l, fmt.Sprintf(format, v...))
	}
}

// An Outputter provides a destination for leveled log output.
type Outputter interface {
	// Level returns the level at which the outputter is accepting
	// messages.
	Level() Level

	// Output writes s at the given call depth and level.
	Output(calldepth int, level Level, s string) error
}

var out Outputter = gologOutputter{}

// SetOutputter installs a new outputter and returns the old one.  It must not
// be called concurrently with logging.
func SetOutputter(newOut Outputter) Outputter {
	old := out
	out = newOut
	return old
}

// At returns whether messages at level are currently output.
func At(level Level) bool {
	return level <= out.Level()
}

// Output outputs s at the given level and call depth.
func Output(calldepth int, level Level, s string) error {
	return out.Output(calldepth+1, level, s)
}

// Print logs at Info in the manner of fmt.Sprint.
func Print(v ...interface{}) {
	if At(Info) {
		out.Output(2, Info, fmt.Sprint(v...))
	}
}

// Printf logs at Info in the manner of fmt.Sprintf.
func Printf(format string, v ...interface{}) {
	if At(Info) {
		out.Output(2, Info, fmt.Sprintf(format, v...))
	}
}

// Fatal logs at Error in the manner of fmt.Sprint, then calls os.Exit(1).
func Fatal(v ...interface{}) {
	out.Output(2, Error, fmt.Sprint(v...))
	os.Exit(1)
}

var golevel = Info

// SetLevel sets the level of the default outputter.
func SetLevel(level Level) {
	golevel = level
}

// SetFlags sets the output flags of Go's standard logger.
func SetFlags(flag int) {
	golog.SetFlags(flag)
}

// SetOutput sets the destination of Go's standard logger.
func SetOutput(w io.Writer) {
	golog.SetOutput(w)
}

// SetPrefix sets the prefix of Go's standard logger.
func SetPrefix(prefix string) {
	golog.SetPrefix(prefix)
}

var flagAdded int32

// AddFlags registers -log on flag.CommandLine.  Call it before flag.Parse;
// later calls are ignored.
func AddFlags() {
	if !atomic.CompareAndSwapInt32(&flagAdded, 0, 1) {
		return
	}
	flag.Var(new(levelFlag), "log", "set log level (off, error, info, debug)")
}

type levelFlag struct{}

func (levelFlag) String() string { return golevel.String() }

func (*levelFlag) Set(s string) error {
	l, err := ParseLevel(s)
	if err != nil {
		return err
	}
	golevel = l
	return nil
}

type gologOutputter struct{}

func (gologOutputter) Level() Level { return golevel }

func (gologOutputter) Output(calldepth int, level Level, s string) error {
	if golevel < level {
		return nil
	}
	return golog.Output(calldepth+1, s)
}
