// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

// Package logger provides process wide logrus logger with per module entries.
package logger

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sirupsen/logrus"
)

// moduleField defines log entry field holding module name.
const moduleField = "module"

// Log is the process wide logger. Writes to stderr, stdout is kept for command results.
var Log = New(os.Stderr)

// New creates logger writing to w with compact text formatting.
func New(w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(logrus.InfoLevel)
	log.SetFormatter(&TextFormatter{})
	return log
}

// Module returns log entry tagged with module name.
func Module(module string) *logrus.Entry {
	return Log.WithField(moduleField, module)
}

// Init sets log level and, when path is not empty, duplicates output into daily rotated files.
func Init(level, path string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)

	if path == "" {
		return nil
	}

	exePath, _ := os.Executable()
	executableName := filepath.Base(exePath)
	fileHook, err := rotatelogs.New(
		filepath.Join(path, executableName+".%Y%m%d.log"),
		rotatelogs.WithLinkName(filepath.Join(path, executableName+".log")),
		rotatelogs.WithMaxAge(30*24*time.Hour),
		rotatelogs.WithRotationTime(24*time.Hour),
	)
	if err != nil {
		return fmt.Errorf("failed to create rotate file writer: %w", err)
	}

	Log.SetOutput(io.MultiWriter(os.Stderr, fileHook))
	return nil
}

// TextFormatter formats entries as "<time> [<level>] <module>: <message> key=value...".
type TextFormatter struct{}

// Format implements logrus.Formatter.
func (f *TextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer

	b.WriteString(entry.Time.Format("2006-01-02 15:04:05"))
	b.WriteString(fmt.Sprintf(" [%s] ", entry.Level.String()))

	moduleName, ok := entry.Data[moduleField].(string)
	if !ok {
		moduleName = "default"
	}
	b.WriteString(moduleName + ": ")
	b.WriteString(entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for key := range entry.Data {
		if key != moduleField {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	for _, key := range keys {
		b.WriteString(fmt.Sprintf(" %s=%v", key, entry.Data[key]))
	}
	b.WriteByte('\n')

	return b.Bytes(), nil
}
