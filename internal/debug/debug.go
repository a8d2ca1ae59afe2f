// Package debug writes diagnostic records to a log file named by
// $LAPWATCH_DEBUG_LOG. The terminal is in raw mode while lapwatch runs, so
// nothing here ever writes to stdout or stderr after initialization.
package debug

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"runtime"

	"github.com/sirupsen/logrus"
)

var opts struct {
	isEnabled bool
	logger    *logrus.Logger
}

// make sure that all the initialization happens before the init() functions
// are called, cf https://golang.org/ref/spec#Package_initialization
var _ = initDebug()

func initDebug() bool {
	debugfile := os.Getenv("LAPWATCH_DEBUG_LOG")
	if debugfile == "" {
		return false
	}

	f, err := os.OpenFile(debugfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to open debug log file: %v\n", err)
		os.Exit(2)
	}

	setOutput(f)
	return true
}

func setOutput(wr io.Writer) {
	logger := logrus.New()
	logger.SetOutput(wr)
	logger.SetLevel(logrus.DebugLevel)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})

	opts.logger = logger
	opts.isEnabled = true
}

func getPosition() (fn, pos string) {
	pc, file, line, ok := runtime.Caller(2)
	if !ok {
		return "", ""
	}

	dirname, filename := filepath.Base(filepath.Dir(file)), filepath.Base(file)
	return path.Base(runtime.FuncForPC(pc).Name()), fmt.Sprintf("%s/%s:%d", dirname, filename, line)
}

// Enabled reports whether debug records are written anywhere.
func Enabled() bool {
	return opts.isEnabled
}

// Log writes a record to the debug log (if debug is enabled).
func Log(f string, args ...interface{}) {
	if !opts.isEnabled {
		return
	}

	fn, pos := getPosition()
	opts.logger.WithFields(logrus.Fields{
		"pos":  pos,
		"func": fn,
	}).Debugf(f, args...)
}
