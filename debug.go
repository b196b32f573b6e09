// debug.go: conditional debug logging gated on the NOXDEBUG env var
package nox

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// DebuggingMode enables verbose pipeline traces on stderr.
var DebuggingMode = os.Getenv("NOXDEBUG") != ""

// debugf prints a trace line prefixed with the caller's file and line.
func debugf(format string, args ...interface{}) {
	if !DebuggingMode {
		return
	}
	debugAt(2, format, args...)
}

func debugAt(skip int, format string, args ...interface{}) {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		file, line = "???", 0
	}
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(os.Stderr, "%s:%d\t| %s\n", filepath.Base(file), line, msg)
}
