// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
)

// Diagnostics go to stderr as "LEVEL: message" lines; stdout carries data only.

// Warnf reports a recoverable problem unless quiet is set.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	logf(dst, !quiet, "WARN", format, a...)
}

// Infof prints progress details, only when verbose is set.
func Infof(dst io.Writer, verbose bool, format string, a ...any) {
	logf(dst, verbose, "INFO", format, a...)
}

func logf(dst io.Writer, on bool, level, format string, a ...any) {
	if !on || dst == nil {
		return
	}
	_, _ = fmt.Fprintf(dst, level+": "+format+"\n", a...)
}
