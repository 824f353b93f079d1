package writers

import (
	"errors"
	"io"
	"syscall"
)

// IsBrokenPipe reports whether err means stdout's reader went away, as
// when the output is piped into `head`. Such runs still exit 0.
func IsBrokenPipe(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, syscall.EPIPE), errors.Is(err, io.ErrClosedPipe):
		return true
	}
	return false
}
