//go:build unix

package proxy

import (
	"errors"

	"golang.org/x/sys/unix"
)

// isPeerGone reports whether an I/O error means the peer already closed
// or reset the connection.  Such failures are routine for a proxy
// (clients abort downloads constantly) and are not logged as errors.
func isPeerGone(err error) bool {
	return errors.Is(err, unix.EPIPE) || errors.Is(err, unix.ECONNRESET)
}
