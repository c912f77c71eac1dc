package testutil

import (
	"bufio"
	"net"
	"strings"
	"testing"
)

// StartOrigin starts a TCP server on a random loopback port that hands
// its first accepted connection to handler and then stops.  The
// returned wait func closes the listener and blocks until the handler
// has finished.
func StartOrigin(t *testing.T, handler func(net.Conn)) (addr string, wait func()) {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		c, err := ln.Accept()
		if err != nil {
			return
		}
		defer c.Close()
		handler(c)
	}()

	wait = func() {
		_ = ln.Close()
		<-done
	}

	return ln.Addr().String(), wait
}

// ReadRequest consumes one HTTP request head (request line plus
// headers through the blank line) from c and returns it verbatim.
func ReadRequest(c net.Conn) (string, error) {
	br := bufio.NewReader(c)
	var sb strings.Builder
	for {
		line, err := br.ReadString('\n')
		sb.WriteString(line)
		if err != nil {
			return sb.String(), err
		}
		if line == "\r\n" || line == "\n" {
			return sb.String(), nil
		}
	}
}
