package dialer

import (
	"context"
	"io"
	"net"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Crispy-lang/proxyserver/internal/testutil"
)

func connectDialer(t *testing.T, proxyAddr string) *HTTPProxyDialer {
	t.Helper()

	u, err := url.Parse("http://" + proxyAddr)
	require.NoError(t, err)

	d, err := NewHTTPProxyDialer(Config{
		DialTimeout:        2 * time.Second,
		NegotiationTimeout: 2 * time.Second,
	}, u, "", "")
	require.NoError(t, err)
	return d
}

func TestHTTPProxyDialerConnect(t *testing.T) {
	t.Parallel()

	var gotConnect string
	proxyAddr, wait := testutil.StartOrigin(t, func(c net.Conn) {
		gotConnect, _ = testutil.ReadRequest(c)
		_, _ = c.Write([]byte("HTTP/1.1 200 Connection Established\r\n\r\n"))

		// Echo one chunk through the established tunnel.
		buf := make([]byte, 64)
		n, err := c.Read(buf)
		if err != nil {
			return
		}
		_, _ = c.Write(buf[:n])
	})

	d := connectDialer(t, proxyAddr)
	c, err := d.DialContext(context.Background(), "tcp", "origin.example:8080")
	require.NoError(t, err)
	defer c.Close()

	_ = c.SetDeadline(time.Now().Add(2 * time.Second))
	_, err = c.Write([]byte("ping"))
	require.NoError(t, err)

	buf := make([]byte, 4)
	_, err = io.ReadFull(c, buf)
	require.NoError(t, err)
	require.Equal(t, "ping", string(buf))

	wait()
	require.True(t, strings.HasPrefix(gotConnect, "CONNECT origin.example:8080 HTTP/1.1\r\n"), gotConnect)
}

func TestHTTPProxyDialerRefusal(t *testing.T) {
	t.Parallel()

	proxyAddr, wait := testutil.StartOrigin(t, func(c net.Conn) {
		_, _ = testutil.ReadRequest(c)
		_, _ = c.Write([]byte("HTTP/1.1 403 Forbidden\r\nContent-Length: 0\r\n\r\n"))
	})
	defer wait()

	d := connectDialer(t, proxyAddr)
	_, err := d.DialContext(context.Background(), "tcp", "origin.example:8080")
	require.Error(t, err)
	require.Contains(t, err.Error(), "403")
}

func TestHTTPProxyDialerRejectsNonTCP(t *testing.T) {
	t.Parallel()

	d := connectDialer(t, "127.0.0.1:1")
	_, err := d.DialContext(context.Background(), "udp", "origin.example:53")
	require.Error(t, err)
}
