package dialer

import (
	"net"
	"time"
)

type Config struct {
	// DialTimeout bounds DNS lookup plus TCP connect.  Zero means no
	// timeout.
	DialTimeout time.Duration

	// NegotiationTimeout bounds upstream-proxy protocol negotiation
	// (TLS handshake, CONNECT exchange).  Zero means no timeout.
	NegotiationTimeout time.Duration

	// KeepAlive is applied to dialed TCP connections.
	KeepAlive net.KeepAliveConfig
}
