package proxy

import (
	"log/slog"
	"time"

	"github.com/Crispy-lang/proxyserver/internal/dialer"
)

// DefaultUserAgent is the User-Agent presented to origin servers in
// place of whatever the client sent.  Immutable after startup.
const DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64; rv:10.0.3) Gecko/20120305 Firefox/10.0.3"

type Config struct {
	// Dialer establishes outbound connections to origin servers,
	// directly or through an upstream proxy.
	Dialer dialer.Dialer

	// UserAgent replaces client User-Agent headers on the outbound
	// leg.  Empty means DefaultUserAgent.
	UserAgent string

	// IOTimeout, when positive, is an absolute per-connection deadline
	// applied to both the client and origin sockets.  Zero leaves all
	// reads and writes untimed.
	IOTimeout time.Duration

	// AcceptRate caps accepted connections per second.  Zero means no
	// limit.
	AcceptRate float64

	// Logger for per-connection records.  Nil means slog.Default().
	Logger *slog.Logger

	// Metrics receives connection and request counters.  May be nil.
	Metrics *Metrics

	// Verbose logs every connection at info level instead of debug.
	Verbose bool
}
