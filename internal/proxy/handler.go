package proxy

import (
	"bufio"
	"log/slog"
	"net"
	"strings"
	"time"
)

// handleConn runs one request/response cycle: read and validate the
// request line, rewrite the headers, dial the origin, forward the
// request, and relay the response back.  Both sockets are closed on
// every exit path, and every failure is converted to a fixed HTML
// response here at the boundary (except where the client is already
// gone).  The proxy always closes after one exchange; there is no
// keep-alive.
func (s *Server) handleConn(conn net.Conn) {
	defer conn.Close()

	s.cfg.Metrics.connection()

	if s.cfg.IOTimeout > 0 {
		_ = conn.SetDeadline(time.Now().Add(s.cfg.IOTimeout))
	}

	br := bufio.NewReader(conn)

	line, err := br.ReadString('\n')
	if err != nil && line == "" {
		// Client hung up before sending anything usable.
		s.finish(conn, outcomeEarlyClose, "", 0, err)
		return
	}

	var method, rawTarget string
	if f := strings.Fields(line); len(f) > 0 {
		method = f[0]
		if len(f) > 1 {
			rawTarget = f[1]
		}
	}

	if !strings.EqualFold(method, "GET") {
		respondError(conn, method, 501, "Not Implemented",
			"Proxy Server does not implement this method")
		s.finish(conn, outcomeBadMethod, rawTarget, 0, nil)
		return
	}

	tgt := splitTarget(rawTarget)
	if tgt.host == "" {
		// Origin-form and garbage targets decompose to an empty host.
		// Dialing ":port" would reach the local machine, so reject
		// here instead.
		respondError(conn, method, 400, "Bad Request", "Malformed URL")
		s.finish(conn, outcomeDialFailed, rawTarget, 0, nil)
		return
	}
	out := buildRequest(br, method, tgt, s.cfg.UserAgent)

	upstream, err := s.cfg.Dialer.DialContext(s.ctx, "tcp", net.JoinHostPort(tgt.host, tgt.port))
	if err != nil {
		respondError(conn, method, 400, "Bad Request", "Malformed URL")
		s.finish(conn, outcomeDialFailed, rawTarget, 0, err)
		return
	}
	defer upstream.Close()

	if s.cfg.IOTimeout > 0 {
		_ = upstream.SetDeadline(time.Now().Add(s.cfg.IOTimeout))
	}

	if _, err := upstream.Write(out); err != nil {
		s.finish(conn, outcomeSendFailed, rawTarget, 0, err)
		return
	}

	buf := s.pool.Get()
	res := relay(conn, upstream, buf)
	s.pool.Put(buf)

	switch res.outcome {
	case outcomeUpstream:
		respondError(conn, method, 502, "Bad Gateway",
			"Client not understood due to malformed syntax")
	case outcomeDownstream:
		respondError(conn, method, 400, "Bad Request",
			"Client not understood due to malformed syntax")
	}
	s.finish(conn, res.outcome, rawTarget, res.bytes, res.err)
}

// finish records the outcome of one connection in metrics and logs.
func (s *Server) finish(conn net.Conn, o outcome, rawTarget string, bytes int64, err error) {
	s.cfg.Metrics.request(o)
	s.cfg.Metrics.relayed(bytes)

	level := slog.LevelDebug
	if s.cfg.Verbose {
		level = slog.LevelInfo
	}

	attrs := []any{
		"remote", conn.RemoteAddr().String(),
		"outcome", o.String(),
	}
	if rawTarget != "" {
		attrs = append(attrs, "target", rawTarget)
	}
	if bytes > 0 {
		attrs = append(attrs, "bytes", bytes)
	}
	if err != nil && !isPeerGone(err) && o != outcomeEarlyClose {
		attrs = append(attrs, "error", err)
	}

	s.log.Log(s.ctx, level, "request", attrs...)
}
