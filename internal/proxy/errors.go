package proxy

// outcome classifies how a single proxied request ended.  Expected
// failures are values, not errors: each maps to a fixed HTML response
// (or to a silent close) at the connection boundary.
type outcome int

const (
	outcomeOK outcome = iota

	// Client disconnected before sending a request line.  No response
	// is attempted; there is nobody left to respond to.
	outcomeEarlyClose

	// Method other than GET.  Responds 501 Not Implemented.
	outcomeBadMethod

	// Dialing the origin server failed, or the target decomposed to an
	// empty host and was never dialed.  Responds 400 Bad Request with
	// cause "Malformed URL" either way.
	outcomeDialFailed

	// Writing the outbound request to the origin failed.  The relay is
	// skipped and the connection closed without a response.
	outcomeSendFailed

	// Reading the response from the origin failed mid-relay.  Responds
	// 502 Bad Gateway.
	outcomeUpstream

	// Writing the response to the client failed mid-relay.  Responds
	// 400 Bad Request, though the write will usually fail too.
	outcomeDownstream
)

func (o outcome) String() string {
	switch o {
	case outcomeOK:
		return "ok"
	case outcomeEarlyClose:
		return "early_close"
	case outcomeBadMethod:
		return "bad_method"
	case outcomeDialFailed:
		return "dial_failed"
	case outcomeSendFailed:
		return "send_failed"
	case outcomeUpstream:
		return "upstream_error"
	case outcomeDownstream:
		return "downstream_error"
	default:
		return "unknown"
	}
}
