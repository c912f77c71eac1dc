package proxy

// Package proxy implements the forwarding HTTP proxy: the accept loop,
// the per-connection request pipeline (request-line parsing, target
// decomposition, header rewriting, response relay), and the fixed-format
// HTML error responses sent to clients on failure.
