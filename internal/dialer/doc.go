package dialer

// Package dialer provides the outbound dialing implementations used to
// reach origin servers: directly, or chained through an upstream HTTP
// CONNECT or SOCKS5 proxy.
