package proxy

import "strings"

const schemePrefix = "http://"

// target is a request target decomposed into the origin host, port, and
// absolute path.
type target struct {
	host string
	port string
	path string
}

// splitTarget decomposes raw into host, port, and path, defaulting the
// port to "80" and the path to "/" when absent.  It is total: garbage
// input degrades to an empty host with defaults rather than an error,
// and the caller rejects the empty host.
//
// Accepted shapes, with or without a leading "http://":
//
//	host
//	host:port
//	host/path
//	host:port/path
func splitTarget(raw string) target {
	rest := raw
	if len(rest) >= len(schemePrefix) && strings.EqualFold(rest[:len(schemePrefix)], schemePrefix) {
		rest = rest[len(schemePrefix):]
	}

	var t target
	switch i := strings.IndexAny(rest, ":/"); {
	case i >= 0 && rest[i] == ':':
		// host:port with an optional path after the port.
		t.host = rest[:i]
		rest = rest[i+1:]
		if j := strings.IndexByte(rest, '/'); j >= 0 {
			t.port = rest[:j]
			t.path = rest[j:]
		} else {
			t.port = rest
		}
	case i >= 0:
		// No port; the path starts at the first slash.
		t.host = rest[:i]
		t.path = rest[i:]
	default:
		t.host = rest
	}

	if t.path == "" {
		t.path = "/"
	}
	if t.port == "" {
		t.port = "80"
	}
	return t
}
