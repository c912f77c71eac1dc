package proxy

import (
	"bytes"
	"fmt"
	"io"
)

// respondError writes the fixed-format HTML error page for a failed
// request: an HTTP/1.0 status line, Content-type and Content-length
// headers, then a small HTML body embedding the cause.  Write failures
// are swallowed; the peer may already be gone, and an error while
// reporting an error has nowhere useful to go.
func respondError(w io.Writer, cause string, code int, shortMsg, longMsg string) {
	var body bytes.Buffer
	body.WriteString("<html><title>Proxy Server Error</title>")
	body.WriteString("<body bgcolor=\"ffffff\">\r\n")
	fmt.Fprintf(&body, "%d: %s\r\n", code, shortMsg)
	fmt.Fprintf(&body, "<p>%s: %s\r\n", longMsg, cause)
	body.WriteString("<hr><em>The Proxy Web server</em>\r\n")

	var resp bytes.Buffer
	fmt.Fprintf(&resp, "HTTP/1.0 %d %s\r\n", code, shortMsg)
	resp.WriteString("Content-type: text/html\r\n")
	fmt.Fprintf(&resp, "Content-length: %d\r\n\r\n", body.Len())
	resp.Write(body.Bytes())

	_, _ = w.Write(resp.Bytes())
}
