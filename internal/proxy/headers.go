package proxy

import (
	"bufio"
	"bytes"
	"strings"
)

// buildRequest assembles the complete outbound request: the request
// line, the rewritten header block, and the terminating blank line.
// The outbound leg is always HTTP/1.0, whatever version the client
// declared.
func buildRequest(br *bufio.Reader, method string, tgt target, userAgent string) []byte {
	var out bytes.Buffer
	out.WriteString(method)
	out.WriteString(" ")
	out.WriteString(tgt.path)
	out.WriteString(" HTTP/1.0\r\n")
	rewriteHeaders(&out, br, tgt.host, userAgent)
	return out.Bytes()
}

// rewriteHeaders consumes the client's header lines through the
// blank-line terminator and appends the outbound header block to out.
//
// Rules:
//   - The client's Host line wins; one is synthesized from the target
//     host only when the client sent none first.
//   - User-Agent is replaced by the proxy's fixed string.
//   - Connection (and Proxy-Connection) become the forced pair
//     "Connection: close" / "Proxy-Connection: close".
//   - Each forced header appears exactly once however many times the
//     client sent it; all other lines pass through byte-identical and
//     in their original order.
//
// If the client stream ends before the terminator, whatever was
// accumulated is kept.  The block is always completed with the forced
// headers the client never sent and a final CRLF.
func rewriteHeaders(out *bytes.Buffer, br *bufio.Reader, host, userAgent string) {
	var sawHost, sawUserAgent, sawConnection bool

	for first := true; ; first = false {
		line, err := br.ReadString('\n')
		if line == "" || strings.TrimRight(line, "\r\n") == "" {
			break
		}

		if first && !strings.Contains(line, "Host: ") {
			out.WriteString("Host: ")
			out.WriteString(host)
			out.WriteString("\r\n")
			sawHost = true
		}

		switch {
		case strings.Contains(line, "Host: "):
			if !sawHost {
				writeLine(out, line)
				sawHost = true
			}
		case strings.Contains(line, "User-Agent: "):
			if !sawUserAgent {
				out.WriteString("User-Agent: ")
				out.WriteString(userAgent)
				out.WriteString("\r\n")
				sawUserAgent = true
			}
		case strings.Contains(line, "Connection: "):
			// Also matches Proxy-Connection; both collapse into the
			// forced pair.
			if !sawConnection {
				out.WriteString("Connection: close\r\nProxy-Connection: close\r\n")
				sawConnection = true
			}
		default:
			writeLine(out, line)
		}

		if err != nil {
			break
		}
	}

	if !sawHost {
		// Only reachable when the client sent no headers at all.
		out.WriteString("Host: ")
		out.WriteString(host)
		out.WriteString("\r\n")
	}
	if !sawUserAgent {
		out.WriteString("User-Agent: ")
		out.WriteString(userAgent)
		out.WriteString("\r\n")
	}
	if !sawConnection {
		out.WriteString("Connection: close\r\nProxy-Connection: close\r\n")
	}
	out.WriteString("\r\n")
}

// writeLine emits a pass-through client header line.  Complete lines
// are kept byte-identical; the final line of a truncated stream can
// arrive without its newline and gets one so the forced headers that
// follow stay on their own lines.
func writeLine(out *bytes.Buffer, line string) {
	out.WriteString(line)
	if !strings.HasSuffix(line, "\n") {
		out.WriteString("\r\n")
	}
}
