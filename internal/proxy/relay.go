package proxy

import "io"

// relayResult reports how a relay ended: how many bytes reached dst,
// which side failed (outcomeOK on clean end-of-stream), and the
// underlying error when one side did.
type relayResult struct {
	bytes   int64
	outcome outcome
	err     error
}

// relay copies the origin response from src to dst in buf-sized chunks
// until src reaches end-of-stream or either side fails.  A read failure
// is an upstream error; a short or failed write is a downstream error
// and stops the relay immediately.
func relay(dst io.Writer, src io.Reader, buf []byte) relayResult {
	var total int64
	for {
		n, rerr := src.Read(buf)
		if n > 0 {
			wn, werr := dst.Write(buf[:n])
			total += int64(wn)
			if werr != nil {
				return relayResult{bytes: total, outcome: outcomeDownstream, err: werr}
			}
			if wn < n {
				return relayResult{bytes: total, outcome: outcomeDownstream, err: io.ErrShortWrite}
			}
		}
		switch rerr {
		case nil:
		case io.EOF:
			return relayResult{bytes: total, outcome: outcomeOK}
		default:
			return relayResult{bytes: total, outcome: outcomeUpstream, err: rerr}
		}
	}
}
