package proxy

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type failingReader struct {
	data string
	err  error
	done bool
}

func (r *failingReader) Read(p []byte) (int, error) {
	if r.done {
		return 0, r.err
	}
	r.done = true
	return copy(p, r.data), nil
}

type failingWriter struct {
	limit int
	err   error
	wrote int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.wrote+len(p) > w.limit {
		n := w.limit - w.wrote
		w.wrote = w.limit
		return n, w.err
	}
	w.wrote += len(p)
	return len(p), nil
}

func TestRelayDeliversAllBytesInOrder(t *testing.T) {
	t.Parallel()

	// Several times larger than the relay buffer.
	src := make([]byte, 5*relayBufferSize+17)
	for i := range src {
		src[i] = byte(i % 251)
	}

	var dst bytes.Buffer
	res := relay(&dst, bytes.NewReader(src), make([]byte, relayBufferSize))

	require.Equal(t, outcomeOK, res.outcome)
	require.NoError(t, res.err)
	require.Equal(t, int64(len(src)), res.bytes)
	require.Equal(t, src, dst.Bytes())
}

func TestRelayEmptyStream(t *testing.T) {
	t.Parallel()

	var dst bytes.Buffer
	res := relay(&dst, strings.NewReader(""), make([]byte, 64))

	require.Equal(t, outcomeOK, res.outcome)
	require.Zero(t, res.bytes)
}

func TestRelayReadFailureIsUpstream(t *testing.T) {
	t.Parallel()

	readErr := errors.New("connection reset")
	var dst bytes.Buffer
	res := relay(&dst, &failingReader{data: "partial", err: readErr}, make([]byte, 64))

	require.Equal(t, outcomeUpstream, res.outcome)
	require.ErrorIs(t, res.err, readErr)
	// Bytes read before the failure still reached the destination.
	require.Equal(t, "partial", dst.String())
	require.Equal(t, int64(len("partial")), res.bytes)
}

func TestRelayWriteFailureIsDownstream(t *testing.T) {
	t.Parallel()

	writeErr := errors.New("broken pipe")
	src := strings.NewReader(strings.Repeat("x", 256))
	res := relay(&failingWriter{limit: 100, err: writeErr}, src, make([]byte, 64))

	require.Equal(t, outcomeDownstream, res.outcome)
	require.ErrorIs(t, res.err, writeErr)
}

func TestRelayShortWriteIsDownstream(t *testing.T) {
	t.Parallel()

	// A short write with no error still stops the relay.
	src := strings.NewReader(strings.Repeat("x", 256))
	res := relay(&failingWriter{limit: 100}, src, make([]byte, 64))

	require.Equal(t, outcomeDownstream, res.outcome)
	require.ErrorIs(t, res.err, io.ErrShortWrite)
}
