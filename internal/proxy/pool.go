package proxy

import "sync"

// relayBufferSize is the chunk size for copying origin responses to
// clients.
const relayBufferSize = 32 * 1024

type bufferPool struct {
	pool sync.Pool
}

func newBufferPool(size int) *bufferPool {
	bp := &bufferPool{}
	bp.pool.New = func() any {
		b := make([]byte, size)
		return &b
	}
	return bp
}

func (p *bufferPool) Get() []byte {
	return *p.pool.Get().(*[]byte)
}

func (p *bufferPool) Put(b []byte) {
	// Stored as *[]byte to keep the slice header off the heap on Get.
	p.pool.Put(&b)
}
