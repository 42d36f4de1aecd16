// ABOUTME: sync.Pool wrapper for the byte buffers frames are assembled in
// ABOUTME: Reduces GC pressure from full-screen redraws after every key

package pool

import (
	"bytes"
	"sync"
)

// maxPooledSize keeps buffers from huge terminals out of the pool.
const maxPooledSize = 1 << 20

var bytesBufferPool = sync.Pool{
	New: func() any {
		return new(bytes.Buffer)
	},
}

// GetBytesBuffer returns a bytes.Buffer from the pool.
func GetBytesBuffer() *bytes.Buffer {
	buf := bytesBufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// PutBytesBuffer returns a bytes.Buffer to the pool.
func PutBytesBuffer(buf *bytes.Buffer) {
	if buf == nil || buf.Cap() > maxPooledSize {
		return
	}
	buf.Reset()
	bytesBufferPool.Put(buf)
}
